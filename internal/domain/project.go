package domain

import (
	"errors"
	"fmt"
	"time"
)

// ProjectStatus represents a project's position in its lifecycle.
type ProjectStatus string

// Lifecycle states, in order. TERVALIDASI is terminal. The literals match
// the legacy dataset so stored records remain recognizable.
const (
	StatusBelumDikerjakan ProjectStatus = "BELUM_DIKERJAKAN"
	StatusDikerjakan      ProjectStatus = "DIKERJAKAN"
	StatusSelesai         ProjectStatus = "SELESAI"
	StatusTervalidasi     ProjectStatus = "TERVALIDASI"
)

// Common validation errors for Project.
var (
	ErrEmptyProjectTitle = errors.New("project title cannot be empty")
	ErrZeroDeadline      = errors.New("project deadline cannot be zero")
)

// Project is an assignment given to a student, with a deadline, a lifecycle
// status, and a score awarded on validation.
//
// The status field is unexported: the only way to move a project through its
// lifecycle is the transition methods below. Replacing a stored project via
// the store's update operation carries the status of the fetched copy along,
// so statuses cannot be fabricated from outside the package.
type Project struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"`
	Score       float64   `json:"score"`
	StudentID   int       `json:"student_id"`
	TeacherID   int       `json:"teacher_id"`
	Artifact    string    `json:"artifact,omitempty"`

	status ProjectStatus
}

// NewProject creates a Project in the BELUM_DIKERJAKAN state. The ID is zero
// until the store assigns one.
// Returns an error if validation fails.
func NewProject(title, description string, deadline time.Time, studentID, teacherID int) (*Project, error) {
	p := &Project{
		Title:       title,
		Description: description,
		Deadline:    deadline,
		StudentID:   studentID,
		TeacherID:   teacherID,
		status:      StatusBelumDikerjakan,
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks if the Project has valid data.
func (p *Project) Validate() error {
	if p.Title == "" {
		return ErrEmptyProjectTitle
	}
	if p.Deadline.IsZero() {
		return ErrZeroDeadline
	}
	return nil
}

// Status returns the project's current lifecycle state.
func (p *Project) Status() ProjectStatus {
	return p.status
}

// Start moves the project from BELUM_DIKERJAKAN to DIKERJAKAN. Calling it
// from any other state is a no-op that reports the current status, not an
// error: starting twice is harmless.
func (p *Project) Start() ProjectStatus {
	if p.status == StatusBelumDikerjakan {
		p.status = StatusDikerjakan
	}
	return p.status
}

// Submit moves the project from DIKERJAKAN to SELESAI, storing the artifact
// reference. From any other state it fails with ErrInvalidTransition.
func (p *Project) Submit(artifact string) error {
	if p.status != StatusDikerjakan {
		return fmt.Errorf("%w: project is %s, submit requires %s",
			ErrInvalidTransition, p.status, StatusDikerjakan)
	}
	p.status = StatusSelesai
	p.Artifact = artifact
	return nil
}

// Grade is the validation transition: it moves the project from SELESAI
// to the terminal TERVALIDASI state and records the score. From any other
// state it fails with ErrInvalidTransition; an out-of-range score fails with
// ErrScoreOutOfRange before any state change.
func (p *Project) Grade(score float64) error {
	if score < 0 || score > 100 {
		return ErrScoreOutOfRange
	}
	if p.status != StatusSelesai {
		return fmt.Errorf("%w: project is %s, validation requires %s",
			ErrInvalidTransition, p.status, StatusSelesai)
	}
	p.status = StatusTervalidasi
	p.Score = score
	return nil
}

// IsOverdue reports whether today is past the deadline and the project has
// not been validated. Overdue is informational: an overdue project can still
// be graded.
func (p *Project) IsOverdue() bool {
	return dateOnly(time.Now()).After(dateOnly(p.Deadline)) &&
		p.status != StatusTervalidasi
}

// DaysRemaining returns the signed number of calendar days until the
// deadline, negative once past.
func (p *Project) DaysRemaining() int {
	return daysBetween(time.Now(), p.Deadline)
}

// DeadlineFormatted renders the deadline as dd/mm/yyyy for display.
func (p *Project) DeadlineFormatted() string {
	return p.Deadline.Format("02/01/2006")
}

// dateOnly maps a time to midnight UTC of its calendar date. Rebuilding the
// date in UTC keeps every day exactly 24 hours long, so day arithmetic is
// not skewed by DST transitions in the original location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween counts the signed number of calendar days from one date to
// another, ignoring the time-of-day components.
func daysBetween(from, to time.Time) int {
	return int(dateOnly(to).Sub(dateOnly(from)).Hours() / 24)
}
