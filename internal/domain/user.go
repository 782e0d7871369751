package domain

import "errors"

// Role distinguishes the two kinds of principal in the system.
type Role string

// Possible role values. The literals match the legacy dataset so stored
// records remain recognizable.
const (
	RoleStudent Role = "SISWA"
	RoleTeacher Role = "GURU"
)

// Common validation errors for users.
var (
	ErrEmptyUsername = errors.New("username cannot be empty")
	ErrEmptyPassword = errors.New("password cannot be empty")
	ErrEmptyFullName = errors.New("full name cannot be empty")
)

// User is the shared core of every principal: identity, credentials, and
// role tag. Student and Teacher embed it and add their role-specific state.
//
// Passwords are stored in plaintext. This mirrors the system being modeled
// and is a documented weakness, not a supported configuration for anything
// security-sensitive.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
}

// ValidateLogin reports whether the candidate credentials match this user.
// The comparison is an exact, case-sensitive equality check on both fields.
func (u *User) ValidateLogin(username, password string) bool {
	return u.Username == username && u.Password == password
}

// Validate checks if the User core has valid data.
// Returns an error if any required field is empty.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}
	if u.Password == "" {
		return ErrEmptyPassword
	}
	if u.FullName == "" {
		return ErrEmptyFullName
	}
	return nil
}

// Principal is implemented by both user variants so callers can handle a
// logged-in user uniformly and type-switch when they need role-specific
// fields.
type Principal interface {
	// Core returns the shared user record.
	Core() *User
}

// Student is a learner principal. It owns projects by id and accumulates a
// cognitive score from test results.
type Student struct {
	User
	NIM            string  `json:"nim"`
	ClassName      string  `json:"class_name"`
	CognitiveScore float64 `json:"cognitive_score"`
	ProjectIDs     []int   `json:"project_ids"`
}

// NewStudent creates a Student with the given identity fields. The ID is
// zero until the store assigns one.
// Returns an error if validation fails.
func NewStudent(username, password, email, fullName, nim, className string) (*Student, error) {
	s := &Student{
		User: User{
			Username: username,
			Password: password,
			Email:    email,
			FullName: fullName,
			Role:     RoleStudent,
		},
		NIM:        nim,
		ClassName:  className,
		ProjectIDs: []int{},
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Core implements Principal.
func (s *Student) Core() *User {
	return &s.User
}

// AddProject appends a project id to the student's ordered set.
// Adding an id that is already present is a no-op.
func (s *Student) AddProject(projectID int) {
	for _, id := range s.ProjectIDs {
		if id == projectID {
			return
		}
	}
	s.ProjectIDs = append(s.ProjectIDs, projectID)
}

// RemoveProject removes a project id from the student's set.
// Removing an absent id is a no-op.
func (s *Student) RemoveProject(projectID int) {
	for i, id := range s.ProjectIDs {
		if id == projectID {
			s.ProjectIDs = append(s.ProjectIDs[:i], s.ProjectIDs[i+1:]...)
			return
		}
	}
}

// Teacher is a staff principal. Teachers author materials, tests, and
// projects, and grade submissions.
type Teacher struct {
	User
	NIP     string `json:"nip"`
	Subject string `json:"subject"`
}

// Default subject for teachers when none is specified.
const defaultSubject = "Pemrograman Berorientasi Objek"

// NewTeacher creates a Teacher with the given identity fields. The ID is
// zero until the store assigns one.
// Returns an error if validation fails.
func NewTeacher(username, password, email, fullName, nip string) (*Teacher, error) {
	t := &Teacher{
		User: User{
			Username: username,
			Password: password,
			Email:    email,
			FullName: fullName,
			Role:     RoleTeacher,
		},
		NIP:     nip,
		Subject: defaultSubject,
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// Core implements Principal.
func (t *Teacher) Core() *User {
	return &t.User
}
