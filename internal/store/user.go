package store

import (
	"context"

	"github.com/goop-edu/goop-api/internal/domain"
)

// UserStore defines the interface for user persistence and session state.
//
// The session is a single slot: at most one logged-in principal per store
// instance, modeling a single-seat application. A multi-user server surface
// must carry identity per request (e.g. in a token) instead of relying on
// this slot.
type UserStore interface {
	// Login scans students first, then teachers, and returns the first
	// principal whose credentials match, setting it as the current session
	// user. Returns ErrInvalidCredentials when nothing matches.
	//
	// If two accounts were ever to share a username the student would win
	// by scan order; that is an ordering artifact, not an invariant —
	// uniqueness is enforced at insertion time.
	Login(ctx context.Context, username, password string) (domain.Principal, error)

	// Logout clears the current session user. No-op when nobody is logged in.
	Logout(ctx context.Context)

	// CurrentUser returns the logged-in principal, or false when the
	// session slot is empty.
	CurrentUser(ctx context.Context) (domain.Principal, bool)

	// IsLoggedIn reports whether a principal occupies the session slot.
	IsLoggedIn(ctx context.Context) bool

	// CreateStudent assigns the next user id to the student and inserts it.
	// Returns ErrUsernameExists if the username is taken by any student or
	// teacher. Returns validation errors from the domain Student if data is
	// invalid.
	CreateStudent(ctx context.Context, student *domain.Student) error

	// GetAllStudents returns a defensive copy of the student collection in
	// insertion order. Mutating the returned slice or its elements does not
	// affect the store.
	GetAllStudents(ctx context.Context) []domain.Student

	// GetStudentByID retrieves a student by id.
	// Returns ErrStudentNotFound if the student does not exist.
	GetStudentByID(ctx context.Context, id int) (*domain.Student, error)

	// UpdateStudent replaces the stored student matching by id (full
	// replace, not a partial patch).
	// Returns ErrStudentNotFound if the student does not exist.
	UpdateStudent(ctx context.Context, student *domain.Student) error

	// CreateTeacher assigns the next user id to the teacher and inserts it.
	// Returns ErrUsernameExists if the username is taken by any student or
	// teacher.
	CreateTeacher(ctx context.Context, teacher *domain.Teacher) error

	// GetAllTeachers returns a defensive copy of the teacher collection in
	// insertion order.
	GetAllTeachers(ctx context.Context) []domain.Teacher

	// GetTeacherByID retrieves a teacher by id.
	// Returns ErrTeacherNotFound if the teacher does not exist.
	GetTeacherByID(ctx context.Context, id int) (*domain.Teacher, error)

	// UpdateTeacher replaces the stored teacher matching by id.
	// Returns ErrTeacherNotFound if the teacher does not exist.
	UpdateTeacher(ctx context.Context, teacher *domain.Teacher) error
}
