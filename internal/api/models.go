package api

import (
	"github.com/goop-edu/goop-api/internal/domain"
)

// Common request/response structures

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID int `json:"user_id"`

	// Role is the authenticated user's role ("SISWA" or "GURU")
	Role domain.Role `json:"role"`

	// FullName is the user's display name
	FullName string `json:"full_name"`

	// Token is the JWT used for API authorization
	Token string `json:"token"`
}

// CreateStudentRequest defines the payload for registering a student account.
type CreateStudentRequest struct {
	Username  string `json:"username"   validate:"required"`
	Password  string `json:"password"   validate:"required,min=1"`
	Email     string `json:"email"      validate:"required,email"`
	FullName  string `json:"full_name"  validate:"required"`
	NIM       string `json:"nim"        validate:"required"`
	ClassName string `json:"class_name" validate:"required"`
}

// StudentResponse represents a student account in API responses.
// Passwords never appear in responses.
type StudentResponse struct {
	ID             int     `json:"id"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	FullName       string  `json:"full_name"`
	NIM            string  `json:"nim"`
	ClassName      string  `json:"class_name"`
	CognitiveScore float64 `json:"cognitive_score"`
	ProjectIDs     []int   `json:"project_ids"`
}

// UpdateStudentRequest defines the payload for editing a student account.
// Usernames are immutable; a blank password keeps the current one.
type UpdateStudentRequest struct {
	Email     string `json:"email"      validate:"required,email"`
	FullName  string `json:"full_name"  validate:"required"`
	NIM       string `json:"nim"        validate:"required"`
	ClassName string `json:"class_name" validate:"required"`
	Password  string `json:"password"`
}

// CreateTeacherRequest defines the payload for registering a teacher account.
type CreateTeacherRequest struct {
	Username string `json:"username"  validate:"required"`
	Password string `json:"password"  validate:"required,min=1"`
	Email    string `json:"email"     validate:"required,email"`
	FullName string `json:"full_name" validate:"required"`
	NIP      string `json:"nip"       validate:"required"`
	Subject  string `json:"subject"`
}

// UpdateTeacherRequest defines the payload for editing a teacher account.
// Usernames are immutable; a blank password keeps the current one.
type UpdateTeacherRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	FullName string `json:"full_name" validate:"required"`
	NIP      string `json:"nip"       validate:"required"`
	Subject  string `json:"subject"   validate:"required"`
	Password string `json:"password"`
}

// TeacherResponse represents a teacher account in API responses.
type TeacherResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	NIP      string `json:"nip"`
	Subject  string `json:"subject"`
}

// MaterialRequest defines the payload for creating or updating a material.
type MaterialRequest struct {
	Title       string `json:"title"   validate:"required"`
	Content     string `json:"content" validate:"required"`
	Topic       string `json:"topic"   validate:"required"`
	ResourceURL string `json:"resource_url" validate:"omitempty,url"`
}

// MaterialResponse represents a learning material in API responses,
// including the derived reading time and preview.
type MaterialResponse struct {
	ID                 int    `json:"id"`
	Title              string `json:"title"`
	Content            string `json:"content"`
	Topic              string `json:"topic"`
	AuthorID           int    `json:"author_id"`
	ResourceURL        string `json:"resource_url,omitempty"`
	ReadingTimeMinutes int    `json:"reading_time_minutes"`
	Preview            string `json:"preview"`
}

// QuestionRequest defines a question inside a test creation payload.
type QuestionRequest struct {
	Prompt        string `json:"prompt"         validate:"required"`
	ChoiceA       string `json:"choice_a"       validate:"required"`
	ChoiceB       string `json:"choice_b"       validate:"required"`
	ChoiceC       string `json:"choice_c"       validate:"required"`
	ChoiceD       string `json:"choice_d"       validate:"required"`
	CorrectChoice string `json:"correct_choice" validate:"required,oneof=A B C D a b c d"`
}

// QuestionResponse represents a test question. The answer key is only
// included for teachers; student views carry an empty correct_choice.
type QuestionResponse struct {
	ID            int    `json:"id"`
	Prompt        string `json:"prompt"`
	ChoiceA       string `json:"choice_a"`
	ChoiceB       string `json:"choice_b"`
	ChoiceC       string `json:"choice_c"`
	ChoiceD       string `json:"choice_d"`
	CorrectChoice string `json:"correct_choice,omitempty"`
}

// CreateTestRequest defines the payload for creating a cognitive test.
type CreateTestRequest struct {
	Title           string            `json:"title"            validate:"required"`
	DurationMinutes int               `json:"duration_minutes" validate:"omitempty,gt=0"`
	Questions       []QuestionRequest `json:"questions"        validate:"required,min=1,dive"`
}

// UpdateTestRequest defines the payload for editing a test's metadata and
// switching it between ACTIVE and INACTIVE. Questions are fixed at creation.
type UpdateTestRequest struct {
	Title           string `json:"title"            validate:"required"`
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,gt=0"`
	Active          *bool  `json:"active"`
}

// TestResponse represents a cognitive test in API responses.
type TestResponse struct {
	ID              int                `json:"id"`
	Title           string             `json:"title"`
	DurationMinutes int                `json:"duration_minutes"`
	Status          domain.TestStatus  `json:"status"`
	Questions       []QuestionResponse `json:"questions"`
}

// SubmitAnswersRequest defines the payload for a test submission.
// Answers are positional: answer i corresponds to question i.
type SubmitAnswersRequest struct {
	Answers []string `json:"answers" validate:"required"`
}

// TestResultResponse reports a recorded (or just computed) test score.
type TestResultResponse struct {
	StudentID int     `json:"student_id"`
	TestID    int     `json:"test_id"`
	Score     float64 `json:"score"`
	Taken     bool    `json:"taken"`
}

// CreateProjectRequest defines the payload for assigning a project.
type CreateProjectRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Deadline    string `json:"deadline"    validate:"required"` // RFC 3339
	StudentID   int    `json:"student_id"  validate:"required,gt=0"`
}

// UpdateProjectRequest defines the payload for editing a project assignment.
// Lifecycle state is untouched here; it only moves through the start,
// submission, and grade endpoints.
type UpdateProjectRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Deadline    string `json:"deadline"    validate:"required"` // RFC 3339
}

// SubmitProjectRequest defines the payload for a project submission.
type SubmitProjectRequest struct {
	Artifact string `json:"artifact" validate:"required"`
	Code     string `json:"code"`
}

// GradeProjectRequest defines the payload for validating a project.
type GradeProjectRequest struct {
	Score float64 `json:"score" validate:"min=0,max=100"`
}

// ProjectResponse represents a project in API responses, including the
// derived deadline views.
type ProjectResponse struct {
	ID                int                  `json:"id"`
	Title             string               `json:"title"`
	Description       string               `json:"description"`
	Status            domain.ProjectStatus `json:"status"`
	Deadline          string               `json:"deadline"`
	DeadlineFormatted string               `json:"deadline_formatted"`
	DaysRemaining     int                  `json:"days_remaining"`
	Overdue           bool                 `json:"overdue"`
	Score             float64              `json:"score"`
	StudentID         int                  `json:"student_id"`
	TeacherID         int                  `json:"teacher_id"`
	Artifact          string               `json:"artifact,omitempty"`
}

// ProjectCodeResponse carries the code blob saved with a project submission.
type ProjectCodeResponse struct {
	ProjectID int    `json:"project_id"`
	Code      string `json:"code"`
}
