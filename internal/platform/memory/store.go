package memory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/goop-edu/goop-api/internal/domain"
	"github.com/goop-edu/goop-api/internal/platform/logger"
	"github.com/goop-edu/goop-api/internal/store"
)

// Store implements store.RecordStore with plain in-process collections.
//
// A single RWMutex guards everything: writes are serialized so per-kind id
// counters stay monotonic and the read-then-write recomputation in
// SaveTestResult cannot interleave; reads may run concurrently with each
// other. No method performs I/O under the lock.
type Store struct {
	mu     sync.RWMutex
	logger *slog.Logger

	students  []domain.Student
	teachers  []domain.Teacher
	materials []domain.Material
	tests     []domain.CognitiveTest
	projects  []domain.Project

	// results maps studentID → testID → score.
	results map[int]map[int]float64

	// projectCode maps projectID → the student's saved code blob.
	projectCode map[int]string

	// Single-slot session, held as (role, id) and resolved on read so the
	// returned principal always reflects the stored entity.
	sessionRole domain.Role
	sessionID   int
	hasSession  bool

	// Per-kind id counters. Students and teachers share the user counter
	// because usernames (and ids, historically) are unique across both.
	nextUserID     int
	nextMaterialID int
	nextTestID     int
	nextQuestionID int
	nextProjectID  int
}

// Ensure Store implements store.RecordStore interface
var _ store.RecordStore = (*Store)(nil)

// NewStore creates a Store pre-populated with the demo dataset.
// If logger is nil, a default logger will be used.
func NewStore(logger *slog.Logger) *Store {
	s := NewEmptyStore(logger)
	s.seed()
	return s
}

// NewEmptyStore creates a Store with no data. Useful for tests that build
// their own fixtures.
// If logger is nil, a default logger will be used.
func NewEmptyStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		logger:         logger.With(slog.String("component", "memory_store")),
		students:       []domain.Student{},
		teachers:       []domain.Teacher{},
		materials:      []domain.Material{},
		tests:          []domain.CognitiveTest{},
		projects:       []domain.Project{},
		results:        map[int]map[int]float64{},
		projectCode:    map[int]string{},
		nextUserID:     1,
		nextMaterialID: 1,
		nextTestID:     1,
		nextQuestionID: 1,
		nextProjectID:  1,
	}
}

// ==================== authentication & session ====================

// Login implements store.UserStore.Login.
// Students are scanned before teachers; the first credential match wins and
// becomes the session user.
func (s *Store) Login(ctx context.Context, username, password string) (domain.Principal, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.students {
		if s.students[i].ValidateLogin(username, password) {
			s.sessionRole = domain.RoleStudent
			s.sessionID = s.students[i].ID
			s.hasSession = true
			log.Info("login succeeded",
				slog.String("role", string(domain.RoleStudent)),
				slog.Int("user_id", s.students[i].ID))
			st := copyStudent(s.students[i])
			return &st, nil
		}
	}

	for i := range s.teachers {
		if s.teachers[i].ValidateLogin(username, password) {
			s.sessionRole = domain.RoleTeacher
			s.sessionID = s.teachers[i].ID
			s.hasSession = true
			log.Info("login succeeded",
				slog.String("role", string(domain.RoleTeacher)),
				slog.Int("user_id", s.teachers[i].ID))
			te := s.teachers[i]
			return &te, nil
		}
	}

	log.Debug("login failed", slog.String("username", username))
	return nil, store.ErrInvalidCredentials
}

// Logout implements store.UserStore.Logout.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasSession {
		s.logger.Info("logout", slog.Int("user_id", s.sessionID))
		s.hasSession = false
		s.sessionID = 0
		s.sessionRole = ""
	}
}

// CurrentUser implements store.UserStore.CurrentUser.
// The session is resolved against the stored entity on every call, so the
// returned principal reflects updates made since login.
func (s *Store) CurrentUser(ctx context.Context) (domain.Principal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasSession {
		return nil, false
	}

	switch s.sessionRole {
	case domain.RoleStudent:
		if st := s.findStudent(s.sessionID); st != nil {
			c := copyStudent(*st)
			return &c, true
		}
	case domain.RoleTeacher:
		if te := s.findTeacher(s.sessionID); te != nil {
			c := *te
			return &c, true
		}
	}
	return nil, false
}

// IsLoggedIn implements store.UserStore.IsLoggedIn.
func (s *Store) IsLoggedIn(ctx context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasSession
}

// ==================== students ====================

// CreateStudent implements store.UserStore.CreateStudent.
func (s *Store) CreateStudent(ctx context.Context, student *domain.Student) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := student.Validate(); err != nil {
		log.Warn("student validation failed during create",
			slog.String("error", err.Error()))
		return store.NewStoreError("student", "create", "validation failed",
			fmt.Errorf("%w: %v", store.ErrInvalidEntity, err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.usernameTaken(student.Username) {
		log.Warn("username already taken",
			slog.String("username", student.Username))
		return store.NewStoreError("student", "create", "username already taken",
			store.ErrUsernameExists)
	}

	student.ID = s.nextUserID
	s.nextUserID++
	if student.ProjectIDs == nil {
		student.ProjectIDs = []int{}
	}
	s.students = append(s.students, copyStudent(*student))

	log.Info("student created",
		slog.Int("student_id", student.ID),
		slog.String("username", student.Username))
	return nil
}

// GetAllStudents implements store.UserStore.GetAllStudents.
func (s *Store) GetAllStudents(ctx context.Context) []domain.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Student, len(s.students))
	for i, st := range s.students {
		out[i] = copyStudent(st)
	}
	return out
}

// GetStudentByID implements store.UserStore.GetStudentByID.
func (s *Store) GetStudentByID(ctx context.Context, id int) (*domain.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if st := s.findStudent(id); st != nil {
		c := copyStudent(*st)
		return &c, nil
	}
	return nil, store.ErrStudentNotFound
}

// UpdateStudent implements store.UserStore.UpdateStudent.
func (s *Store) UpdateStudent(ctx context.Context, student *domain.Student) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := student.Validate(); err != nil {
		return store.NewStoreError("student", "update", "validation failed",
			fmt.Errorf("%w: %v", store.ErrInvalidEntity, err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.students {
		if s.students[i].ID == student.ID {
			s.students[i] = copyStudent(*student)
			log.Debug("student updated", slog.Int("student_id", student.ID))
			return nil
		}
	}
	return store.NewStoreError("student", "update", "no such student", store.ErrStudentNotFound)
}

// ==================== teachers ====================

// CreateTeacher implements store.UserStore.CreateTeacher.
func (s *Store) CreateTeacher(ctx context.Context, teacher *domain.Teacher) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := teacher.Validate(); err != nil {
		log.Warn("teacher validation failed during create",
			slog.String("error", err.Error()))
		return store.NewStoreError("teacher", "create", "validation failed",
			fmt.Errorf("%w: %v", store.ErrInvalidEntity, err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.usernameTaken(teacher.Username) {
		log.Warn("username already taken",
			slog.String("username", teacher.Username))
		return store.NewStoreError("teacher", "create", "username already taken",
			store.ErrUsernameExists)
	}

	teacher.ID = s.nextUserID
	s.nextUserID++
	s.teachers = append(s.teachers, *teacher)

	log.Info("teacher created",
		slog.Int("teacher_id", teacher.ID),
		slog.String("username", teacher.Username))
	return nil
}

// GetAllTeachers implements store.UserStore.GetAllTeachers.
func (s *Store) GetAllTeachers(ctx context.Context) []domain.Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Teacher, len(s.teachers))
	copy(out, s.teachers)
	return out
}

// GetTeacherByID implements store.UserStore.GetTeacherByID.
func (s *Store) GetTeacherByID(ctx context.Context, id int) (*domain.Teacher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if te := s.findTeacher(id); te != nil {
		c := *te
		return &c, nil
	}
	return nil, store.ErrTeacherNotFound
}

// UpdateTeacher implements store.UserStore.UpdateTeacher.
func (s *Store) UpdateTeacher(ctx context.Context, teacher *domain.Teacher) error {
	if err := teacher.Validate(); err != nil {
		return store.NewStoreError("teacher", "update", "validation failed",
			fmt.Errorf("%w: %v", store.ErrInvalidEntity, err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.teachers {
		if s.teachers[i].ID == teacher.ID {
			s.teachers[i] = *teacher
			return nil
		}
	}
	return store.NewStoreError("teacher", "update", "no such teacher", store.ErrTeacherNotFound)
}

// ==================== materials ====================

// CreateMaterial implements store.MaterialStore.CreateMaterial.
func (s *Store) CreateMaterial(ctx context.Context, material *domain.Material) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := material.Validate(); err != nil {
		return store.NewStoreError("material", "create", "validation failed",
			fmt.Errorf("%w: %v", store.ErrInvalidEntity, err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	material.ID = s.nextMaterialID
	s.nextMaterialID++
	s.materials = append(s.materials, *material)

	log.Info("material created",
		slog.Int("material_id", material.ID),
		slog.String("topic", material.Topic))
	return nil
}

// GetAllMaterials implements store.MaterialStore.GetAllMaterials.
func (s *Store) GetAllMaterials(ctx context.Context) []domain.Material {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Material, len(s.materials))
	copy(out, s.materials)
	return out
}

// GetMaterialByID implements store.MaterialStore.GetMaterialByID.
func (s *Store) GetMaterialByID(ctx context.Context, id int) (*domain.Material, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.materials {
		if s.materials[i].ID == id {
			c := s.materials[i]
			return &c, nil
		}
	}
	return nil, store.ErrMaterialNotFound
}

// UpdateMaterial implements store.MaterialStore.UpdateMaterial.
func (s *Store) UpdateMaterial(ctx context.Context, material *domain.Material) error {
	if err := material.Validate(); err != nil {
		return store.NewStoreError("material", "update", "validation failed",
			fmt.Errorf("%w: %v", store.ErrInvalidEntity, err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.materials {
		if s.materials[i].ID == material.ID {
			s.materials[i] = *material
			return nil
		}
	}
	return store.NewStoreError("material", "update", "no such material", store.ErrMaterialNotFound)
}

// MaterialsByTopic implements store.MaterialStore.MaterialsByTopic.
func (s *Store) MaterialsByTopic(ctx context.Context, topic string) []domain.Material {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Material{}
	for _, m := range s.materials {
		if strings.EqualFold(m.Topic, topic) {
			out = append(out, m)
		}
	}
	return out
}

// ==================== cognitive tests ====================

// CreateTest implements store.TestStore.CreateTest.
func (s *Store) CreateTest(ctx context.Context, test *domain.CognitiveTest) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := test.Validate(); err != nil {
		return store.NewStoreError("test", "create", "validation failed",
			fmt.Errorf("%w: %v", store.ErrInvalidEntity, err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	test.ID = s.nextTestID
	s.nextTestID++
	s.stampQuestions(test)
	s.tests = append(s.tests, copyTest(*test))

	log.Info("cognitive test created",
		slog.Int("test_id", test.ID),
		slog.Int("question_count", test.QuestionCount()))
	return nil
}

// GetAllTests implements store.TestStore.GetAllTests.
func (s *Store) GetAllTests(ctx context.Context) []domain.CognitiveTest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CognitiveTest, len(s.tests))
	for i, t := range s.tests {
		out[i] = copyTest(t)
	}
	return out
}

// GetTestByID implements store.TestStore.GetTestByID.
func (s *Store) GetTestByID(ctx context.Context, id int) (*domain.CognitiveTest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.tests {
		if s.tests[i].ID == id {
			c := copyTest(s.tests[i])
			return &c, nil
		}
	}
	return nil, store.ErrTestNotFound
}

// UpdateTest implements store.TestStore.UpdateTest.
func (s *Store) UpdateTest(ctx context.Context, test *domain.CognitiveTest) error {
	if err := test.Validate(); err != nil {
		return store.NewStoreError("test", "update", "validation failed",
			fmt.Errorf("%w: %v", store.ErrInvalidEntity, err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tests {
		if s.tests[i].ID == test.ID {
			s.stampQuestions(test)
			s.tests[i] = copyTest(*test)
			return nil
		}
	}
	return store.NewStoreError("test", "update", "no such test", store.ErrTestNotFound)
}

// ActiveTests implements store.TestStore.ActiveTests.
func (s *Store) ActiveTests(ctx context.Context) []domain.CognitiveTest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.CognitiveTest{}
	for _, t := range s.tests {
		if t.IsActive() {
			out = append(out, copyTest(t))
		}
	}
	return out
}

// SaveTestResult implements store.TestStore.SaveTestResult.
// The student's cognitive score is recomputed from the full result set on
// every save; at this scale the O(results) scan is fine.
func (s *Store) SaveTestResult(ctx context.Context, studentID, testID int, score float64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if score < 0 || score > 100 {
		return domain.ErrScoreOutOfRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	student := s.findStudent(studentID)
	if student == nil {
		log.Warn("test result for unknown student",
			slog.Int("student_id", studentID),
			slog.Int("test_id", testID))
		return store.NewStoreError("test result", "save", "no such student",
			store.ErrStudentNotFound)
	}

	if s.results[studentID] == nil {
		s.results[studentID] = map[int]float64{}
	}
	s.results[studentID][testID] = score

	var total float64
	for _, v := range s.results[studentID] {
		total += v
	}
	student.CognitiveScore = total / float64(len(s.results[studentID]))

	log.Info("test result saved",
		slog.Int("student_id", studentID),
		slog.Int("test_id", testID),
		slog.Float64("score", score),
		slog.Float64("cognitive_score", student.CognitiveScore))
	return nil
}

// TestResult implements store.TestStore.TestResult.
func (s *Store) TestResult(ctx context.Context, studentID, testID int) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	score, ok := s.results[studentID][testID]
	return score, ok
}

// TestResultOrZero implements store.TestStore.TestResultOrZero.
func (s *Store) TestResultOrZero(ctx context.Context, studentID, testID int) float64 {
	score, _ := s.TestResult(ctx, studentID, testID)
	return score
}

// ==================== projects ====================

// CreateProject implements store.ProjectStore.CreateProject.
// The owner linkage is applied in the same critical section as the insert,
// and a missing owner aborts the whole operation.
func (s *Store) CreateProject(ctx context.Context, project *domain.Project) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := project.Validate(); err != nil {
		return store.NewStoreError("project", "create", "validation failed",
			fmt.Errorf("%w: %v", store.ErrInvalidEntity, err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	student := s.findStudent(project.StudentID)
	if student == nil {
		log.Warn("project references unknown student",
			slog.Int("student_id", project.StudentID))
		return store.NewStoreError("project", "create", "owner does not exist",
			fmt.Errorf("%w: student %d does not exist",
				store.ErrIntegrityViolation, project.StudentID))
	}

	project.ID = s.nextProjectID
	s.nextProjectID++
	s.projects = append(s.projects, *project)
	student.AddProject(project.ID)

	log.Info("project created",
		slog.Int("project_id", project.ID),
		slog.Int("student_id", project.StudentID))
	return nil
}

// GetAllProjects implements store.ProjectStore.GetAllProjects.
func (s *Store) GetAllProjects(ctx context.Context) []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// GetProjectByID implements store.ProjectStore.GetProjectByID.
func (s *Store) GetProjectByID(ctx context.Context, id int) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.projects {
		if s.projects[i].ID == id {
			c := s.projects[i]
			return &c, nil
		}
	}
	return nil, store.ErrProjectNotFound
}

// UpdateProject implements store.ProjectStore.UpdateProject.
func (s *Store) UpdateProject(ctx context.Context, project *domain.Project) error {
	if err := project.Validate(); err != nil {
		return store.NewStoreError("project", "update", "validation failed",
			fmt.Errorf("%w: %v", store.ErrInvalidEntity, err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == project.ID {
			s.projects[i] = *project
			return nil
		}
	}
	return store.NewStoreError("project", "update", "no such project", store.ErrProjectNotFound)
}

// DeleteProject implements store.ProjectStore.DeleteProject.
// The id is also detached from the owning student so no dangling reference
// remains. Counters never go backwards: a deleted id is gone for good.
func (s *Store) DeleteProject(ctx context.Context, id int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == id {
			ownerID := s.projects[i].StudentID
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			if owner := s.findStudent(ownerID); owner != nil {
				owner.RemoveProject(id)
			}
			delete(s.projectCode, id)

			log.Info("project deleted",
				slog.Int("project_id", id),
				slog.Int("student_id", ownerID))
			return nil
		}
	}
	return store.NewStoreError("project", "delete", "no such project", store.ErrProjectNotFound)
}

// ProjectsByStudent implements store.ProjectStore.ProjectsByStudent.
func (s *Store) ProjectsByStudent(ctx context.Context, studentID int) []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Project{}
	for _, p := range s.projects {
		if p.StudentID == studentID {
			out = append(out, p)
		}
	}
	return out
}

// SaveProjectCode implements store.ProjectStore.SaveProjectCode.
func (s *Store) SaveProjectCode(ctx context.Context, projectID int, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projectCode[projectID] = code
}

// SavedProjectCode implements store.ProjectStore.SavedProjectCode.
func (s *Store) SavedProjectCode(ctx context.Context, projectID int) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	code, ok := s.projectCode[projectID]
	return code, ok
}

// ==================== internals ====================

// findStudent returns a pointer into the students slice, or nil.
// Callers must hold the lock.
func (s *Store) findStudent(id int) *domain.Student {
	for i := range s.students {
		if s.students[i].ID == id {
			return &s.students[i]
		}
	}
	return nil
}

// findTeacher returns a pointer into the teachers slice, or nil.
// Callers must hold the lock.
func (s *Store) findTeacher(id int) *domain.Teacher {
	for i := range s.teachers {
		if s.teachers[i].ID == id {
			return &s.teachers[i]
		}
	}
	return nil
}

// usernameTaken checks the username against students and teachers combined.
// Callers must hold the lock.
func (s *Store) usernameTaken(username string) bool {
	for i := range s.students {
		if s.students[i].Username == username {
			return true
		}
	}
	for i := range s.teachers {
		if s.teachers[i].Username == username {
			return true
		}
	}
	return false
}

// stampQuestions assigns ids to questions that don't have one yet and
// restamps every question's back-reference with the test's id.
// Callers must hold the lock.
func (s *Store) stampQuestions(test *domain.CognitiveTest) {
	for i := range test.Questions {
		if test.Questions[i].ID == 0 {
			test.Questions[i].ID = s.nextQuestionID
			s.nextQuestionID++
		}
		test.Questions[i].TestID = test.ID
	}
}

// copyStudent clones a student including its project id slice, so callers
// cannot reach the store's backing array.
func copyStudent(st domain.Student) domain.Student {
	ids := make([]int, len(st.ProjectIDs))
	copy(ids, st.ProjectIDs)
	st.ProjectIDs = ids
	return st
}

// copyTest clones a test including its question slice.
func copyTest(t domain.CognitiveTest) domain.CognitiveTest {
	qs := make([]domain.Question, len(t.Questions))
	copy(qs, t.Questions)
	t.Questions = qs
	return t
}
