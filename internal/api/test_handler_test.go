package api_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goop-edu/goop-api/internal/api"
	"github.com/goop-edu/goop-api/internal/domain"
)

// perfectSheet matches the seeded demo test's answer key.
var perfectSheet = []string{"A", "B", "C", "C", "B", "A", "C", "B", "C", "B"}

func TestListTestsHidesAnswerKeyFromStudents(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/tests", asStudent(t, sandyID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var tests []api.TestResponse
	decodeBody(t, rec, &tests)
	require.Len(t, tests, 1)
	require.Len(t, tests[0].Questions, 10)
	for _, q := range tests[0].Questions {
		assert.Empty(t, q.CorrectChoice)
	}
	assert.NotContains(t, rec.Body.String(), "correct_choice")
}

func TestListTestsIncludesAnswerKeyForTeachers(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/tests", asTeacher(t, bambangID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var tests []api.TestResponse
	decodeBody(t, rec, &tests)
	require.Len(t, tests, 1)
	assert.Equal(t, "A", tests[0].Questions[0].CorrectChoice)
}

func TestSubmitAnswersEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("perfect submission", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/api/tests/1/submissions", asStudent(t, sandyID),
			api.SubmitAnswersRequest{Answers: perfectSheet})
		require.Equal(t, http.StatusOK, rec.Code)

		var result api.TestResultResponse
		decodeBody(t, rec, &result)
		assert.Equal(t, sandyID, result.StudentID)
		assert.Equal(t, 1, result.TestID)
		assert.InDelta(t, 100.0, result.Score, 0.001)
		assert.True(t, result.Taken)

		// The score feeds the student's cognitive score.
		student, err := env.store.GetStudentByID(context.Background(), sandyID)
		require.NoError(t, err)
		assert.InDelta(t, 100.0, student.CognitiveScore, 0.001)
	})

	t.Run("partial submission", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		answers := append([]string{}, perfectSheet[:7]...)
		answers = append(answers, "D", "D", "D")
		rec := env.do(t, http.MethodPost, "/api/tests/1/submissions", asStudent(t, budiID),
			api.SubmitAnswersRequest{Answers: answers})
		require.Equal(t, http.StatusOK, rec.Code)

		var result api.TestResultResponse
		decodeBody(t, rec, &result)
		assert.InDelta(t, 70.0, result.Score, 0.001)
	})

	t.Run("inactive test", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		test, err := env.store.GetTestByID(context.Background(), 1)
		require.NoError(t, err)
		test.Deactivate()
		require.NoError(t, env.store.UpdateTest(context.Background(), test))

		rec := env.do(t, http.MethodPost, "/api/tests/1/submissions", asStudent(t, sandyID),
			api.SubmitAnswersRequest{Answers: perfectSheet})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown test", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/api/tests/99/submissions", asStudent(t, sandyID),
			api.SubmitAnswersRequest{Answers: perfectSheet})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("empty answers", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/api/tests/1/submissions", asStudent(t, sandyID),
			map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetResultEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("student reads own result", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/api/tests/1/submissions", asStudent(t, sandyID),
			api.SubmitAnswersRequest{Answers: perfectSheet})
		require.Equal(t, http.StatusOK, rec.Code)

		path := fmt.Sprintf("/api/tests/1/results/%d", sandyID)
		rec = env.do(t, http.MethodGet, path, asStudent(t, sandyID), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var result api.TestResultResponse
		decodeBody(t, rec, &result)
		assert.InDelta(t, 100.0, result.Score, 0.001)
		assert.True(t, result.Taken)
	})

	t.Run("student cannot read another result", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		path := fmt.Sprintf("/api/tests/1/results/%d", sandyID)
		rec := env.do(t, http.MethodGet, path, asStudent(t, budiID), nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("teacher reads any result", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		path := fmt.Sprintf("/api/tests/1/results/%d", sandyID)
		rec := env.do(t, http.MethodGet, path, asTeacher(t, bambangID), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var result api.TestResultResponse
		decodeBody(t, rec, &result)
		assert.False(t, result.Taken)
		assert.Zero(t, result.Score)
	})
}

func TestCreateTestEndpoint(t *testing.T) {
	t.Parallel()

	newTestPayload := func() api.CreateTestRequest {
		return api.CreateTestRequest{
			Title:           "Tes Struktur Data",
			DurationMinutes: 45,
			Questions: []api.QuestionRequest{
				{
					Prompt:        "Struktur data LIFO adalah?",
					ChoiceA:       "Queue",
					ChoiceB:       "Stack",
					ChoiceC:       "Tree",
					ChoiceD:       "Graph",
					CorrectChoice: "B",
				},
			},
		}
	}

	t.Run("teacher creates test", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/api/tests", asTeacher(t, bambangID), newTestPayload())
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp api.TestResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, 2, resp.ID)
		assert.Equal(t, domain.TestStatusActive, resp.Status)
		require.Len(t, resp.Questions, 1)
		assert.NotZero(t, resp.Questions[0].ID)
	})

	t.Run("student is rejected", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/api/tests", asStudent(t, sandyID), newTestPayload())
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("questions are required", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		payload := newTestPayload()
		payload.Questions = nil
		rec := env.do(t, http.MethodPost, "/api/tests", asTeacher(t, bambangID), payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid answer key", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		payload := newTestPayload()
		payload.Questions[0].CorrectChoice = "E"
		rec := env.do(t, http.MethodPost, "/api/tests", asTeacher(t, bambangID), payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateTestEndpoint(t *testing.T) {
	t.Parallel()

	boolPtr := func(b bool) *bool { return &b }

	t.Run("teacher deactivates the test", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPut, "/api/tests/1", asTeacher(t, bambangID),
			api.UpdateTestRequest{
				Title:           "Tes Pemahaman OOP Dasar (Revisi)",
				DurationMinutes: 45,
				Active:          boolPtr(false),
			})
		require.Equal(t, http.StatusOK, rec.Code)

		var test api.TestResponse
		decodeBody(t, rec, &test)
		assert.Equal(t, "Tes Pemahaman OOP Dasar (Revisi)", test.Title)
		assert.Equal(t, 45, test.DurationMinutes)
		assert.Equal(t, domain.TestStatusInactive, test.Status)

		// Students no longer see it, and submissions are rejected.
		rec = env.do(t, http.MethodGet, "/api/tests", asStudent(t, sandyID), nil)
		var tests []api.TestResponse
		decodeBody(t, rec, &tests)
		assert.Empty(t, tests)

		rec = env.do(t, http.MethodPost, "/api/tests/1/submissions", asStudent(t, sandyID),
			api.SubmitAnswersRequest{Answers: perfectSheet})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("nil active leaves the status alone", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPut, "/api/tests/1", asTeacher(t, bambangID),
			api.UpdateTestRequest{Title: "Tes Pemahaman OOP Dasar"})
		require.Equal(t, http.StatusOK, rec.Code)

		var test api.TestResponse
		decodeBody(t, rec, &test)
		assert.Equal(t, domain.TestStatusActive, test.Status)
	})

	t.Run("student forbidden", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPut, "/api/tests/1", asStudent(t, sandyID),
			api.UpdateTestRequest{Title: "x"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unknown test", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPut, "/api/tests/99", asTeacher(t, bambangID),
			api.UpdateTestRequest{Title: "x"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
