package domain

import "testing"

func TestNewQuestion(t *testing.T) {
	t.Parallel() // Enable parallel execution
	q, err := NewQuestion("Apa itu Class?", "blueprint", "variable", "function", "loop", "a")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Answer key is normalized to uppercase
	if q.CorrectChoice != "A" {
		t.Errorf("Expected normalized key A, got %s", q.CorrectChoice)
	}

	_, err = NewQuestion("", "a", "b", "c", "d", "A")
	if err != ErrEmptyQuestionPrompt {
		t.Errorf("Expected error %v, got %v", ErrEmptyQuestionPrompt, err)
	}

	_, err = NewQuestion("p", "a", "b", "c", "d", "E")
	if err != ErrInvalidChoiceLetter {
		t.Errorf("Expected error %v, got %v", ErrInvalidChoiceLetter, err)
	}
}

func TestChoice(t *testing.T) {
	t.Parallel() // Enable parallel execution
	q, err := NewQuestion("p", "alpha", "beta", "gamma", "delta", "B")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	testCases := []struct {
		letter   string
		expected string
	}{
		{"A", "alpha"},
		{"b", "beta"},
		{"C", "gamma"},
		{"d", "delta"},
		{"E", ""},
		{"", ""},
	}

	for _, tc := range testCases {
		if got := q.Choice(tc.letter); got != tc.expected {
			t.Errorf("Choice(%q): expected %q, got %q", tc.letter, tc.expected, got)
		}
	}
}

func TestIsCorrect(t *testing.T) {
	t.Parallel() // Enable parallel execution
	q, err := NewQuestion("p", "a", "b", "c", "d", "C")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !q.IsCorrect("C") || !q.IsCorrect("c") {
		t.Error("Expected case-insensitive match to be correct")
	}

	if q.IsCorrect("A") || q.IsCorrect("") {
		t.Error("Expected non-matching answer to be incorrect")
	}
}
