package domain

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNewMaterial(t *testing.T) {
	t.Parallel() // Enable parallel execution
	m, err := NewMaterial("Pengenalan OOP", "Object-Oriented Programming adalah paradigma.", "Dasar OOP", 4)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if m.AuthorID != 4 {
		t.Errorf("Expected author id 4, got %d", m.AuthorID)
	}

	if m.HasResource() {
		t.Error("Expected no resource URL by default")
	}

	_, err = NewMaterial("", "c", "t", 4)
	if err != ErrEmptyMaterialTitle {
		t.Errorf("Expected error %v, got %v", ErrEmptyMaterialTitle, err)
	}

	_, err = NewMaterial("t", "", "t", 4)
	if err != ErrEmptyMaterialContent {
		t.Errorf("Expected error %v, got %v", ErrEmptyMaterialContent, err)
	}

	_, err = NewMaterial("t", "c", "", 4)
	if err != ErrEmptyMaterialTopic {
		t.Errorf("Expected error %v, got %v", ErrEmptyMaterialTopic, err)
	}
}

func TestReadingTimeMinutes(t *testing.T) {
	t.Parallel() // Enable parallel execution
	testCases := []struct {
		name     string
		words    int
		expected int
	}{
		{name: "short content is at least one minute", words: 5, expected: 1},
		{name: "exactly one page", words: 200, expected: 1},
		{name: "just over one page rounds up", words: 201, expected: 2},
		{name: "three pages", words: 600, expected: 3},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			content := strings.TrimSpace(strings.Repeat("kata ", tc.words))
			m, err := NewMaterial("t", content, "topic", 4)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got := m.ReadingTimeMinutes(); got != tc.expected {
				t.Errorf("Expected %d minutes, got %d", tc.expected, got)
			}
		})
	}
}

func TestPreview(t *testing.T) {
	t.Parallel() // Enable parallel execution
	short, err := NewMaterial("t", "singkat", "topic", 4)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got := short.Preview(); got != "singkat" {
		t.Errorf("Expected full content for short material, got %q", got)
	}

	long, err := NewMaterial("t", strings.Repeat("x", 400), "topic", 4)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	got := long.Preview()
	if len(got) != 153 || !strings.HasSuffix(got, "...") {
		t.Errorf("Expected 150 chars plus ellipsis, got %d chars", len(got))
	}

	// Multi-byte content must be cut between runes, never through one.
	wide, err := NewMaterial("t", strings.Repeat("é", 200), "topic", 4)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	got = wide.Preview()
	if !utf8.ValidString(got) {
		t.Errorf("Expected valid UTF-8 preview, got %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 153 {
		t.Errorf("Expected 150 runes plus ellipsis, got %d runes", n)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Expected ellipsis suffix, got %q", got)
	}
}
