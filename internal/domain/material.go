package domain

import (
	"errors"
	"math"
	"strings"
)

// Common validation errors for Material.
var (
	ErrEmptyMaterialTitle   = errors.New("material title cannot be empty")
	ErrEmptyMaterialContent = errors.New("material content cannot be empty")
	ErrEmptyMaterialTopic   = errors.New("material topic cannot be empty")
)

// Reading speed assumed when estimating reading time, in words per minute.
const readingWordsPerMinute = 200

// Length of the content preview, in runes.
const previewLength = 150

// Material is a piece of static learning content tagged with a topic and
// authored by a teacher.
type Material struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Topic       string `json:"topic"`
	AuthorID    int    `json:"author_id"`
	ResourceURL string `json:"resource_url,omitempty"`
}

// NewMaterial creates a Material with the given fields. The ID is zero until
// the store assigns one.
// Returns an error if validation fails.
func NewMaterial(title, content, topic string, authorID int) (*Material, error) {
	m := &Material{
		Title:    title,
		Content:  content,
		Topic:    topic,
		AuthorID: authorID,
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate checks if the Material has valid data.
// Returns an error if any required field is empty.
func (m *Material) Validate() error {
	if m.Title == "" {
		return ErrEmptyMaterialTitle
	}
	if m.Content == "" {
		return ErrEmptyMaterialContent
	}
	if m.Topic == "" {
		return ErrEmptyMaterialTopic
	}
	return nil
}

// ReadingTimeMinutes estimates how long the content takes to read at 200
// words per minute, rounded up, with a minimum of one minute.
func (m *Material) ReadingTimeMinutes() int {
	words := len(strings.Fields(m.Content))
	minutes := int(math.Ceil(float64(words) / readingWordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// Preview returns the first 150 characters of the content, with an ellipsis
// when the content is longer than that. Truncation counts runes, not bytes,
// so a multi-byte character at the cut point stays intact.
func (m *Material) Preview() string {
	runes := []rune(m.Content)
	if len(runes) <= previewLength {
		return m.Content
	}
	return string(runes[:previewLength]) + "..."
}

// HasResource reports whether the optional resource URL is set.
func (m *Material) HasResource() bool {
	return m.ResourceURL != ""
}
