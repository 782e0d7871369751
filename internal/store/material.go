package store

import (
	"context"

	"github.com/goop-edu/goop-api/internal/domain"
)

// MaterialStore defines the interface for learning material persistence.
type MaterialStore interface {
	// CreateMaterial assigns the next material id and inserts the material.
	// Returns validation errors from the domain Material if data is invalid.
	CreateMaterial(ctx context.Context, material *domain.Material) error

	// GetAllMaterials returns a defensive copy of the material collection
	// in insertion order.
	GetAllMaterials(ctx context.Context) []domain.Material

	// GetMaterialByID retrieves a material by id.
	// Returns ErrMaterialNotFound if the material does not exist.
	GetMaterialByID(ctx context.Context, id int) (*domain.Material, error)

	// UpdateMaterial replaces the stored material matching by id.
	// Returns ErrMaterialNotFound if the material does not exist.
	UpdateMaterial(ctx context.Context, material *domain.Material) error

	// MaterialsByTopic returns the materials whose topic matches the given
	// one, compared case-insensitively but otherwise exactly.
	MaterialsByTopic(ctx context.Context, topic string) []domain.Material
}
