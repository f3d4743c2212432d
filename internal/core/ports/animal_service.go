package ports

import (
	"context"

	"github.com/paws/shelter-backend/internal/core/domain"
)

// AnimalInput carries every mutable field of an animal record. Update has
// full-replace semantics: callers send the complete object.
type AnimalInput struct {
	Name        string
	Type        string
	Breed       string
	Age         string
	Gender      string
	Size        string
	Location    string
	Neutered    bool
	Status      domain.AnimalStatus
	Image       string
	Story       string
	Personality []string
}

// AnimalService defines the animal lifecycle use cases.
type AnimalService interface {
	Add(ctx context.Context, input AnimalInput) (*domain.Animal, error)
	ListAvailable(ctx context.Context) ([]*domain.Animal, error)
	ListAll(ctx context.Context) ([]*domain.Animal, error)
	GetByID(ctx context.Context, id string) (*domain.Animal, error)
	// Search currently ignores the query and returns the AVAILABLE set.
	Search(ctx context.Context, query string) ([]*domain.Animal, error)
	Update(ctx context.Context, id string, input AnimalInput) (*domain.Animal, error)
}
