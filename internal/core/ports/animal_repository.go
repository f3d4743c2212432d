package ports

import (
	"context"

	"github.com/paws/shelter-backend/internal/core/domain"
)

// AnimalRepository defines persistence operations for animal records.
type AnimalRepository interface {
	Create(ctx context.Context, animal *domain.Animal) (*domain.Animal, error)
	FindByID(ctx context.Context, id string) (*domain.Animal, error)
	// FindByStatus returns all animals with the exact status, in storage order.
	FindByStatus(ctx context.Context, status domain.AnimalStatus) ([]*domain.Animal, error)
	FindAll(ctx context.Context) ([]*domain.Animal, error)
	// Replace overwrites every descriptive field and the status of the record
	// with the given id. Returns domain.ErrAnimalNotFound if no such record.
	Replace(ctx context.Context, id string, animal *domain.Animal) (*domain.Animal, error)
	Count(ctx context.Context) (int64, error)
}
