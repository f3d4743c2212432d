package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/paws/shelter-backend/internal/core/domain"
	"github.com/paws/shelter-backend/internal/core/ports"
)

// ListingCache abstracts the cached AVAILABLE listing (Redis). Cache failures
// never fail a request; the service falls back to the repository.
type ListingCache interface {
	GetAvailable(ctx context.Context) ([]*domain.Animal, bool, error)
	SetAvailable(ctx context.Context, animals []*domain.Animal) error
	Invalidate(ctx context.Context) error
}

// AnimalService implements the animal lifecycle use cases. Authorization for
// the admin-only update is enforced at the route; the service deals purely
// with record state.
type AnimalService struct {
	repo   ports.AnimalRepository
	cache  ListingCache
	logger zerolog.Logger
}

func NewAnimalService(repo ports.AnimalRepository, cache ListingCache, logger zerolog.Logger) *AnimalService {
	return &AnimalService{repo: repo, cache: cache, logger: logger}
}

func (s *AnimalService) Add(ctx context.Context, input ports.AnimalInput) (*domain.Animal, error) {
	animal := animalFromInput(input)
	if animal.Status == "" {
		animal.Status = domain.StatusAvailable
	}

	created, err := s.repo.Create(ctx, animal)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create animal")
		return nil, err
	}

	s.invalidateListing(ctx)
	s.logger.Info().Str("animal_id", created.ID).Str("type", created.Type).Msg("animal added")
	return created, nil
}

func (s *AnimalService) ListAvailable(ctx context.Context) ([]*domain.Animal, error) {
	if s.cache != nil {
		animals, hit, err := s.cache.GetAvailable(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("listing cache read failed, falling back to store")
		} else if hit {
			return animals, nil
		}
	}

	animals, err := s.repo.FindByStatus(ctx, domain.StatusAvailable)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetAvailable(ctx, animals); err != nil {
			s.logger.Warn().Err(err).Msg("listing cache write failed")
		}
	}
	return animals, nil
}

func (s *AnimalService) ListAll(ctx context.Context) ([]*domain.Animal, error) {
	return s.repo.FindAll(ctx)
}

func (s *AnimalService) GetByID(ctx context.Context, id string) (*domain.Animal, error) {
	return s.repo.FindByID(ctx, id)
}

// Search ignores the query and returns the AVAILABLE set.
// TODO: real keyword matching over name/breed/personality.
func (s *AnimalService) Search(ctx context.Context, query string) ([]*domain.Animal, error) {
	_ = query
	return s.ListAvailable(ctx)
}

// Update replaces every descriptive field and the status of an existing
// record. There is no partial patch: either the whole replacement is applied
// or nothing is written.
func (s *AnimalService) Update(ctx context.Context, id string, input ports.AnimalInput) (*domain.Animal, error) {
	replacement := animalFromInput(input)

	updated, err := s.repo.Replace(ctx, id, replacement)
	if err != nil {
		return nil, err
	}

	s.invalidateListing(ctx)
	s.logger.Info().Str("animal_id", updated.ID).Str("status", string(updated.Status)).Msg("animal updated")
	return updated, nil
}

func (s *AnimalService) invalidateListing(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("listing cache invalidation failed")
	}
}

func animalFromInput(in ports.AnimalInput) *domain.Animal {
	return &domain.Animal{
		Name:        in.Name,
		Type:        in.Type,
		Breed:       in.Breed,
		Age:         in.Age,
		Gender:      in.Gender,
		Size:        in.Size,
		Location:    in.Location,
		Neutered:    in.Neutered,
		Status:      in.Status,
		Image:       in.Image,
		Story:       in.Story,
		Personality: in.Personality,
	}
}
