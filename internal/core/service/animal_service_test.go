package service

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/paws/shelter-backend/internal/core/domain"
	"github.com/paws/shelter-backend/internal/core/ports"
)

type stubAnimalRepo struct {
	animals []*domain.Animal
	nextID  int
}

func newStubAnimalRepo() *stubAnimalRepo {
	return &stubAnimalRepo{nextID: 1}
}

func cloneAnimal(a *domain.Animal) *domain.Animal {
	clone := *a
	clone.Personality = append([]string(nil), a.Personality...)
	return &clone
}

func (r *stubAnimalRepo) Create(_ context.Context, animal *domain.Animal) (*domain.Animal, error) {
	copy := cloneAnimal(animal)
	copy.ID = "a" + strconv.Itoa(r.nextID)
	r.nextID++
	r.animals = append(r.animals, cloneAnimal(copy))
	return copy, nil
}

func (r *stubAnimalRepo) FindByID(_ context.Context, id string) (*domain.Animal, error) {
	for _, a := range r.animals {
		if a.ID == id {
			return cloneAnimal(a), nil
		}
	}
	return nil, domain.ErrAnimalNotFound
}

func (r *stubAnimalRepo) FindByStatus(_ context.Context, status domain.AnimalStatus) ([]*domain.Animal, error) {
	out := make([]*domain.Animal, 0)
	for _, a := range r.animals {
		if a.Status == status {
			out = append(out, cloneAnimal(a))
		}
	}
	return out, nil
}

func (r *stubAnimalRepo) FindAll(_ context.Context) ([]*domain.Animal, error) {
	out := make([]*domain.Animal, 0, len(r.animals))
	for _, a := range r.animals {
		out = append(out, cloneAnimal(a))
	}
	return out, nil
}

func (r *stubAnimalRepo) Replace(_ context.Context, id string, animal *domain.Animal) (*domain.Animal, error) {
	for i, a := range r.animals {
		if a.ID == id {
			replaced := cloneAnimal(animal)
			replaced.ID = id
			r.animals[i] = cloneAnimal(replaced)
			return replaced, nil
		}
	}
	return nil, domain.ErrAnimalNotFound
}

func (r *stubAnimalRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.animals)), nil
}

type stubListingCache struct {
	stored  []*domain.Animal
	warm    bool
	failing bool

	gets, sets, invalidations int
}

func (c *stubListingCache) GetAvailable(_ context.Context) ([]*domain.Animal, bool, error) {
	c.gets++
	if c.failing {
		return nil, false, errors.New("cache unavailable")
	}
	return c.stored, c.warm, nil
}

func (c *stubListingCache) SetAvailable(_ context.Context, animals []*domain.Animal) error {
	c.sets++
	if c.failing {
		return errors.New("cache unavailable")
	}
	c.stored = animals
	c.warm = true
	return nil
}

func (c *stubListingCache) Invalidate(_ context.Context) error {
	c.invalidations++
	c.stored = nil
	c.warm = false
	return nil
}

func newAnimalService(repo *stubAnimalRepo, cache ListingCache) *AnimalService {
	return NewAnimalService(repo, cache, zerolog.Nop())
}

func sampleInput() ports.AnimalInput {
	return ports.AnimalInput{
		Name:        "Buddy",
		Type:        "dog",
		Breed:       "Mixed Breed",
		Age:         "2 years",
		Gender:      "Male",
		Size:        "medium",
		Location:    "Beijing",
		Neutered:    true,
		Image:       "https://example.com/buddy.jpg",
		Story:       "Found on a rainy day.",
		Personality: []string{"friendly", "active"},
	}
}

func TestAnimalService_Add_DefaultsStatus(t *testing.T) {
	svc := newAnimalService(newStubAnimalRepo(), nil)

	created, err := svc.Add(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if created.Status != domain.StatusAvailable {
		t.Fatalf("expected defaulted status AVAILABLE, got %s", created.Status)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
}

func TestAnimalService_Add_KeepsExplicitStatus(t *testing.T) {
	svc := newAnimalService(newStubAnimalRepo(), nil)

	in := sampleInput()
	in.Status = domain.StatusReserved
	created, err := svc.Add(context.Background(), in)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if created.Status != domain.StatusReserved {
		t.Fatalf("explicit status overwritten: %s", created.Status)
	}
}

func TestAnimalService_AddThenGet_RoundTrip(t *testing.T) {
	svc := newAnimalService(newStubAnimalRepo(), nil)

	in := sampleInput()
	created, err := svc.Add(context.Background(), in)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	want := *created
	if !reflect.DeepEqual(got, &want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, &want)
	}
	if got.Name != in.Name || !reflect.DeepEqual(got.Personality, in.Personality) {
		t.Fatalf("stored record differs from input: %+v", got)
	}
}

func TestAnimalService_ListAvailable_FiltersStatus(t *testing.T) {
	repo := newStubAnimalRepo()
	svc := newAnimalService(repo, nil)

	for _, status := range []domain.AnimalStatus{
		domain.StatusAvailable,
		domain.StatusReserved,
		domain.StatusPending,
		domain.StatusAdopted,
		domain.StatusAvailable,
	} {
		in := sampleInput()
		in.Status = status
		if _, err := svc.Add(context.Background(), in); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	animals, err := svc.ListAvailable(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(animals) != 2 {
		t.Fatalf("expected 2 available animals, got %d", len(animals))
	}
	for _, a := range animals {
		if a.Status != domain.StatusAvailable {
			t.Fatalf("non-available animal in listing: %s", a.Status)
		}
	}
}

func TestAnimalService_ListAvailable_UsesCache(t *testing.T) {
	repo := newStubAnimalRepo()
	cache := &stubListingCache{}
	svc := newAnimalService(repo, cache)

	if _, err := svc.Add(context.Background(), sampleInput()); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// First read misses and warms the cache; second is served from it.
	if _, err := svc.ListAvailable(context.Background()); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected cold read to warm the cache, sets=%d", cache.sets)
	}

	cached, err := svc.ListAvailable(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("warm read must not rewrite the cache, sets=%d", cache.sets)
	}
	if len(cached) != 1 {
		t.Fatalf("unexpected cached listing: %d items", len(cached))
	}
}

func TestAnimalService_ListAvailable_CacheFailureFallsBack(t *testing.T) {
	repo := newStubAnimalRepo()
	cache := &stubListingCache{failing: true}
	svc := newAnimalService(repo, cache)

	if _, err := svc.Add(context.Background(), sampleInput()); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	animals, err := svc.ListAvailable(context.Background())
	if err != nil {
		t.Fatalf("cache failure must not fail the request: %v", err)
	}
	if len(animals) != 1 {
		t.Fatalf("expected fallback read from store, got %d items", len(animals))
	}
}

func TestAnimalService_Mutations_InvalidateCache(t *testing.T) {
	repo := newStubAnimalRepo()
	cache := &stubListingCache{}
	svc := newAnimalService(repo, cache)

	created, err := svc.Add(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if cache.invalidations != 1 {
		t.Fatalf("add must invalidate the listing, invalidations=%d", cache.invalidations)
	}

	in := sampleInput()
	in.Status = domain.StatusAdopted
	if _, err := svc.Update(context.Background(), created.ID, in); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if cache.invalidations != 2 {
		t.Fatalf("update must invalidate the listing, invalidations=%d", cache.invalidations)
	}
}

func TestAnimalService_Update_FullReplace(t *testing.T) {
	repo := newStubAnimalRepo()
	svc := newAnimalService(repo, nil)

	created, _ := svc.Add(context.Background(), sampleInput())

	replacement := ports.AnimalInput{
		Name:        "Rex",
		Type:        "dog",
		Breed:       "German Shepherd",
		Age:         "4 years",
		Gender:      "Male",
		Size:        "large",
		Location:    "Shanghai",
		Neutered:    false,
		Status:      domain.StatusAdopted,
		Image:       "https://example.com/rex.jpg",
		Story:       "A new story.",
		Personality: []string{"calm"},
	}

	updated, err := svc.Update(context.Background(), created.ID, replacement)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("id must be immutable, got %s", updated.ID)
	}
	if updated.Name != "Rex" || updated.Status != domain.StatusAdopted || updated.Neutered {
		t.Fatalf("replacement not applied wholesale: %+v", updated)
	}

	stored, _ := svc.GetByID(context.Background(), created.ID)
	if stored.Story != "A new story." || len(stored.Personality) != 1 {
		t.Fatalf("stored record not fully replaced: %+v", stored)
	}
}

func TestAnimalService_Update_NotFound(t *testing.T) {
	svc := newAnimalService(newStubAnimalRepo(), nil)

	if _, err := svc.Update(context.Background(), "missing", sampleInput()); !errors.Is(err, domain.ErrAnimalNotFound) {
		t.Fatalf("expected ErrAnimalNotFound, got %v", err)
	}
}

func TestAnimalService_Search_ReturnsAvailableSet(t *testing.T) {
	repo := newStubAnimalRepo()
	svc := newAnimalService(repo, nil)

	in := sampleInput()
	in.Status = domain.StatusAdopted
	_, _ = svc.Add(context.Background(), in)
	_, _ = svc.Add(context.Background(), sampleInput())

	// The query is intentionally ignored; search returns the AVAILABLE set.
	animals, err := svc.Search(context.Background(), "anything")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(animals) != 1 || animals[0].Status != domain.StatusAvailable {
		t.Fatalf("unexpected search result: %+v", animals)
	}
}
