package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/paws/shelter-backend/internal/core/domain"
)

const animalsCollection = "animals"

type AnimalRepository struct {
	coll *mongo.Collection
}

func NewAnimalRepository(db *mongo.Database) *AnimalRepository {
	return &AnimalRepository{coll: db.Collection(animalsCollection)}
}

type animalDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Type        string             `bson:"type"`
	Breed       string             `bson:"breed,omitempty"`
	Age         string             `bson:"age,omitempty"`
	Gender      string             `bson:"gender,omitempty"`
	Size        string             `bson:"size,omitempty"`
	Location    string             `bson:"location,omitempty"`
	Neutered    bool               `bson:"neutered"`
	Status      string             `bson:"status"`
	Image       string             `bson:"image,omitempty"`
	Story       string             `bson:"story,omitempty"`
	Personality []string           `bson:"personality,omitempty"`
}

func (d animalDoc) toDomain() *domain.Animal {
	return &domain.Animal{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Type:        d.Type,
		Breed:       d.Breed,
		Age:         d.Age,
		Gender:      d.Gender,
		Size:        d.Size,
		Location:    d.Location,
		Neutered:    d.Neutered,
		Status:      domain.AnimalStatus(d.Status),
		Image:       d.Image,
		Story:       d.Story,
		Personality: d.Personality,
	}
}

func animalToDoc(a *domain.Animal) animalDoc {
	return animalDoc{
		Name:        a.Name,
		Type:        a.Type,
		Breed:       a.Breed,
		Age:         a.Age,
		Gender:      a.Gender,
		Size:        a.Size,
		Location:    a.Location,
		Neutered:    a.Neutered,
		Status:      string(a.Status),
		Image:       a.Image,
		Story:       a.Story,
		Personality: a.Personality,
	}
}

func (r *AnimalRepository) Create(ctx context.Context, animal *domain.Animal) (*domain.Animal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, animalToDoc(animal))
	if err != nil {
		return nil, fmt.Errorf("insert animal: %w", err)
	}

	created := *animal
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *AnimalRepository) FindByID(ctx context.Context, id string) (*domain.Animal, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAnimalNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc animalDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAnimalNotFound
		}
		return nil, fmt.Errorf("find animal: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AnimalRepository) FindByStatus(ctx context.Context, status domain.AnimalStatus) ([]*domain.Animal, error) {
	return r.find(ctx, bson.M{"status": string(status)})
}

func (r *AnimalRepository) FindAll(ctx context.Context) ([]*domain.Animal, error) {
	return r.find(ctx, bson.M{})
}

func (r *AnimalRepository) find(ctx context.Context, filter bson.M) ([]*domain.Animal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find animals: %w", err)
	}
	defer cur.Close(ctx)

	animals := make([]*domain.Animal, 0)
	for cur.Next(ctx) {
		var doc animalDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode animal: %w", err)
		}
		animals = append(animals, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate animals: %w", err)
	}
	return animals, nil
}

// Replace overwrites the whole document with the given id. The replacement
// either lands in full or, when the id is unknown, nothing is written.
func (r *AnimalRepository) Replace(ctx context.Context, id string, animal *domain.Animal) (*domain.Animal, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAnimalNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, animalToDoc(animal))
	if err != nil {
		return nil, fmt.Errorf("replace animal: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrAnimalNotFound
	}

	updated := *animal
	updated.ID = id
	return &updated, nil
}

func (r *AnimalRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count animals: %w", err)
	}
	return n, nil
}
