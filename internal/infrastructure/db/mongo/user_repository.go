package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/paws/shelter-backend/internal/core/domain"
)

const usersCollection = "users"

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type userDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	FullName        string             `bson:"full_name,omitempty"`
	Email           string             `bson:"email"`
	PasswordHash    string             `bson:"password_hash"`
	Phone           string             `bson:"phone,omitempty"`
	Role            string             `bson:"role"`
	IsVolunteer     bool               `bson:"is_volunteer"`
	VolunteerRole   string             `bson:"volunteer_role,omitempty"`
	Experience      string             `bson:"experience,omitempty"`
	Availability    string             `bson:"availability,omitempty"`
	ApplicationDate time.Time          `bson:"application_date"`
}

func (d userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:              d.ID.Hex(),
		FullName:        d.FullName,
		Email:           d.Email,
		PasswordHash:    d.PasswordHash,
		Phone:           d.Phone,
		Role:            domain.Role(d.Role),
		IsVolunteer:     d.IsVolunteer,
		VolunteerRole:   d.VolunteerRole,
		Experience:      d.Experience,
		Availability:    d.Availability,
		ApplicationDate: d.ApplicationDate.UTC(),
	}
}

func userToDoc(u *domain.User) userDoc {
	return userDoc{
		FullName:        u.FullName,
		Email:           u.Email,
		PasswordHash:    u.PasswordHash,
		Phone:           u.Phone,
		Role:            string(u.Role),
		IsVolunteer:     u.IsVolunteer,
		VolunteerRole:   u.VolunteerRole,
		Experience:      u.Experience,
		Availability:    u.Availability,
		ApplicationDate: u.ApplicationDate.UTC(),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, userToDoc(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, userToDoc(user))
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// EnsureIndexes creates the unique index on email. This, not the service's
// pre-check, is what actually guarantees email uniqueness under concurrent
// registration.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
