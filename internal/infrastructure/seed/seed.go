// Package seed populates demo data on an empty store. It runs once at
// process start and is a no-op when the collections already hold records, so
// restarts never duplicate data. Seeding is also the only path that
// provisions an ADMIN account; the public API cannot.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/paws/shelter-backend/internal/core/domain"
	"github.com/paws/shelter-backend/internal/core/ports"
)

// Run bootstraps demo animals and accounts when the respective collections
// are empty.
func Run(ctx context.Context, users ports.UserRepository, animals ports.AnimalRepository, log zerolog.Logger) error {
	n, err := animals.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: count animals: %w", err)
	}
	if n == 0 {
		for _, a := range demoAnimals() {
			if _, err := animals.Create(ctx, a); err != nil {
				return fmt.Errorf("seed: insert animal %q: %w", a.Name, err)
			}
		}
		log.Info().Int("count", len(demoAnimals())).Msg("seeded demo animals")
	}

	n, err = users.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: count users: %w", err)
	}
	if n == 0 {
		for _, u := range demoUsers() {
			hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("seed: hash password: %w", err)
			}
			u.user.PasswordHash = string(hash)
			u.user.ApplicationDate = time.Now().UTC()
			if _, err := users.Create(ctx, u.user); err != nil {
				return fmt.Errorf("seed: insert user %q: %w", u.user.Email, err)
			}
		}
		log.Info().Int("count", len(demoUsers())).Msg("seeded demo users")
	}

	return nil
}

type seedUser struct {
	user     *domain.User
	password string
}

func demoUsers() []seedUser {
	return []seedUser{
		{
			user: &domain.User{
				FullName: "Test User",
				Email:    "user@example.com",
				Phone:    "12345678",
				Role:     domain.RoleUser,
			},
			password: "password123",
		},
		{
			user: &domain.User{
				FullName:      "Admin User",
				Email:         "admin@example.com",
				Phone:         "87654321",
				Role:          domain.RoleAdmin,
				IsVolunteer:   true,
				VolunteerRole: "Manager",
			},
			password: "admin123",
		},
	}
}

func demoAnimals() []*domain.Animal {
	return []*domain.Animal{
		{
			Name:        "Buddy",
			Type:        "dog",
			Breed:       "Mixed Breed",
			Age:         "2 years",
			Gender:      "Male",
			Size:        "medium",
			Location:    "Beijing",
			Neutered:    true,
			Status:      domain.StatusAvailable,
			Image:       "https://images.unsplash.com/photo-1552053831-71594a27632d?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			Story:       "Buddy was found on a rainy day, shivering in a cardboard box. After our care, he has recovered and become a lively, friendly companion.",
			Personality: []string{"friendly", "active", "playful", "loyal"},
		},
		{
			Name:        "Shadow",
			Type:        "cat",
			Breed:       "Siamese",
			Age:         "6 months",
			Gender:      "Male",
			Size:        "small",
			Location:    "Shenzhen",
			Neutered:    false,
			Status:      domain.StatusAvailable,
			Image:       "https://images.unsplash.com/photo-1543852786-1cf6624b9987?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			Story:       "Shadow was found in a parking lot when he was very small. He's extremely curious and interested in everything around him.",
			Personality: []string{"curious", "active", "playful", "smart"},
		},
		{
			Name:        "Fluffy",
			Type:        "cat",
			Breed:       "Persian",
			Age:         "5 years",
			Gender:      "Female",
			Size:        "small",
			Location:    "Hangzhou",
			Neutered:    true,
			Status:      domain.StatusAvailable,
			Image:       "https://images.unsplash.com/photo-1592194996308-7b43878e84a6?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			Story:       "Fluffy's previous owner had to give her up due to cat allergies. She is a very elegant Persian cat with a gentle, calm personality.",
			Personality: []string{"elegant", "calm", "gentle"},
		},
		{
			Name:        "Charlie",
			Type:        "dog",
			Breed:       "Golden Retriever",
			Age:         "3 years",
			Gender:      "Male",
			Size:        "large",
			Location:    "Chengdu",
			Neutered:    true,
			Status:      domain.StatusAvailable,
			Image:       "https://images.unsplash.com/photo-1568572933382-74d440642117?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			Story:       "Charlie was surrendered when his family moved overseas. He's incredibly friendly and great with children.",
			Personality: []string{"friendly", "patient", "good with kids", "intelligent"},
		},
		{
			Name:        "Pepper",
			Type:        "small animal",
			Breed:       "Guinea Pig",
			Age:         "8 months",
			Gender:      "Female",
			Size:        "small",
			Location:    "Shanghai",
			Neutered:    false,
			Status:      domain.StatusAvailable,
			Image:       "https://images.unsplash.com/photo-1548767797-d8c844163c4c?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			Story:       "Pepper was part of an accidental litter. She's a sweet guinea pig who loves fresh veggies and gentle handling.",
			Personality: []string{"gentle", "vocal", "social", "curious"},
		},
		{
			Name:        "Duke",
			Type:        "dog",
			Breed:       "Beagle",
			Age:         "1 year",
			Gender:      "Male",
			Size:        "medium",
			Location:    "Hangzhou",
			Neutered:    false,
			Status:      domain.StatusAvailable,
			Image:       "https://images.unsplash.com/photo-1537151625747-768eb6cf92b2?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			Story:       "Duke was found as a stray, following his nose everywhere! He's a typical Beagle - curious, friendly, and food-motivated.",
			Personality: []string{"curious", "friendly", "vocal", "energetic"},
		},
		{
			Name:        "Simba",
			Type:        "cat",
			Breed:       "Maine Coon",
			Age:         "5 years",
			Gender:      "Male",
			Size:        "large",
			Location:    "Beijing",
			Neutered:    true,
			Status:      domain.StatusAvailable,
			Image:       "https://images.unsplash.com/photo-1593482892290-5d188b9e56dc?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			Story:       "Simba was found as a stray with matted fur. After grooming and care, he's revealed as a majestic Maine Coon.",
			Personality: []string{"majestic", "gentle", "friendly", "playful"},
		},
		{
			Name:        "Misty",
			Type:        "cat",
			Breed:       "Ragdoll",
			Age:         "3 years",
			Gender:      "Female",
			Size:        "large",
			Location:    "Shenzhen",
			Neutered:    true,
			Status:      domain.StatusPending,
			Image:       "https://images.unsplash.com/photo-1513360371669-4adf3dd7dff8?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			Story:       "Misty was surrendered when her family had a new baby with allergies. She's a gentle Ragdoll who loves to be held.",
			Personality: []string{"gentle", "affectionate", "calm", "relaxed"},
		},
	}
}
