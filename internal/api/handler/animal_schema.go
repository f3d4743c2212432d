package handler

import (
	"github.com/paws/shelter-backend/internal/core/domain"
	"github.com/paws/shelter-backend/internal/core/ports"
)

type animalRequest struct {
	Name        string   `json:"name"   validate:"required"`
	Type        string   `json:"type"   validate:"required"`
	Breed       string   `json:"breed"`
	Age         string   `json:"age"`
	Gender      string   `json:"gender"`
	Size        string   `json:"size"`
	Location    string   `json:"location"`
	Neutered    bool     `json:"neutered"`
	Status      string   `json:"status" validate:"omitempty,oneof=AVAILABLE RESERVED PENDING ADOPTED"`
	Image       string   `json:"image"`
	Story       string   `json:"story"`
	Personality []string `json:"personality"`
}

func (r animalRequest) toInput() ports.AnimalInput {
	return ports.AnimalInput{
		Name:        r.Name,
		Type:        r.Type,
		Breed:       r.Breed,
		Age:         r.Age,
		Gender:      r.Gender,
		Size:        r.Size,
		Location:    r.Location,
		Neutered:    r.Neutered,
		Status:      domain.AnimalStatus(r.Status),
		Image:       r.Image,
		Story:       r.Story,
		Personality: r.Personality,
	}
}

type updateAnimalResponse struct {
	Message string         `json:"message"`
	Animal  *domain.Animal `json:"animal"`
}
