package domain

import "errors"

// AnimalStatus represents the adoption-pipeline state of an animal.
type AnimalStatus string

const (
	StatusAvailable AnimalStatus = "AVAILABLE"
	StatusReserved  AnimalStatus = "RESERVED"
	StatusPending   AnimalStatus = "PENDING"
	StatusAdopted   AnimalStatus = "ADOPTED"
)

// IsValid reports whether s is one of the known statuses.
func (s AnimalStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusPending, StatusAdopted:
		return true
	}
	return false
}

var ErrAnimalNotFound = errors.New("animal not found")

// Animal is an adoption candidate. Age is free text ("2 years", "6 months"),
// matching how shelters actually record it. Personality order is
// display-relevant and must be preserved.
type Animal struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Breed       string       `json:"breed"`
	Age         string       `json:"age"`
	Gender      string       `json:"gender"`
	Size        string       `json:"size"`
	Location    string       `json:"location"`
	Neutered    bool         `json:"neutered"`
	Status      AnimalStatus `json:"status"`
	Image       string       `json:"image"`
	Story       string       `json:"story"`
	Personality []string     `json:"personality"`
}
