package models

import (
	"time"

	"github.com/google/uuid"
)

// Pet represents a pet record owned by exactly one user
type Pet struct {
	ID           uuid.UUID `json:"id" db:"id"`                         // Primary key
	OwnerID      uuid.UUID `json:"owner_id" db:"owner_id"`             // Owning user
	Name         string    `json:"name" db:"name"`                     // Pet name
	Species      string    `json:"species" db:"species"`               // e.g. dog, cat
	Breed        *string   `json:"breed" db:"breed"`                   // Optional breed
	DOB          *Date     `json:"dob" db:"dob"`                       // Optional date of birth
	Weight       *float64  `json:"weight" db:"weight"`                 // Optional weight in kg
	PhotoURL     *string   `json:"photo_url" db:"photo_url"`           // Optional photo location
	Age          *string   `json:"age" db:"age"`                       // Free-form age, e.g. "2 years"
	About        *string   `json:"about" db:"about"`                   // Owner notes
	LastVetVisit *Date     `json:"last_vet_visit" db:"last_vet_visit"` // Last veterinary visit
	LastVaxDate  *Date     `json:"last_vax_date" db:"last_vax_date"`   // Last vaccination
	Vaccinated   bool      `json:"vaccinated" db:"vaccinated"`         // Vaccination status
	CreatedAt    time.Time `json:"created_at" db:"created_at"`         // Creation timestamp
}

// GetOwnerID returns the owning user.
func (p *Pet) GetOwnerID() uuid.UUID { return p.OwnerID }

// PetInput carries the fields accepted when creating a pet.
type PetInput struct {
	Name         string
	Species      string
	Breed        *string
	DOB          *Date
	Weight       *float64
	PhotoURL     *string
	Age          *string
	About        *string
	LastVetVisit *Date
	LastVaxDate  *Date
	Vaccinated   bool
}

// PetPatch carries a partial update; nil fields are left untouched.
type PetPatch struct {
	Name         *string
	Species      *string
	Breed        *string
	DOB          *Date
	Weight       *float64
	PhotoURL     *string
	Age          *string
	About        *string
	LastVetVisit *Date
	LastVaxDate  *Date
	Vaccinated   *bool
}

// Apply copies every non-nil field of the patch onto p and reports whether anything changed.
func (patch PetPatch) Apply(p *Pet) bool {
	changed := false
	set := func(dst **string, src *string) {
		if src != nil {
			*dst = src
			changed = true
		}
	}
	setDate := func(dst **Date, src *Date) {
		if src != nil {
			*dst = src
			changed = true
		}
	}

	if patch.Name != nil {
		p.Name = *patch.Name
		changed = true
	}
	if patch.Species != nil {
		p.Species = *patch.Species
		changed = true
	}
	set(&p.Breed, patch.Breed)
	setDate(&p.DOB, patch.DOB)
	if patch.Weight != nil {
		p.Weight = patch.Weight
		changed = true
	}
	set(&p.PhotoURL, patch.PhotoURL)
	set(&p.Age, patch.Age)
	set(&p.About, patch.About)
	setDate(&p.LastVetVisit, patch.LastVetVisit)
	setDate(&p.LastVaxDate, patch.LastVaxDate)
	if patch.Vaccinated != nil {
		p.Vaccinated = *patch.Vaccinated
		changed = true
	}
	return changed
}
