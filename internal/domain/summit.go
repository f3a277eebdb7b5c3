package domain

import (
	"time"

	"github.com/google/uuid"
)

// Summit is a row of the live reference collection. The static bundled
// dataset shares the SummitRecord shape below.
type Summit struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name           string    `json:"nom" gorm:"not null"`
	NormalizedName string    `json:"-" gorm:"uniqueIndex;not null"`
	Altitude       int       `json:"altitude" gorm:"not null"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	WikidataID     string    `json:"wikidata,omitempty"`
	Prominence     *int      `json:"prominence,omitempty"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}

// SummitRecord is the common search-result shape for both sources.
type SummitRecord struct {
	Nom        string   `json:"nom"`
	Altitude   int      `json:"altitude"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	WikidataID string   `json:"wikidata,omitempty"`
	Prominence *int     `json:"prominence,omitempty"`
}

func (s *Summit) Record() SummitRecord {
	return SummitRecord{
		Nom:        s.Name,
		Altitude:   s.Altitude,
		Latitude:   s.Latitude,
		Longitude:  s.Longitude,
		WikidataID: s.WikidataID,
		Prominence: s.Prominence,
	}
}
