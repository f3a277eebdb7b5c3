package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type OutingType string

const (
	OutingPlanned OutingType = "a-faire"
	OutingDone    OutingType = "fait"
)

type Method string

const (
	MethodAlpinisme Method = "Alpinisme"
	MethodRandonnee Method = "Randonnée"
	MethodEscalade  Method = "Escalade"
)

// Outing is a single logbook entry. Planned outings carry a target year,
// completed outings carry the actual date; never both.
type Outing struct {
	ID        uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID       `json:"userId" gorm:"type:uuid;not null;index:idx_outings_user_type,priority:1"`
	Type      OutingType      `json:"type" gorm:"not null;index:idx_outings_user_type,priority:2"`
	Sommet    string          `json:"sommet" gorm:"not null"`
	Altitude  int             `json:"altitude" gorm:"not null"`
	Denivele  int             `json:"denivele" gorm:"not null"`
	Methode   Method          `json:"methode" gorm:"not null"`
	Cotation  string          `json:"cotation"`
	Details   string          `json:"details"`
	Year      *int            `json:"annee,omitempty" gorm:"type:integer"`
	Date      *datatypes.Date `json:"date,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (o *Outing) Validate() error {
	if strings.TrimSpace(o.Sommet) == "" {
		return fmt.Errorf("%w: sommet is required", ErrValidation)
	}
	if o.Altitude < 0 {
		return fmt.Errorf("%w: altitude must be non-negative", ErrValidation)
	}
	if o.Denivele < 0 {
		return fmt.Errorf("%w: denivele must be non-negative", ErrValidation)
	}
	switch o.Methode {
	case MethodAlpinisme, MethodRandonnee, MethodEscalade:
	default:
		return fmt.Errorf("%w: unknown methode %q", ErrValidation, o.Methode)
	}
	switch o.Type {
	case OutingPlanned:
		if o.Year == nil {
			return fmt.Errorf("%w: annee is required for a planned outing", ErrValidation)
		}
		if o.Date != nil {
			return fmt.Errorf("%w: a planned outing cannot carry a date", ErrValidation)
		}
	case OutingDone:
		if o.Date == nil {
			return fmt.Errorf("%w: date is required for a completed outing", ErrValidation)
		}
		if o.Year != nil {
			return fmt.Errorf("%w: a completed outing cannot carry an annee", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown type %q", ErrValidation, o.Type)
	}
	return nil
}

// OutingPatch is a partial update; nil fields keep their prior value.
type OutingPatch struct {
	Type     *OutingType
	Sommet   *string
	Altitude *int
	Denivele *int
	Methode  *Method
	Cotation *string
	Details  *string
	Year     *int
	Date     *time.Time
}

// ApplyPatch merges the patch into the outing and re-validates the result,
// so a partial update can never leave both or neither of {annee, date} set.
// Switching between planned and completed clears the previous variant's
// field; the patch must supply the new one.
func (o *Outing) ApplyPatch(p OutingPatch) error {
	if p.Type != nil && *p.Type != o.Type {
		o.Type = *p.Type
		o.Year = nil
		o.Date = nil
	}
	if p.Sommet != nil {
		o.Sommet = *p.Sommet
	}
	if p.Altitude != nil {
		o.Altitude = *p.Altitude
	}
	if p.Denivele != nil {
		o.Denivele = *p.Denivele
	}
	if p.Methode != nil {
		o.Methode = *p.Methode
	}
	if p.Cotation != nil {
		o.Cotation = *p.Cotation
	}
	if p.Details != nil {
		o.Details = *p.Details
	}
	if p.Year != nil {
		o.Year = p.Year
	}
	if p.Date != nil {
		d := datatypes.Date(*p.Date)
		o.Date = &d
	}
	return o.Validate()
}
