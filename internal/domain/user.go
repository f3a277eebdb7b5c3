package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FirstName    string         `json:"prenom" gorm:"not null"`
	LastName     string         `json:"nom" gorm:"not null"`
	Pseudo       string         `json:"pseudo" gorm:"uniqueIndex;not null"`
	BirthDate    datatypes.Date `json:"dateNaissance" gorm:"not null"`
	PasswordHash string         `json:"-" gorm:"not null"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}
