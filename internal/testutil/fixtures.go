package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/aiguilog/aiguilog/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	firstName string
	lastName  string
	pseudo    string
	password  string
	birthDate time.Time
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		firstName: "Jean",
		lastName:  "Testeur",
		pseudo:    fmt.Sprintf("testuser_%s", uuid.New().String()[:8]),
		password:  "testpassword123",
		birthDate: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
	}
}

// WithPseudo sets the pseudo
func (b *UserBuilder) WithPseudo(pseudo string) *UserBuilder {
	b.pseudo = pseudo
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		FirstName:    b.firstName,
		LastName:     b.lastName,
		Pseudo:       b.pseudo,
		BirthDate:    datatypes.Date(b.birthDate),
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    struct {
		ID     string `json:"id"`
		Pseudo string `json:"pseudo"`
	} `json:"user"`
}

// BuildAndAuthenticate creates a user via the API and returns the user and token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	reqBody := map[string]string{
		"prenom":        b.firstName,
		"nom":           b.lastName,
		"pseudo":        b.pseudo,
		"password":      b.password,
		"dateNaissance": b.birthDate.Format("2006-01-02"),
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	userID, _ := uuid.Parse(authResp.User.ID)
	user := &domain.User{
		ID:     userID,
		Pseudo: authResp.User.Pseudo,
	}

	return user, authResp.Token
}

// OutingBuilder creates test outings with a builder pattern
type OutingBuilder struct {
	userID   uuid.UUID
	typ      domain.OutingType
	sommet   string
	altitude int
	denivele int
	methode  domain.Method
	cotation string
	details  string
	year     *int
	date     *time.Time
}

// NewOutingBuilder creates a planned outing builder with default values
func NewOutingBuilder(userID uuid.UUID) *OutingBuilder {
	year := time.Now().Year() + 1
	return &OutingBuilder{
		userID:   userID,
		typ:      domain.OutingPlanned,
		sommet:   "Mont Blanc",
		altitude: 4808,
		denivele: 1200,
		methode:  domain.MethodAlpinisme,
		cotation: "PD",
		year:     &year,
	}
}

// Done turns the outing into a completed one at the given date
func (b *OutingBuilder) Done(date time.Time) *OutingBuilder {
	b.typ = domain.OutingDone
	b.year = nil
	b.date = &date
	return b
}

// WithSommet sets the summit name
func (b *OutingBuilder) WithSommet(sommet string) *OutingBuilder {
	b.sommet = sommet
	return b
}

// WithYear sets the target year
func (b *OutingBuilder) WithYear(year int) *OutingBuilder {
	b.year = &year
	return b
}

// Build creates the outing in the database
func (b *OutingBuilder) Build(t *testing.T, db *gorm.DB) *domain.Outing {
	t.Helper()

	outing := &domain.Outing{
		ID:        uuid.New(),
		UserID:    b.userID,
		Type:      b.typ,
		Sommet:    b.sommet,
		Altitude:  b.altitude,
		Denivele:  b.denivele,
		Methode:   b.methode,
		Cotation:  b.cotation,
		Details:   b.details,
		Year:      b.year,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if b.date != nil {
		d := datatypes.Date(*b.date)
		outing.Date = &d
	}

	if err := db.Create(outing).Error; err != nil {
		t.Fatalf("failed to create outing: %v", err)
	}

	return outing
}
