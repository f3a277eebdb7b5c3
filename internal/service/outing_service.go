package service

import (
	"context"
	"time"

	"github.com/aiguilog/aiguilog/internal/domain"
	"github.com/aiguilog/aiguilog/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type OutingService struct {
	outingRepo repository.OutingRepository
}

func NewOutingService(outingRepo repository.OutingRepository) *OutingService {
	return &OutingService{outingRepo: outingRepo}
}

type CreateOutingInput struct {
	Type     domain.OutingType
	Sommet   string
	Altitude int
	Denivele int
	Methode  domain.Method
	Cotation string
	Details  string
	Year     *int
	Date     *time.Time
}

// Create persists a new outing for userID. The owner always comes from
// the authenticated caller, never from the payload.
func (s *OutingService) Create(ctx context.Context, userID uuid.UUID, input CreateOutingInput) (*domain.Outing, error) {
	outing := &domain.Outing{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      input.Type,
		Sommet:    input.Sommet,
		Altitude:  input.Altitude,
		Denivele:  input.Denivele,
		Methode:   input.Methode,
		Cotation:  input.Cotation,
		Details:   input.Details,
		Year:      input.Year,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if input.Date != nil {
		d := datatypes.Date(*input.Date)
		outing.Date = &d
	}

	if err := outing.Validate(); err != nil {
		return nil, err
	}

	if err := s.outingRepo.Create(ctx, outing); err != nil {
		return nil, err
	}
	return outing, nil
}

func (s *OutingService) List(ctx context.Context, userID uuid.UUID, done *bool) ([]*domain.Outing, error) {
	return s.outingRepo.ListByUser(ctx, userID, done)
}

func (s *OutingService) Update(ctx context.Context, userID, id uuid.UUID, patch domain.OutingPatch) (*domain.Outing, error) {
	outing, err := s.outingRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := outing.ApplyPatch(patch); err != nil {
		return nil, err
	}
	outing.UpdatedAt = time.Now()

	if err := s.outingRepo.Update(ctx, outing); err != nil {
		return nil, err
	}
	return outing, nil
}

func (s *OutingService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.outingRepo.DeleteOwned(ctx, userID, id)
}
