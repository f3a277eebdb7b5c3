package repository

import (
	"context"

	"github.com/aiguilog/aiguilog/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByPseudo(ctx context.Context, pseudo string) (*domain.User, error)
}

type OutingRepository interface {
	Create(ctx context.Context, outing *domain.Outing) error
	// GetOwned returns the outing only when it belongs to userID; a row
	// owned by someone else is indistinguishable from a missing one.
	GetOwned(ctx context.Context, userID, id uuid.UUID) (*domain.Outing, error)
	ListByUser(ctx context.Context, userID uuid.UUID, done *bool) ([]*domain.Outing, error)
	Update(ctx context.Context, outing *domain.Outing) error
	DeleteOwned(ctx context.Context, userID, id uuid.UUID) error
}

type SummitRepository interface {
	Upsert(ctx context.Context, summit *domain.Summit) error
	// Search returns summits whose normalized name contains the
	// normalized query, in name order.
	Search(ctx context.Context, normalizedQuery string) ([]*domain.Summit, error)
}

type Repositories struct {
	User   UserRepository
	Outing OutingRepository
	Summit SummitRepository
}
