package postgres

import (
	"context"

	"github.com/aiguilog/aiguilog/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if isUniqueViolation(err) {
		// Covers the race between the pre-insert pseudo check and the
		// unique index.
		return domain.ErrPseudoTaken
	}
	return wrapErr(err)
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return &user, nil
}

func (r *userRepository) GetByPseudo(ctx context.Context, pseudo string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "pseudo = ?", pseudo).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return &user, nil
}
