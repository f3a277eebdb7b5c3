package postgres

import (
	"context"

	"github.com/aiguilog/aiguilog/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type outingRepository struct {
	db *gorm.DB
}

func NewOutingRepository(db *gorm.DB) *outingRepository {
	return &outingRepository{db: db}
}

func (r *outingRepository) Create(ctx context.Context, outing *domain.Outing) error {
	return wrapErr(r.db.WithContext(ctx).Create(outing).Error)
}

func (r *outingRepository) GetOwned(ctx context.Context, userID, id uuid.UUID) (*domain.Outing, error) {
	var outing domain.Outing
	err := r.db.WithContext(ctx).
		First(&outing, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return &outing, nil
}

func (r *outingRepository) ListByUser(ctx context.Context, userID uuid.UUID, done *bool) ([]*domain.Outing, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if done != nil {
		if *done {
			q = q.Where("type = ?", domain.OutingDone)
		} else {
			q = q.Where("type = ?", domain.OutingPlanned)
		}
	}

	// Effective date first: the actual date for completed outings, the
	// end of the target year for planned ones, then creation time.
	var outings []*domain.Outing
	err := q.
		Order("COALESCE(date, make_date(year::int, 12, 31)) DESC NULLS LAST").
		Order("created_at DESC").
		Find(&outings).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return outings, nil
}

func (r *outingRepository) Update(ctx context.Context, outing *domain.Outing) error {
	return wrapErr(r.db.WithContext(ctx).Save(outing).Error)
}

func (r *outingRepository) DeleteOwned(ctx context.Context, userID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.Outing{})
	if res.Error != nil {
		return wrapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
