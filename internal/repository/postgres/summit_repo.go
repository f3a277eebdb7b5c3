package postgres

import (
	"context"

	"github.com/aiguilog/aiguilog/internal/domain"
	"github.com/aiguilog/aiguilog/internal/summitdata"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type summitRepository struct {
	db *gorm.DB
}

func NewSummitRepository(db *gorm.DB) *summitRepository {
	return &summitRepository{db: db}
}

func (r *summitRepository) Upsert(ctx context.Context, summit *domain.Summit) error {
	summit.NormalizedName = summitdata.Normalize(summit.Name)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "normalized_name"}},
			UpdateAll: true,
		}).
		Create(summit).Error
	return wrapErr(err)
}

func (r *summitRepository) Search(ctx context.Context, normalizedQuery string) ([]*domain.Summit, error) {
	var summits []*domain.Summit
	err := r.db.WithContext(ctx).
		Where("normalized_name LIKE ?", "%"+normalizedQuery+"%").
		Order("name ASC").
		Find(&summits).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return summits, nil
}
