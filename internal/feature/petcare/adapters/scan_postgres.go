// Package adapters provides the repository implementation for scan
// results and recommendations.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"petverse_backend/internal/feature/petcare/domain/entity"
	"petverse_backend/internal/feature/petcare/usecase"
)

type scanPostgres struct {
	db *gorm.DB
}

var _ usecase.ScanRepository = (*scanPostgres)(nil)

// NewScanPostgres creates a scanPostgres with the given gorm.DB
// connection.
func NewScanPostgres(db *gorm.DB) *scanPostgres {
	return &scanPostgres{db: db}
}

func (r *scanPostgres) CreateScan(ctx context.Context, scan *entity.CardScan) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

func (r *scanPostgres) ListScans(ctx context.Context, petID uint) ([]entity.CardScan, error) {
	var scans []entity.CardScan
	if err := r.db.WithContext(ctx).Where("pet_id = ?", petID).Order("id").Find(&scans).Error; err != nil {
		return nil, err
	}
	return scans, nil
}

func (r *scanPostgres) CreateRecommendation(ctx context.Context, rec *entity.Recommendation) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *scanPostgres) ListRecommendations(ctx context.Context, petID uint) ([]entity.Recommendation, error) {
	var recs []entity.Recommendation
	if err := r.db.WithContext(ctx).Where("pet_id = ?", petID).Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}
