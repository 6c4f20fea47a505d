// Package adapters provides the repository implementation for pet health
// records.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"petverse_backend/internal/feature/petrecords/domain/entity"
	"petverse_backend/internal/feature/petrecords/usecase"
)

type recordsPostgres struct {
	db *gorm.DB
}

var _ usecase.RecordRepository = (*recordsPostgres)(nil)

// NewRecordsPostgres creates a recordsPostgres with the given gorm.DB
// connection.
func NewRecordsPostgres(db *gorm.DB) *recordsPostgres {
	return &recordsPostgres{db: db}
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usecase.ErrNotFound
	}
	return err
}

// ----- health records -----

func (r *recordsPostgres) ListHealthRecords(ctx context.Context, petID uint) ([]entity.HealthRecord, error) {
	var recs []entity.HealthRecord
	if err := r.db.WithContext(ctx).Where("pet_id = ?", petID).Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *recordsPostgres) FindHealthRecord(ctx context.Context, petID, id uint) (*entity.HealthRecord, error) {
	var rec entity.HealthRecord
	if err := r.db.WithContext(ctx).Where("pet_id = ? AND id = ?", petID, id).First(&rec).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &rec, nil
}

func (r *recordsPostgres) CreateHealthRecord(ctx context.Context, rec *entity.HealthRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recordsPostgres) UpdateHealthRecord(ctx context.Context, rec *entity.HealthRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *recordsPostgres) DeleteHealthRecord(ctx context.Context, petID, id uint) error {
	return r.db.WithContext(ctx).Where("pet_id = ?", petID).Delete(&entity.HealthRecord{}, id).Error
}

// ----- vaccines -----

func (r *recordsPostgres) ListVaccines(ctx context.Context, petID uint) ([]entity.Vaccine, error) {
	var recs []entity.Vaccine
	if err := r.db.WithContext(ctx).Where("pet_id = ?", petID).Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *recordsPostgres) FindVaccine(ctx context.Context, petID, id uint) (*entity.Vaccine, error) {
	var rec entity.Vaccine
	if err := r.db.WithContext(ctx).Where("pet_id = ? AND id = ?", petID, id).First(&rec).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &rec, nil
}

func (r *recordsPostgres) CreateVaccine(ctx context.Context, rec *entity.Vaccine) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recordsPostgres) UpdateVaccine(ctx context.Context, rec *entity.Vaccine) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *recordsPostgres) DeleteVaccine(ctx context.Context, petID, id uint) error {
	return r.db.WithContext(ctx).Where("pet_id = ?", petID).Delete(&entity.Vaccine{}, id).Error
}

// ----- medications -----

func (r *recordsPostgres) ListMedications(ctx context.Context, petID uint) ([]entity.Medication, error) {
	var recs []entity.Medication
	if err := r.db.WithContext(ctx).Where("pet_id = ?", petID).Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *recordsPostgres) FindMedication(ctx context.Context, petID, id uint) (*entity.Medication, error) {
	var rec entity.Medication
	if err := r.db.WithContext(ctx).Where("pet_id = ? AND id = ?", petID, id).First(&rec).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &rec, nil
}

func (r *recordsPostgres) CreateMedication(ctx context.Context, rec *entity.Medication) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recordsPostgres) UpdateMedication(ctx context.Context, rec *entity.Medication) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *recordsPostgres) DeleteMedication(ctx context.Context, petID, id uint) error {
	return r.db.WithContext(ctx).Where("pet_id = ?", petID).Delete(&entity.Medication{}, id).Error
}

// ----- weight history -----

func (r *recordsPostgres) ListWeights(ctx context.Context, petID uint) ([]entity.WeightEntry, error) {
	var recs []entity.WeightEntry
	if err := r.db.WithContext(ctx).Where("pet_id = ?", petID).Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *recordsPostgres) FindWeight(ctx context.Context, petID, id uint) (*entity.WeightEntry, error) {
	var rec entity.WeightEntry
	if err := r.db.WithContext(ctx).Where("pet_id = ? AND id = ?", petID, id).First(&rec).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &rec, nil
}

func (r *recordsPostgres) CreateWeight(ctx context.Context, rec *entity.WeightEntry) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recordsPostgres) UpdateWeight(ctx context.Context, rec *entity.WeightEntry) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *recordsPostgres) DeleteWeight(ctx context.Context, petID, id uint) error {
	return r.db.WithContext(ctx).Where("pet_id = ?", petID).Delete(&entity.WeightEntry{}, id).Error
}

// ----- medical visits -----

func (r *recordsPostgres) ListMedicalVisits(ctx context.Context, petID uint) ([]entity.MedicalVisit, error) {
	var recs []entity.MedicalVisit
	if err := r.db.WithContext(ctx).Where("pet_id = ?", petID).Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *recordsPostgres) FindMedicalVisit(ctx context.Context, petID, id uint) (*entity.MedicalVisit, error) {
	var rec entity.MedicalVisit
	if err := r.db.WithContext(ctx).Where("pet_id = ? AND id = ?", petID, id).First(&rec).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &rec, nil
}

func (r *recordsPostgres) CreateMedicalVisit(ctx context.Context, rec *entity.MedicalVisit) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recordsPostgres) UpdateMedicalVisit(ctx context.Context, rec *entity.MedicalVisit) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *recordsPostgres) DeleteMedicalVisit(ctx context.Context, petID, id uint) error {
	return r.db.WithContext(ctx).Where("pet_id = ?", petID).Delete(&entity.MedicalVisit{}, id).Error
}
