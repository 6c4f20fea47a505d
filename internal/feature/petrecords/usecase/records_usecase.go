// Package usecase implements the business logic for pet health records.
//
// Every operation first gates on pet ownership: a record under a pet the
// caller does not own is reported exactly like a missing record, so record
// and pet IDs cannot be probed across owners.
package usecase

import (
	"context"
	"errors"

	"petverse_backend/internal/feature/petrecords/domain/entity"
	petentity "petverse_backend/internal/feature/pets/domain/entity"
)

// ErrNotFound covers a missing pet, a pet owned by someone else, and a
// missing or mismatched record. The cases are deliberately conflated.
var ErrNotFound = errors.New("record not found")

// PetRepository is the slice of the pets repository needed for ownership
// checks.
type PetRepository interface {
	FindByID(ctx context.Context, id uint) (*petentity.Pet, error)
}

// RecordRepository abstracts the persistence layer for all record types.
// Find* methods return ErrNotFound for missing rows; mutations expect the
// caller to have fetched the row first.
type RecordRepository interface {
	ListHealthRecords(ctx context.Context, petID uint) ([]entity.HealthRecord, error)
	FindHealthRecord(ctx context.Context, petID, id uint) (*entity.HealthRecord, error)
	CreateHealthRecord(ctx context.Context, rec *entity.HealthRecord) error
	UpdateHealthRecord(ctx context.Context, rec *entity.HealthRecord) error
	DeleteHealthRecord(ctx context.Context, petID, id uint) error

	ListVaccines(ctx context.Context, petID uint) ([]entity.Vaccine, error)
	FindVaccine(ctx context.Context, petID, id uint) (*entity.Vaccine, error)
	CreateVaccine(ctx context.Context, rec *entity.Vaccine) error
	UpdateVaccine(ctx context.Context, rec *entity.Vaccine) error
	DeleteVaccine(ctx context.Context, petID, id uint) error

	ListMedications(ctx context.Context, petID uint) ([]entity.Medication, error)
	FindMedication(ctx context.Context, petID, id uint) (*entity.Medication, error)
	CreateMedication(ctx context.Context, rec *entity.Medication) error
	UpdateMedication(ctx context.Context, rec *entity.Medication) error
	DeleteMedication(ctx context.Context, petID, id uint) error

	ListWeights(ctx context.Context, petID uint) ([]entity.WeightEntry, error)
	FindWeight(ctx context.Context, petID, id uint) (*entity.WeightEntry, error)
	CreateWeight(ctx context.Context, rec *entity.WeightEntry) error
	UpdateWeight(ctx context.Context, rec *entity.WeightEntry) error
	DeleteWeight(ctx context.Context, petID, id uint) error

	ListMedicalVisits(ctx context.Context, petID uint) ([]entity.MedicalVisit, error)
	FindMedicalVisit(ctx context.Context, petID, id uint) (*entity.MedicalVisit, error)
	CreateMedicalVisit(ctx context.Context, rec *entity.MedicalVisit) error
	UpdateMedicalVisit(ctx context.Context, rec *entity.MedicalVisit) error
	DeleteMedicalVisit(ctx context.Context, petID, id uint) error
}

type recordsUsecase struct {
	pets    PetRepository
	records RecordRepository
}

// NewRecordsUsecase creates a new recordsUsecase instance.
func NewRecordsUsecase(pets PetRepository, records RecordRepository) *recordsUsecase {
	return &recordsUsecase{pets: pets, records: records}
}

// ensureOwnership verifies the pet exists and belongs to the caller.
func (u *recordsUsecase) ensureOwnership(ctx context.Context, callerID, petID uint) error {
	pet, err := u.pets.FindByID(ctx, petID)
	if err != nil {
		return ErrNotFound
	}
	if pet.OwnerID != callerID {
		return ErrNotFound
	}
	return nil
}

// ----- health records -----

func (u *recordsUsecase) ListHealthRecords(ctx context.Context, callerID, petID uint) ([]entity.HealthRecord, error) {
	if err := u.ensureOwnership(ctx, callerID, petID); err != nil {
		return nil, err
	}
	return u.records.ListHealthRecords(ctx, petID)
}

func (u *recordsUsecase) CreateHealthRecord(ctx context.Context, callerID uint, rec *entity.HealthRecord) (*entity.HealthRecord, error) {
	if err := u.ensureOwnership(ctx, callerID, rec.PetID); err != nil {
		return nil, err
	}
	rec.ID = 0
	if err := u.records.CreateHealthRecord(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (u *recordsUsecase) UpdateHealthRecord(ctx context.Context, callerID uint, rec *entity.HealthRecord) (*entity.HealthRecord, error) {
	if err := u.ensureOwnership(ctx, callerID, rec.PetID); err != nil {
		return nil, err
	}
	existing, err := u.records.FindHealthRecord(ctx, rec.PetID, rec.ID)
	if err != nil {
		return nil, err
	}
	existing.RecordDate = rec.RecordDate
	existing.Description = rec.Description
	existing.VetID = rec.VetID
	if err := u.records.UpdateHealthRecord(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (u *recordsUsecase) DeleteHealthRecord(ctx context.Context, callerID, petID, id uint) error {
	if err := u.ensureOwnership(ctx, callerID, petID); err != nil {
		return err
	}
	if _, err := u.records.FindHealthRecord(ctx, petID, id); err != nil {
		return err
	}
	return u.records.DeleteHealthRecord(ctx, petID, id)
}

// ----- vaccines -----

func (u *recordsUsecase) ListVaccines(ctx context.Context, callerID, petID uint) ([]entity.Vaccine, error) {
	if err := u.ensureOwnership(ctx, callerID, petID); err != nil {
		return nil, err
	}
	return u.records.ListVaccines(ctx, petID)
}

func (u *recordsUsecase) CreateVaccine(ctx context.Context, callerID uint, rec *entity.Vaccine) (*entity.Vaccine, error) {
	if err := u.ensureOwnership(ctx, callerID, rec.PetID); err != nil {
		return nil, err
	}
	rec.ID = 0
	if err := u.records.CreateVaccine(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (u *recordsUsecase) UpdateVaccine(ctx context.Context, callerID uint, rec *entity.Vaccine) (*entity.Vaccine, error) {
	if err := u.ensureOwnership(ctx, callerID, rec.PetID); err != nil {
		return nil, err
	}
	existing, err := u.records.FindVaccine(ctx, rec.PetID, rec.ID)
	if err != nil {
		return nil, err
	}
	existing.VaccineName = rec.VaccineName
	existing.Date = rec.Date
	existing.NextDue = rec.NextDue
	existing.VetClinic = rec.VetClinic
	existing.Notes = rec.Notes
	if err := u.records.UpdateVaccine(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (u *recordsUsecase) DeleteVaccine(ctx context.Context, callerID, petID, id uint) error {
	if err := u.ensureOwnership(ctx, callerID, petID); err != nil {
		return err
	}
	if _, err := u.records.FindVaccine(ctx, petID, id); err != nil {
		return err
	}
	return u.records.DeleteVaccine(ctx, petID, id)
}

// ----- medications -----

func (u *recordsUsecase) ListMedications(ctx context.Context, callerID, petID uint) ([]entity.Medication, error) {
	if err := u.ensureOwnership(ctx, callerID, petID); err != nil {
		return nil, err
	}
	return u.records.ListMedications(ctx, petID)
}

func (u *recordsUsecase) CreateMedication(ctx context.Context, callerID uint, rec *entity.Medication) (*entity.Medication, error) {
	if err := u.ensureOwnership(ctx, callerID, rec.PetID); err != nil {
		return nil, err
	}
	rec.ID = 0
	if err := u.records.CreateMedication(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (u *recordsUsecase) UpdateMedication(ctx context.Context, callerID uint, rec *entity.Medication) (*entity.Medication, error) {
	if err := u.ensureOwnership(ctx, callerID, rec.PetID); err != nil {
		return nil, err
	}
	existing, err := u.records.FindMedication(ctx, rec.PetID, rec.ID)
	if err != nil {
		return nil, err
	}
	existing.Medication = rec.Medication
	existing.Dose = rec.Dose
	existing.Frequency = rec.Frequency
	existing.StartDate = rec.StartDate
	existing.EndDate = rec.EndDate
	existing.Notes = rec.Notes
	if err := u.records.UpdateMedication(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (u *recordsUsecase) DeleteMedication(ctx context.Context, callerID, petID, id uint) error {
	if err := u.ensureOwnership(ctx, callerID, petID); err != nil {
		return err
	}
	if _, err := u.records.FindMedication(ctx, petID, id); err != nil {
		return err
	}
	return u.records.DeleteMedication(ctx, petID, id)
}

// ----- weight history -----

func (u *recordsUsecase) ListWeights(ctx context.Context, callerID, petID uint) ([]entity.WeightEntry, error) {
	if err := u.ensureOwnership(ctx, callerID, petID); err != nil {
		return nil, err
	}
	return u.records.ListWeights(ctx, petID)
}

func (u *recordsUsecase) CreateWeight(ctx context.Context, callerID uint, rec *entity.WeightEntry) (*entity.WeightEntry, error) {
	if err := u.ensureOwnership(ctx, callerID, rec.PetID); err != nil {
		return nil, err
	}
	rec.ID = 0
	if err := u.records.CreateWeight(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (u *recordsUsecase) UpdateWeight(ctx context.Context, callerID uint, rec *entity.WeightEntry) (*entity.WeightEntry, error) {
	if err := u.ensureOwnership(ctx, callerID, rec.PetID); err != nil {
		return nil, err
	}
	existing, err := u.records.FindWeight(ctx, rec.PetID, rec.ID)
	if err != nil {
		return nil, err
	}
	existing.Date = rec.Date
	existing.Weight = rec.Weight
	if err := u.records.UpdateWeight(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (u *recordsUsecase) DeleteWeight(ctx context.Context, callerID, petID, id uint) error {
	if err := u.ensureOwnership(ctx, callerID, petID); err != nil {
		return err
	}
	if _, err := u.records.FindWeight(ctx, petID, id); err != nil {
		return err
	}
	return u.records.DeleteWeight(ctx, petID, id)
}

// ----- medical visits -----
//
// Visit mutations are reachable only through the vet role guard; the
// recording vet's user ID is stamped on the row. The ownership gate still
// applies: a vet records visits for their own pets' records only when they
// own the pet, otherwise through the owner granting access out of band
// (out of scope), so reads stay owner-scoped.

func (u *recordsUsecase) ListMedicalVisits(ctx context.Context, callerID, petID uint) ([]entity.MedicalVisit, error) {
	if err := u.ensureOwnership(ctx, callerID, petID); err != nil {
		return nil, err
	}
	return u.records.ListMedicalVisits(ctx, petID)
}

func (u *recordsUsecase) CreateMedicalVisit(ctx context.Context, callerID uint, rec *entity.MedicalVisit) (*entity.MedicalVisit, error) {
	if err := u.ensureOwnership(ctx, callerID, rec.PetID); err != nil {
		return nil, err
	}
	rec.ID = 0
	rec.VetID = callerID
	if err := u.records.CreateMedicalVisit(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (u *recordsUsecase) UpdateMedicalVisit(ctx context.Context, callerID uint, rec *entity.MedicalVisit) (*entity.MedicalVisit, error) {
	if err := u.ensureOwnership(ctx, callerID, rec.PetID); err != nil {
		return nil, err
	}
	existing, err := u.records.FindMedicalVisit(ctx, rec.PetID, rec.ID)
	if err != nil {
		return nil, err
	}
	existing.VisitDate = rec.VisitDate
	existing.Diagnosis = rec.Diagnosis
	existing.Treatment = rec.Treatment
	existing.Notes = rec.Notes
	if err := u.records.UpdateMedicalVisit(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (u *recordsUsecase) DeleteMedicalVisit(ctx context.Context, callerID, petID, id uint) error {
	if err := u.ensureOwnership(ctx, callerID, petID); err != nil {
		return err
	}
	if _, err := u.records.FindMedicalVisit(ctx, petID, id); err != nil {
		return err
	}
	return u.records.DeleteMedicalVisit(ctx, petID, id)
}
