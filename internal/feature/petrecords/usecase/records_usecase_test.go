package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petverse_backend/internal/feature/petrecords/domain/entity"
	petentity "petverse_backend/internal/feature/pets/domain/entity"
)

// mockPets serves the ownership gate with a fixed set of pets.
type mockPets struct {
	pets map[uint]*petentity.Pet
}

func (m *mockPets) FindByID(_ context.Context, id uint) (*petentity.Pet, error) {
	pet, ok := m.pets[id]
	if !ok {
		return nil, errors.New("pet not found")
	}
	return pet, nil
}

// mockRecords tracks vaccines in memory; the other record types share the
// same code paths so the vaccine coverage stands in for them.
type mockRecords struct {
	RecordRepository
	vaccines map[uint]*entity.Vaccine
	nextID   uint
}

func newMockRecords() *mockRecords {
	return &mockRecords{vaccines: map[uint]*entity.Vaccine{}, nextID: 1}
}

func (m *mockRecords) ListVaccines(_ context.Context, petID uint) ([]entity.Vaccine, error) {
	var out []entity.Vaccine
	for _, v := range m.vaccines {
		if v.PetID == petID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (m *mockRecords) FindVaccine(_ context.Context, petID, id uint) (*entity.Vaccine, error) {
	v, ok := m.vaccines[id]
	if !ok || v.PetID != petID {
		return nil, ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (m *mockRecords) CreateVaccine(_ context.Context, rec *entity.Vaccine) error {
	rec.ID = m.nextID
	m.nextID++
	cp := *rec
	m.vaccines[rec.ID] = &cp
	return nil
}

func (m *mockRecords) UpdateVaccine(_ context.Context, rec *entity.Vaccine) error {
	cp := *rec
	m.vaccines[rec.ID] = &cp
	return nil
}

func (m *mockRecords) DeleteVaccine(_ context.Context, petID, id uint) error {
	delete(m.vaccines, id)
	return nil
}

func (m *mockRecords) CreateMedicalVisit(_ context.Context, rec *entity.MedicalVisit) error {
	rec.ID = m.nextID
	m.nextID++
	return nil
}

func newTestRecordsUsecase() (*recordsUsecase, *mockRecords) {
	pets := &mockPets{pets: map[uint]*petentity.Pet{
		10: {ID: 10, OwnerID: 1, Name: "Pochi", Species: "dog"},
		20: {ID: 20, OwnerID: 2, Name: "Tama", Species: "cat"},
	}}
	records := newMockRecords()
	return NewRecordsUsecase(pets, records), records
}

func TestRecordsUsecase_OwnershipGate(t *testing.T) {
	t.Parallel()

	uc, _ := newTestRecordsUsecase()

	tests := []struct {
		name     string
		callerID uint
		petID    uint
		wantErr  error
	}{
		{name: "owner passes", callerID: 1, petID: 10},
		{name: "foreign pet is reported missing", callerID: 1, petID: 20, wantErr: ErrNotFound},
		{name: "absent pet is reported missing", callerID: 1, petID: 99, wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := uc.ListVaccines(context.Background(), tt.callerID, tt.petID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRecordsUsecase_VaccineLifecycle(t *testing.T) {
	t.Parallel()

	uc, _ := newTestRecordsUsecase()
	ctx := context.Background()

	created, err := uc.CreateVaccine(ctx, 1, &entity.Vaccine{PetID: 10, VaccineName: "rabies"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	list, err := uc.ListVaccines(ctx, 1, 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	updated, err := uc.UpdateVaccine(ctx, 1, &entity.Vaccine{ID: created.ID, PetID: 10, VaccineName: "rabies booster"})
	require.NoError(t, err)
	assert.Equal(t, "rabies booster", updated.VaccineName)

	t.Run("record under a foreign pet cannot be touched", func(t *testing.T) {
		_, err := uc.UpdateVaccine(ctx, 2, &entity.Vaccine{ID: created.ID, PetID: 10, VaccineName: "x"})
		assert.ErrorIs(t, err, ErrNotFound)

		err = uc.DeleteVaccine(ctx, 2, 10, created.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("updating a missing record", func(t *testing.T) {
		_, err := uc.UpdateVaccine(ctx, 1, &entity.Vaccine{ID: created.ID + 50, PetID: 10, VaccineName: "x"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	require.NoError(t, uc.DeleteVaccine(ctx, 1, 10, created.ID))
	list, err = uc.ListVaccines(ctx, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRecordsUsecase_CreateMedicalVisit_StampsVet(t *testing.T) {
	t.Parallel()

	uc, _ := newTestRecordsUsecase()

	visit, err := uc.CreateMedicalVisit(context.Background(), 1, &entity.MedicalVisit{PetID: 10, VetID: 777, Diagnosis: "healthy"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), visit.VetID, "recording vet comes from the caller, not the body")
}
