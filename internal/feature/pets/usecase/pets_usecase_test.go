package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petverse_backend/internal/feature/pets/domain/entity"
)

// mockPetRepository is a mock implementation of the PetRepository
// interface backed by a map.
type mockPetRepository struct {
	pets   map[uint]*entity.Pet
	nextID uint
}

func newMockPetRepository() *mockPetRepository {
	return &mockPetRepository{pets: map[uint]*entity.Pet{}, nextID: 1}
}

func (m *mockPetRepository) Create(_ context.Context, pet *entity.Pet) error {
	pet.ID = m.nextID
	m.nextID++
	cp := *pet
	m.pets[pet.ID] = &cp
	return nil
}

func (m *mockPetRepository) FindByID(_ context.Context, id uint) (*entity.Pet, error) {
	pet, ok := m.pets[id]
	if !ok {
		return nil, ErrPetNotFound
	}
	cp := *pet
	return &cp, nil
}

func (m *mockPetRepository) FindByOwner(_ context.Context, ownerID uint) ([]entity.Pet, error) {
	var out []entity.Pet
	for _, pet := range m.pets {
		if pet.OwnerID == ownerID {
			out = append(out, *pet)
		}
	}
	return out, nil
}

func (m *mockPetRepository) Update(_ context.Context, pet *entity.Pet) error {
	cp := *pet
	m.pets[pet.ID] = &cp
	return nil
}

func (m *mockPetRepository) Delete(_ context.Context, id uint) error {
	delete(m.pets, id)
	return nil
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestPetsUsecase_Create(t *testing.T) {
	t.Parallel()

	repo := newMockPetRepository()
	uc := NewPetsUsecase(repo)

	pet := &entity.Pet{Name: "Pochi", Species: "dog", OwnerID: 999, ID: 42}
	created, err := uc.Create(context.Background(), 1, pet)
	require.NoError(t, err)

	assert.Equal(t, uint(1), created.OwnerID, "owner must come from the caller, not the body")
	assert.NotEqual(t, uint(42), created.ID, "client-supplied IDs must be ignored")
}

func TestPetsUsecase_Get(t *testing.T) {
	t.Parallel()

	repo := newMockPetRepository()
	uc := NewPetsUsecase(repo)

	created, err := uc.Create(context.Background(), 1, &entity.Pet{Name: "Pochi", Species: "dog"})
	require.NoError(t, err)

	t.Run("owner can read", func(t *testing.T) {
		pet, err := uc.Get(context.Background(), 1, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Pochi", pet.Name)
	})

	t.Run("foreign pet is reported missing", func(t *testing.T) {
		_, err := uc.Get(context.Background(), 2, created.ID)
		assert.ErrorIs(t, err, ErrPetNotFound)
	})

	t.Run("absent pet", func(t *testing.T) {
		_, err := uc.Get(context.Background(), 1, created.ID+100)
		assert.ErrorIs(t, err, ErrPetNotFound)
	})
}

func TestPetsUsecase_Update(t *testing.T) {
	t.Parallel()

	repo := newMockPetRepository()
	uc := NewPetsUsecase(repo)

	created, err := uc.Create(context.Background(), 1, &entity.Pet{Name: "Pochi", Species: "dog", Breed: "shiba"})
	require.NoError(t, err)

	t.Run("only non-nil changes are applied", func(t *testing.T) {
		updated, err := uc.Update(context.Background(), 1, created.ID, PetChanges{
			Name:   strPtr("Hachi"),
			Weight: floatPtr(9.5),
		})
		require.NoError(t, err)
		assert.Equal(t, "Hachi", updated.Name)
		assert.Equal(t, "shiba", updated.Breed, "unset fields stay untouched")
		require.NotNil(t, updated.Weight)
		assert.Equal(t, 9.5, *updated.Weight)
	})

	t.Run("foreign pet cannot be updated", func(t *testing.T) {
		_, err := uc.Update(context.Background(), 2, created.ID, PetChanges{Name: strPtr("Stolen")})
		assert.ErrorIs(t, err, ErrPetNotFound)
	})
}

func TestPetsUsecase_Delete(t *testing.T) {
	t.Parallel()

	repo := newMockPetRepository()
	uc := NewPetsUsecase(repo)

	created, err := uc.Create(context.Background(), 1, &entity.Pet{Name: "Pochi", Species: "dog"})
	require.NoError(t, err)

	t.Run("foreign pet cannot be deleted", func(t *testing.T) {
		err := uc.Delete(context.Background(), 2, created.ID)
		assert.ErrorIs(t, err, ErrPetNotFound)
	})

	t.Run("owner can delete", func(t *testing.T) {
		require.NoError(t, uc.Delete(context.Background(), 1, created.ID))
		_, err := uc.Get(context.Background(), 1, created.ID)
		assert.ErrorIs(t, err, ErrPetNotFound)
	})
}
