package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petverse_backend/internal/feature/petcare/domain/entity"
	petentity "petverse_backend/internal/feature/pets/domain/entity"
)

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

type mockStore struct {
	scans []entity.CardScan
	recs  []entity.Recommendation
}

func (m *mockStore) CreateScan(_ context.Context, scan *entity.CardScan) error {
	scan.ID = uint(len(m.scans) + 1)
	m.scans = append(m.scans, *scan)
	return nil
}

func (m *mockStore) ListScans(_ context.Context, petID uint) ([]entity.CardScan, error) {
	var out []entity.CardScan
	for _, s := range m.scans {
		if s.PetID == petID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockStore) CreateRecommendation(_ context.Context, rec *entity.Recommendation) error {
	rec.ID = uint(len(m.recs) + 1)
	m.recs = append(m.recs, *rec)
	return nil
}

func (m *mockStore) ListRecommendations(_ context.Context, petID uint) ([]entity.Recommendation, error) {
	var out []entity.Recommendation
	for _, r := range m.recs {
		if r.PetID == petID {
			out = append(out, r)
		}
	}
	return out, nil
}

type mockExtractor struct {
	text string
	err  error
}

func (m *mockExtractor) ExtractText(context.Context, []byte) (string, error) {
	return m.text, m.err
}

type mockAdvisor struct {
	content string
	err     error
	prompt  string
}

func (m *mockAdvisor) Advise(_ context.Context, prompt string) (string, error) {
	m.prompt = prompt
	return m.content, m.err
}

func testPets() *mockPets {
	weight := 8.2
	return &mockPets{pets: map[uint]*petentity.Pet{
		10: {ID: 10, OwnerID: 1, Name: "Pochi", Species: "dog", Breed: "shiba", Weight: &weight},
		20: {ID: 20, OwnerID: 2, Name: "Tama", Species: "cat"},
	}}
}

func TestPetcareUsecase_ScanVaccineCard(t *testing.T) {
	t.Parallel()

	t.Run("successful scan stores the extracted text", func(t *testing.T) {
		t.Parallel()
		store := &mockStore{}
		uc := NewPetcareUsecase(testPets(), store, &mockExtractor{text: "rabies 2026-01-15"}, nil)

		scan, err := uc.ScanVaccineCard(context.Background(), 1, 10, []byte("image-bytes"))
		require.NoError(t, err)
		assert.Equal(t, "rabies 2026-01-15", scan.ExtractedText)
		assert.Equal(t, uint(10), scan.PetID)
		assert.Len(t, store.scans, 1)
	})

	t.Run("foreign pet is reported missing", func(t *testing.T) {
		t.Parallel()
		uc := NewPetcareUsecase(testPets(), &mockStore{}, &mockExtractor{}, nil)

		_, err := uc.ScanVaccineCard(context.Background(), 1, 20, []byte("image"))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("nil extractor degrades to ErrUnavailable", func(t *testing.T) {
		t.Parallel()
		uc := NewPetcareUsecase(testPets(), &mockStore{}, nil, nil)

		_, err := uc.ScanVaccineCard(context.Background(), 1, 10, []byte("image"))
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("empty image", func(t *testing.T) {
		t.Parallel()
		uc := NewPetcareUsecase(testPets(), &mockStore{}, &mockExtractor{}, nil)

		_, err := uc.ScanVaccineCard(context.Background(), 1, 10, nil)
		assert.ErrorIs(t, err, ErrEmptyImage)
	})

	t.Run("oversized image", func(t *testing.T) {
		t.Parallel()
		uc := NewPetcareUsecase(testPets(), &mockStore{}, &mockExtractor{}, nil)

		_, err := uc.ScanVaccineCard(context.Background(), 1, 10, bytes.Repeat([]byte{1}, MaxImageSize+1))
		assert.ErrorIs(t, err, ErrImageTooLarge)
	})

	t.Run("extractor failure maps to ErrUpstream", func(t *testing.T) {
		t.Parallel()
		uc := NewPetcareUsecase(testPets(), &mockStore{}, &mockExtractor{err: errors.New("quota exceeded")}, nil)

		_, err := uc.ScanVaccineCard(context.Background(), 1, 10, []byte("image"))
		assert.ErrorIs(t, err, ErrUpstream)
	})
}

func TestPetcareUsecase_Recommend(t *testing.T) {
	t.Parallel()

	t.Run("prompt is built from the pet profile", func(t *testing.T) {
		t.Parallel()
		advisor := &mockAdvisor{content: "walk twice a day"}
		store := &mockStore{}
		uc := NewPetcareUsecase(testPets(), store, nil, advisor)

		rec, err := uc.Recommend(context.Background(), 1, 10, "exercise")
		require.NoError(t, err)
		assert.Equal(t, "exercise", rec.RecommendationType)
		assert.Equal(t, "walk twice a day", rec.Content)
		assert.True(t, strings.Contains(advisor.prompt, "dog"), "prompt should mention the species")
		assert.True(t, strings.Contains(advisor.prompt, "shiba"), "prompt should mention the breed")
		assert.Len(t, store.recs, 1)
	})

	t.Run("empty type defaults to general", func(t *testing.T) {
		t.Parallel()
		uc := NewPetcareUsecase(testPets(), &mockStore{}, nil, &mockAdvisor{content: "ok"})

		rec, err := uc.Recommend(context.Background(), 1, 10, "")
		require.NoError(t, err)
		assert.Equal(t, RecommendationTypeGeneral, rec.RecommendationType)
	})

	t.Run("nil advisor degrades to ErrUnavailable", func(t *testing.T) {
		t.Parallel()
		uc := NewPetcareUsecase(testPets(), &mockStore{}, nil, nil)

		_, err := uc.Recommend(context.Background(), 1, 10, "diet")
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("advisor failure maps to ErrUpstream", func(t *testing.T) {
		t.Parallel()
		uc := NewPetcareUsecase(testPets(), &mockStore{}, nil, &mockAdvisor{err: errors.New("backend down")})

		_, err := uc.Recommend(context.Background(), 1, 10, "diet")
		assert.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("foreign pet is reported missing before touching the advisor", func(t *testing.T) {
		t.Parallel()
		advisor := &mockAdvisor{content: "x"}
		uc := NewPetcareUsecase(testPets(), &mockStore{}, nil, advisor)

		_, err := uc.Recommend(context.Background(), 1, 20, "diet")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Empty(t, advisor.prompt)
	})
}

func TestPetcareUsecase_Lists(t *testing.T) {
	t.Parallel()

	store := &mockStore{}
	uc := NewPetcareUsecase(testPets(), store, &mockExtractor{text: "card"}, &mockAdvisor{content: "rec"})
	ctx := context.Background()

	_, err := uc.ScanVaccineCard(ctx, 1, 10, []byte("image"))
	require.NoError(t, err)
	_, err = uc.Recommend(ctx, 1, 10, "diet")
	require.NoError(t, err)

	scans, err := uc.ListScans(ctx, 1, 10)
	require.NoError(t, err)
	assert.Len(t, scans, 1)

	recs, err := uc.ListRecommendations(ctx, 1, 10)
	require.NoError(t, err)
	assert.Len(t, recs, 1)

	_, err = uc.ListScans(ctx, 1, 20)
	assert.ErrorIs(t, err, ErrNotFound)
}
