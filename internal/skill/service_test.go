// AngelaMos | 2026
// service_test.go

package skill

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, skill *Skill) error {
	args := m.Called(ctx, skill)
	return args.Error(0)
}

func (m *mockRepository) GetByID(
	ctx context.Context,
	id string,
) (*Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Skill), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, skill *Skill) error {
	args := m.Called(ctx, skill)
	return args.Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepository) List(
	ctx context.Context,
	params ListSkillsParams,
) ([]Skill, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Skill), args.Error(1)
}

func (m *mockRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockRepository) ExistsByNameAndCategory(
	ctx context.Context,
	name, category, excludeID string,
) (bool, error) {
	args := m.Called(ctx, name, category, excludeID)
	return args.Bool(0), args.Error(1)
}

func TestCreateSkill(t *testing.T) {
	ctx := context.Background()

	t.Run("trims name and defaults visibility", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On(
			"ExistsByNameAndCategory", ctx, "Go", "backend", uuid.Nil.String(),
		).Return(false, nil).Once()
		repo.On("Create", ctx, mock.MatchedBy(func(s *Skill) bool {
			return s.Name == "Go" && s.IsVisible && s.ID != ""
		})).Return(nil).Once()

		skill, err := NewService(repo).Create(ctx, CreateSkillRequest{
			Name:     "  Go  ",
			Category: "backend",
			Level:    90,
		})

		require.NoError(t, err)
		assert.Equal(t, "Go", skill.Name)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate name in category rejected", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On(
			"ExistsByNameAndCategory", ctx, "Go", "backend", uuid.Nil.String(),
		).Return(true, nil).Once()

		_, err := NewService(repo).Create(ctx, CreateSkillRequest{
			Name:     "Go",
			Category: "backend",
			Level:    90,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSkillExists)
		repo.AssertNotCalled(t, "Create")
	})
}

func TestUpdateSkill(t *testing.T) {
	ctx := context.Background()

	existing := &Skill{
		ID:       "11111111-2222-3333-4444-555555555555",
		Name:     "Go",
		Category: "backend",
		Level:    90,
	}

	t.Run("rename checks for collision excluding itself", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetByID", ctx, existing.ID).Return(existing, nil).Once()
		repo.On(
			"ExistsByNameAndCategory", ctx, "Golang", "backend", existing.ID,
		).Return(false, nil).Once()
		repo.On("Update", ctx, mock.MatchedBy(func(s *Skill) bool {
			return s.Name == "Golang"
		})).Return(nil).Once()

		name := "Golang"
		updated, err := NewService(repo).Update(ctx, existing.ID, UpdateSkillRequest{
			Name: &name,
		})

		require.NoError(t, err)
		assert.Equal(t, "Golang", updated.Name)
		repo.AssertExpectations(t)
	})

	t.Run("level-only update skips collision check", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetByID", ctx, existing.ID).Return(existing, nil).Once()
		repo.On("Update", ctx, mock.MatchedBy(func(s *Skill) bool {
			return s.Level == 95
		})).Return(nil).Once()

		level := 95
		_, err := NewService(repo).Update(ctx, existing.ID, UpdateSkillRequest{
			Level: &level,
		})

		require.NoError(t, err)
		repo.AssertNotCalled(t, "ExistsByNameAndCategory")
	})
}
