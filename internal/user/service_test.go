// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/portfolio-api/internal/core"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, user *User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockRepository) GetByID(
	ctx context.Context,
	id string,
) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, user *User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockRepository) UpdatePassword(
	ctx context.Context,
	id, passwordHash string,
) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *mockRepository) SetActive(
	ctx context.Context,
	id string,
	active bool,
) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *mockRepository) SoftDelete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepository) List(
	ctx context.Context,
	params ListUsersParams,
) ([]User, int, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]User), args.Int(1), args.Error(2)
}

func (m *mockRepository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func testUser() *User {
	return &User{
		ID:       "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
		Email:    "dev@example.com",
		Name:     "Dev",
		Role:     RoleUser,
		IsActive: true,
	}
}

func TestLoadIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("active user", func(t *testing.T) {
		repo := new(mockRepository)
		u := testUser()
		repo.On("GetByID", ctx, u.ID).Return(u, nil).Once()

		identity, err := NewService(repo).LoadIdentity(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, u.ID, identity.ID)
		assert.Equal(t, RoleUser, identity.Role)
	})

	t.Run("deactivated user", func(t *testing.T) {
		repo := new(mockRepository)
		u := testUser()
		u.IsActive = false
		repo.On("GetByID", ctx, u.ID).Return(u, nil).Once()

		_, err := NewService(repo).LoadIdentity(ctx, u.ID)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrUserInactive)
	})

	t.Run("missing user", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetByID", ctx, "gone").Return(nil, core.ErrNotFound).Once()

		_, err := NewService(repo).LoadIdentity(ctx, "gone")
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrNotFound)
	})

	t.Run("role changes surface immediately", func(t *testing.T) {
		repo := new(mockRepository)
		u := testUser()
		u.Role = RoleAdmin
		repo.On("GetByID", ctx, u.ID).Return(u, nil).Once()

		identity, err := NewService(repo).LoadIdentity(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, RoleAdmin, identity.Role)
	})
}

func TestCreateNormalizesEmail(t *testing.T) {
	ctx := context.Background()

	repo := new(mockRepository)
	repo.On("Create", ctx, mock.MatchedBy(func(u *User) bool {
		return u.Email == "mixed@example.com" &&
			u.Role == RoleUser &&
			u.IsActive &&
			u.ID != ""
	})).Return(nil).Once()

	info, err := NewService(repo).Create(
		ctx,
		"Mixed@Example.COM",
		"hash",
		"Mixed",
	)
	require.NoError(t, err)
	assert.Equal(t, "mixed@example.com", info.Email)
	repo.AssertExpectations(t)
}

func TestUpdateUserRole(t *testing.T) {
	ctx := context.Background()

	t.Run("valid role", func(t *testing.T) {
		repo := new(mockRepository)
		u := testUser()
		repo.On("GetByID", ctx, u.ID).Return(u, nil).Once()
		repo.On("Update", ctx, mock.MatchedBy(func(updated *User) bool {
			return updated.Role == RoleAdmin
		})).Return(nil).Once()

		updated, err := NewService(repo).UpdateUserRole(ctx, u.ID, RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, RoleAdmin, updated.Role)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		repo := new(mockRepository)

		_, err := NewService(repo).UpdateUserRole(ctx, "any", "superuser")
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrInvalidInput)
		repo.AssertNotCalled(t, "Update")
	})
}

func TestCanDeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("self delete forbidden", func(t *testing.T) {
		err := NewService(new(mockRepository)).CanDeleteUser(ctx, "u1", "u1")
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrForbidden)
	})

	t.Run("admin target forbidden", func(t *testing.T) {
		repo := new(mockRepository)
		target := testUser()
		target.Role = RoleAdmin
		repo.On("GetByID", ctx, target.ID).Return(target, nil).Once()

		err := NewService(repo).CanDeleteUser(ctx, "requester", target.ID)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrForbidden)
	})

	t.Run("regular user allowed", func(t *testing.T) {
		repo := new(mockRepository)
		target := testUser()
		repo.On("GetByID", ctx, target.ID).Return(target, nil).Once()

		err := NewService(repo).CanDeleteUser(ctx, "requester", target.ID)
		assert.NoError(t, err)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	repo := new(mockRepository)
	u := testUser()
	repo.On("GetByID", ctx, u.ID).Return(u, nil).Once()
	repo.On("Update", ctx, mock.MatchedBy(func(updated *User) bool {
		return updated.Name == "Renamed" &&
			updated.Bio != nil && *updated.Bio == "short bio"
	})).Return(nil).Once()

	name := "  Renamed  "
	bio := "short bio"
	updated, err := NewService(repo).UpdateProfile(ctx, u.ID, UpdateProfileRequest{
		Name: &name,
		Bio:  &bio,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	repo.AssertExpectations(t)
}
