// AngelaMos | 2026
// service_test.go

package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/portfolio-api/internal/core"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, message *Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *mockRepository) GetByID(
	ctx context.Context,
	id string,
) (*Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Message), args.Error(1)
}

func (m *mockRepository) MarkRead(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepository) UpdateStatus(
	ctx context.Context,
	id, status string,
) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockRepository) SetReply(
	ctx context.Context,
	id, reply string,
) error {
	args := m.Called(ctx, id, reply)
	return args.Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepository) List(
	ctx context.Context,
	params ListMessagesParams,
) ([]Message, int, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]Message), args.Int(1), args.Error(2)
}

func (m *mockRepository) CountByStatus(
	ctx context.Context,
) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	repo := new(mockRepository)
	repo.On("Create", ctx, mock.MatchedBy(func(msg *Message) bool {
		return msg.Email == "visitor@example.com" &&
			msg.Name == "Visitor" &&
			msg.Status == StatusNew &&
			msg.IPAddress != nil && *msg.IPAddress == "203.0.113.9" &&
			msg.UserAgent != nil
	})).Return(nil).Once()

	msg, err := NewService(repo).Submit(ctx, SubmitMessageRequest{
		Name:    "  Visitor  ",
		Email:   " Visitor@Example.COM ",
		Subject: "Hello",
		Message: "I would like to talk about a project.",
	}, "203.0.113.9", "Mozilla/5.0")

	require.NoError(t, err)
	assert.Equal(t, "visitor@example.com", msg.Email)
	assert.Equal(t, StatusNew, msg.Status)
	repo.AssertExpectations(t)
}

func TestGetMarksRead(t *testing.T) {
	ctx := context.Background()
	id := "11111111-2222-3333-4444-555555555555"

	t.Run("first view marks read", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetByID", ctx, id).
			Return(&Message{ID: id, Status: StatusNew}, nil).Once()
		repo.On("MarkRead", ctx, id).Return(nil).Once()

		msg, err := NewService(repo).Get(ctx, id)
		require.NoError(t, err)
		assert.True(t, msg.IsRead)
		assert.Equal(t, StatusRead, msg.Status)
	})

	t.Run("already read skips the mark", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetByID", ctx, id).
			Return(&Message{ID: id, Status: StatusRead, IsRead: true}, nil).Once()

		_, err := NewService(repo).Get(ctx, id)
		require.NoError(t, err)
		repo.AssertNotCalled(t, "MarkRead")
	})

	t.Run("mark failure does not fail the read", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetByID", ctx, id).
			Return(&Message{ID: id, Status: StatusNew}, nil).Once()
		repo.On("MarkRead", ctx, id).Return(errors.New("write failed")).Once()

		msg, err := NewService(repo).Get(ctx, id)
		require.NoError(t, err)
		assert.False(t, msg.IsRead)
		assert.Equal(t, StatusNew, msg.Status)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	id := "11111111-2222-3333-4444-555555555555"

	t.Run("valid status", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("UpdateStatus", ctx, id, StatusArchived).Return(nil).Once()
		repo.On("GetByID", ctx, id).
			Return(&Message{ID: id, Status: StatusArchived}, nil).Once()

		msg, err := NewService(repo).UpdateStatus(ctx, id, StatusArchived)
		require.NoError(t, err)
		assert.Equal(t, StatusArchived, msg.Status)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		repo := new(mockRepository)

		_, err := NewService(repo).UpdateStatus(ctx, id, "spam")
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrInvalidInput)
		repo.AssertNotCalled(t, "UpdateStatus")
	})
}
