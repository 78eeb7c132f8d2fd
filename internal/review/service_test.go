package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) CreateUser(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockRepo) UserExists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) CreateReview(ctx context.Context, rev *Review) error {
	args := m.Called(ctx, rev)
	return args.Error(0)
}

func (m *mockRepo) ListByBook(ctx context.Context, bookID string, limit, offset int) ([]Review, error) {
	args := m.Called(ctx, bookID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Review), args.Error(1)
}

func TestService_CreateUser(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepo)
	repo.On("CreateUser", ctx, mock.Anything).Return(nil)
	svc := NewService(repo)

	first, err := svc.CreateUser(ctx, "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "alice", first.Name)

	// No dedup on name: a second create yields a distinct user.
	second, err := svc.CreateUser(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestService_CreateReview(t *testing.T) {
	ctx := context.Background()

	t.Run("generates id and persists", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("UserExists", ctx, "u-1").Return(true, nil)
		repo.On("CreateReview", ctx, mock.MatchedBy(func(rev *Review) bool {
			return rev.ID != "" && rev.UserID == "u-1" && rev.BookID == "OL123M" && rev.Rating == 5
		})).Return(nil)

		rev, err := NewService(repo).CreateReview(ctx, "u-1", "OL123M", 5, "great")
		require.NoError(t, err)
		assert.NotEmpty(t, rev.ID)
		assert.Equal(t, "great", rev.Text)
	})

	t.Run("unknown user leaves nothing inserted", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("UserExists", ctx, "ghost").Return(false, nil)

		_, err := NewService(repo).CreateReview(ctx, "ghost", "OL123M", 5, "great")
		assert.ErrorIs(t, err, ErrUserNotFound)
		repo.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything)
	})
}
