package service

import (
	"context"
	"errors"
	"testing"

	"todoapp/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// mockUserRepo is a lightweight in-test mock for repository.Users.
type mockUserRepo struct {
	createFn func(ctx context.Context, u models.User) (int, error)

	created []models.User
}

func (m *mockUserRepo) Create(ctx context.Context, u models.User) (int, error) {
	m.created = append(m.created, u)
	return m.createFn(ctx, u)
}

func registerInput() RegisterInput {
	return RegisterInput{
		Username:  "codingwithroby",
		Email:     "roby@example.com",
		FirstName: "Eric",
		LastName:  "Roby",
		Password:  "test1234",
		Role:      "admin",
	}
}

func TestAccountService_Register(t *testing.T) {
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, u models.User) (int, error) { return 42, nil },
	}
	svc := NewAccountService(repo)

	user, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	assert.Equal(t, 42, user.ID)
	assert.Equal(t, "codingwithroby", user.Username)
	assert.Equal(t, "roby@example.com", user.Email)
	assert.True(t, user.IsActive)
	assert.Equal(t, "admin", user.Role)

	// the stored password must be a valid bcrypt hash of the plaintext
	require.Len(t, repo.created, 1)
	stored := repo.created[0]
	assert.NotEqual(t, "test1234", stored.HashedPassword)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.HashedPassword), []byte("test1234")))
}

func TestAccountService_Register_EmptyPassword(t *testing.T) {
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, u models.User) (int, error) { return 0, nil },
	}
	svc := NewAccountService(repo)

	in := registerInput()
	in.Password = "   "
	_, err := svc.Register(context.Background(), in)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid password")
	assert.Empty(t, repo.created, "repo must not be reached with an invalid password")
}

func TestAccountService_Register_RepoErrorPropagates(t *testing.T) {
	storeErr := errors.New("UNIQUE constraint failed: users.email")
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, u models.User) (int, error) { return 0, storeErr },
	}
	svc := NewAccountService(repo)

	_, err := svc.Register(context.Background(), registerInput())
	require.ErrorIs(t, err, storeErr)
}
