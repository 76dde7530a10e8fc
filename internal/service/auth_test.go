package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/skyblocklegends/api/internal/domain"
	"github.com/skyblocklegends/api/internal/repository"
)

type fakeAuthUserRepository struct {
	users map[string]domain.User
}

func (r *fakeAuthUserRepository) FindByUsername(_ context.Context, username string) (domain.User, error) {
	user, ok := r.users[username]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse1"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeAuthUserRepository{
		users: map[string]domain.User{
			"steve": {
				ID:       1,
				Username: "steve",
				Password: string(hash),
				Role:     domain.RoleAdmin,
			},
		},
	}
	svc := NewAuthService(repo)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login(context.Background(), "steve", "correct-horse1")
		require.NoError(t, err)

		assert.Equal(t, uint(1), user.ID)
		assert.Equal(t, domain.RoleAdmin, user.Role)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "alex", "correct-horse1")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "steve", "wrong-password")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})
}
