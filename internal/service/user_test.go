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

type fakeUserRepository struct {
	users  map[uint]domain.User
	nextID uint
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		users:  make(map[uint]domain.User),
		nextID: 1,
	}
}

func (r *fakeUserRepository) Create(_ context.Context, user domain.User) (domain.User, error) {
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return domain.User{}, repository.ErrUsernameExists
		}
	}

	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user

	return user, nil
}

func (r *fakeUserRepository) FindByID(_ context.Context, id uint) (domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *fakeUserRepository) FindAll(_ context.Context) ([]domain.User, error) {
	all := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		all = append(all, user)
	}

	return all, nil
}

func (r *fakeUserRepository) Update(_ context.Context, user domain.User) (domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	r.users[user.ID] = user

	return user, nil
}

func (r *fakeUserRepository) Delete(_ context.Context, id uint) error {
	delete(r.users, id)

	return nil
}

func TestUserService_CreateUser_HashesPassword(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo)

	created, err := svc.CreateUser(context.Background(), domain.User{
		Username: "steve",
		Password: "plaintext1",
		Role:     domain.RoleModerator,
	})
	require.NoError(t, err)

	stored := repo.users[created.ID]
	assert.NotEqual(t, "plaintext1", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("plaintext1")))
}

func TestUserService_CreateUser_DuplicateUsername(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo)

	_, err := svc.CreateUser(context.Background(), domain.User{Username: "steve", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), domain.User{Username: "steve", Password: "password2"})
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestUserService_UpdateUser_KeepsHashWithoutNewPassword(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo)

	created, err := svc.CreateUser(context.Background(), domain.User{
		Username: "steve",
		Password: "password1",
		Role:     domain.RolePlayer,
	})
	require.NoError(t, err)

	stored := repo.users[created.ID]
	originalHash := stored.Password

	stored.Role = domain.RoleModerator
	_, err = svc.UpdateUser(context.Background(), stored, "")
	require.NoError(t, err)

	assert.Equal(t, originalHash, repo.users[created.ID].Password)
	assert.Equal(t, domain.RoleModerator, repo.users[created.ID].Role)
}

func TestUserService_UpdateUser_RehashesNewPassword(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo)

	created, err := svc.CreateUser(context.Background(), domain.User{Username: "steve", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.UpdateUser(context.Background(), repo.users[created.ID], "password2")
	require.NoError(t, err)

	updated := repo.users[created.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("password2")))
}

func TestUserService_DeleteUser_RejectsSelfDelete(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo)

	created, err := svc.CreateUser(context.Background(), domain.User{Username: "steve", Password: "password1"})
	require.NoError(t, err)

	err = svc.DeleteUser(context.Background(), created.ID, created.ID)
	assert.ErrorIs(t, err, ErrCannotSelfErase)

	_, ok := repo.users[created.ID]
	assert.True(t, ok)
}

func TestUserService_DeleteUser(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo)

	created, err := svc.CreateUser(context.Background(), domain.User{Username: "steve", Password: "password1"})
	require.NoError(t, err)

	err = svc.DeleteUser(context.Background(), created.ID, created.ID+1)
	require.NoError(t, err)

	_, ok := repo.users[created.ID]
	assert.False(t, ok)
}
