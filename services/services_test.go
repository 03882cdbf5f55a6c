package services

import (
	"context"
	"testing"
	"time"

	"gin-items/dto"
	"gin-items/models"
	"gin-items/repositories"
	"gin-items/security"
	"gin-items/testutil"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	auth   IAuthService
	users  IUserService
	items  IItemService
	tokens *security.TokenManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := repositories.NewStore(testutil.NewDB(t))
	hasher := security.NewPasswordHasher(bcrypt.MinCost)
	tokens := security.NewTokenManager("test-secret", "gin-items", time.Hour)
	logger := zap.NewNop()

	return &fixture{
		auth:   NewAuthService(store, hasher, tokens, logger),
		users:  NewUserService(store, hasher, logger),
		items:  NewItemService(store, logger),
		tokens: tokens,
	}
}

func (f *fixture) register(t *testing.T, email string) *models.User {
	t.Helper()
	user, err := f.auth.Register(context.Background(), dto.RegisterInput{Email: email, Password: "password123"})
	require.NoError(t, err)
	return user
}

func (f *fixture) superuser(t *testing.T, email string) *models.User {
	t.Helper()
	user, created, err := f.users.EnsureSuperuser(context.Background(), email, "password123")
	require.NoError(t, err)
	require.True(t, created)
	return user
}

func ptr[T any](v T) *T {
	return &v
}
