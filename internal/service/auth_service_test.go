package service

import (
	"context"
	"exam_prep_backend/internal/config"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService() (*AuthService, *fakeUsers) {
	users := newFakeUsers()
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour}}
	return NewAuthService(users, cfg), users
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to student", func(t *testing.T) {
		svc, _ := newAuthService()
		user, err := svc.Register(ctx, RegisterInput{Name: "Ana", Email: " Ana@Example.com ", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, model.Student, user.Role)
		assert.Equal(t, "ana@example.com", user.Email)
		assert.NotEqual(t, "secret1", user.Password)
	})

	t.Run("question author allowed", func(t *testing.T) {
		svc, _ := newAuthService()
		user, err := svc.Register(ctx, RegisterInput{Name: "Bo", Email: "bo@example.com", Password: "secret1", Role: model.QAuthor})
		require.NoError(t, err)
		assert.Equal(t, model.QAuthor, user.Role)
	})

	t.Run("superadmin rejected", func(t *testing.T) {
		svc, _ := newAuthService()
		_, err := svc.Register(ctx, RegisterInput{Name: "Eve", Email: "eve@example.com", Password: "secret1", Role: model.SuperAdmin})
		assert.ErrorIs(t, err, util.ErrPermissionDenied)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		svc, _ := newAuthService()
		_, err := svc.Register(ctx, RegisterInput{Name: "Eve", Email: "eve@example.com", Password: "secret1", Role: "TEACHER"})
		assert.ErrorIs(t, err, model.ErrInvalidRole)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, _ := newAuthService()
		_, err := svc.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret1"})
		require.NoError(t, err)
		_, err = svc.Register(ctx, RegisterInput{Name: "Ana2", Email: "ANA@example.com", Password: "secret2"})
		assert.ErrorIs(t, err, util.ErrEmailRegistered)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService()

	user, err := svc.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	res, err := svc.Login(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)
	claims, err := util.ParseJWT(res.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.Student, claims.Role)

	_, err = svc.Login(ctx, "ana@example.com", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	require.NoError(t, users.SetDisabled(ctx, user.ID, true))
	_, err = svc.Login(ctx, "ana@example.com", "secret1")
	assert.ErrorIs(t, err, util.ErrUserDisabled)
}
