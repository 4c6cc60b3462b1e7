package auth_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slot_backend/internal/model"
	"slot_backend/internal/repository/auth_repo"
	"slot_backend/internal/repository/user_repo"
	"slot_backend/internal/service"
	"slot_backend/internal/service/auth"
	"slot_backend/pkg/token"
)

type testJWTCfg struct{}

func (testJWTCfg) AccessTokenSecretKey() []byte       { return []byte("test-secret") }
func (testJWTCfg) AccessTokenDuration() time.Duration { return 15 * time.Minute }
func (testJWTCfg) RefreshTokenDuration() time.Duration {
	return 24 * time.Hour
}

func newService() service.AuthService {
	userRepo := user_repo.NewUserRepository()
	authRepo := auth_repo.NewAuthRepository(userRepo)
	return auth.NewService(userRepo, authRepo, testJWTCfg{})
}

func TestRegisterIssuesTokens(t *testing.T) {
	s := newService()
	ctx := context.Background()

	data, err := s.Register(ctx, &model.User{
		Name:     "Player",
		Login:    "player",
		Password: "secret",
		Balance:  1000,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, data.AccessToken)
	assert.NotEmpty(t, data.RefreshToken)
	assert.NotEmpty(t, data.SessionID)

	// Access токен верифицируется и несет ID пользователя
	claims, err := token.VerifyToken(data.AccessToken, testJWTCfg{}.AccessTokenSecretKey())
	require.NoError(t, err)
	_, err = strconv.Atoi(claims.ID)
	assert.NoError(t, err)
}

func TestRegisterDuplicateLogin(t *testing.T) {
	s := newService()
	ctx := context.Background()

	_, err := s.Register(ctx, &model.User{Login: "dup", Password: "a"})
	require.NoError(t, err)

	_, err = s.Register(ctx, &model.User{Login: "dup", Password: "b"})
	assert.Error(t, err)
}

func TestLoginVerifiesPassword(t *testing.T) {
	s := newService()
	ctx := context.Background()

	_, err := s.Register(ctx, &model.User{Login: "player", Password: "secret"})
	require.NoError(t, err)

	data, err := s.Login(ctx, "player", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, data.AccessToken)

	_, err = s.Login(ctx, "player", "wrong")
	assert.Error(t, err)

	_, err = s.Login(ctx, "nobody", "secret")
	assert.Error(t, err)
}

func TestRefreshRotatesAccessToken(t *testing.T) {
	s := newService()
	ctx := context.Background()

	data, err := s.Register(ctx, &model.User{Login: "player", Password: "secret"})
	require.NoError(t, err)

	accessToken, err := s.Refresh(ctx, data.SessionID, data.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	// Чужой refresh токен отклоняется
	_, err = s.Refresh(ctx, data.SessionID, "forged-token")
	assert.Error(t, err)

	// Несуществующая сессия отклоняется
	_, err = s.Refresh(ctx, "no-such-session", data.RefreshToken)
	assert.Error(t, err)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	s := newService()
	ctx := context.Background()

	data, err := s.Register(ctx, &model.User{Login: "player", Password: "secret"})
	require.NoError(t, err)

	require.NoError(t, s.Logout(ctx, data.SessionID))

	// После выхода refresh по той же сессии не работает
	_, err = s.Refresh(ctx, data.SessionID, data.RefreshToken)
	assert.Error(t, err)

	// Повторный logout - ошибка: сессии уже нет
	assert.Error(t, s.Logout(ctx, data.SessionID))
}
