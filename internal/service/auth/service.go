package auth

import (
	"github.com/google/uuid"

	"slot_backend/internal/config"
	"slot_backend/internal/repository"
	"slot_backend/internal/service"
)

type serv struct {
	userRepo  repository.UserRepository
	authRepo  repository.AuthRepository
	jwtConfig config.JWTConfig
}

func NewService(userRepo repository.UserRepository, authRepo repository.AuthRepository, jwtConfig config.JWTConfig) service.AuthService {
	return &serv{
		userRepo:  userRepo,
		authRepo:  authRepo,
		jwtConfig: jwtConfig,
	}
}

func generateSessionID() string {
	return uuid.NewString()
}
