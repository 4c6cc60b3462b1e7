package auth_repo

import (
	"context"
	"errors"
	"sync"
	"time"

	"slot_backend/internal/model"
	"slot_backend/internal/repository"
)

var ErrSessionNotFound = errors.New("session not found")

// Реализация репозитория сессий в памяти
type repo struct {
	mtx      sync.RWMutex
	sessions map[string]*model.Session
	userRepo repository.UserRepository
}

func NewAuthRepository(userRepo repository.UserRepository) repository.AuthRepository {
	return &repo{
		sessions: make(map[string]*model.Session),
		userRepo: userRepo,
	}
}

// CreateSession - сохраняет сессию.
// Принимает model.Session - (ID, UserID, RefreshToken, ExpiresAt)
func (r *repo) CreateSession(_ context.Context, session *model.Session) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	stored := *session
	r.sessions[session.ID] = &stored
	return nil
}

// GetRefreshTokenBySessionID - получить хэш refresh токена по session ID.
// Просроченные сессии считаются отсутствующими
func (r *repo) GetRefreshTokenBySessionID(_ context.Context, sessionID string) (string, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	session, ok := r.sessions[sessionID]
	if !ok || time.Now().After(session.ExpiresAt) {
		return "", ErrSessionNotFound
	}

	return session.RefreshToken, nil
}

// DeleteSession - удаляет сессию.
// Принимает sessionID которую надо удалить
func (r *repo) DeleteSession(_ context.Context, sessionID string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}

	delete(r.sessions, sessionID)
	return nil
}

// GetUserBySessionID - возвращает модель пользователя по session ID
func (r *repo) GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error) {
	r.mtx.RLock()
	session, ok := r.sessions[sessionID]
	r.mtx.RUnlock()

	if !ok || time.Now().After(session.ExpiresAt) {
		return nil, ErrSessionNotFound
	}

	return r.userRepo.GetUserByID(ctx, session.UserID)
}
