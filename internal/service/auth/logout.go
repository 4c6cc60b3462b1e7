package auth

import (
	"context"
)

func (s *serv) Logout(ctx context.Context, sessionID string) error {
	// Удаление сессии делает refresh токен недействительным
	return s.authRepo.DeleteSession(ctx, sessionID)
}
