package service

import (
	"context"

	"slot_backend/internal/game/machine"
	"slot_backend/internal/model"
	statsModel "slot_backend/internal/repository/spin_stats_repo/model"
)

type SlotService interface {
	Spin(ctx context.Context, req model.SpinRequest) (*model.SpinResult, error)
	Deposit(ctx context.Context, amount int) error
	CheckData(ctx context.Context) (*model.Data, error)
	Stats() statsModel.SpinStats
	Snapshot(ctx context.Context) (*machine.View, error)
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
