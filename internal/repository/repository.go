package repository

import (
	"context"

	"slot_backend/internal/game/machine"
	"slot_backend/internal/model"
	statsModel "slot_backend/internal/repository/spin_stats_repo/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)

	GetBalance(ctx context.Context, id int) (int, error)
	UpdateBalance(ctx context.Context, id int, amount int) error

	// AdjustBalance - атомарно меняет баланс на delta и возвращает новое значение.
	// Списание, возврат, выплата и депозит могут идти конкурентно - каждый шаг
	// обязан применяться как одна операция, а не как чтение-изменение-запись
	AdjustBalance(ctx context.Context, id int, delta int) (int, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

// MachineRepository - реестр игровых автоматов по игрокам.
// Автомат создается лениво при первом обращении и живет до конца процесса
type MachineRepository interface {
	Machine(userID int) *machine.Machine
	StopAll()
}

// SpinStatsRepository - агрегированная статистика спинов процесса
type SpinStatsRepository interface {
	UpdateState(bet, payout float64)
	Stats() statsModel.SpinStats
}
