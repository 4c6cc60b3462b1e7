package slot

import (
	"context"
	"errors"

	"slot_backend/internal/game/machine"
	"slot_backend/internal/middleware"
	"slot_backend/internal/model"
	statsModel "slot_backend/internal/repository/spin_stats_repo/model"
)

// Deposit Пополнение баланса игрока
func (s *serv) Deposit(ctx context.Context, amount int) error {
	if amount <= 0 {
		return errors.New("deposit amount must be positive")
	}

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return errors.New("user id not found in context")
	}

	// Атомарное приращение: депозит во время спина не конфликтует с выплатой
	_, err := s.userRepo.AdjustBalance(ctx, userID, amount)
	return err
}

// CheckData Текущее состояние игрока: баланс и идет ли спин
func (s *serv) CheckData(ctx context.Context) (*model.Data, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	balance, err := s.userRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, errors.New("failed to get user balance")
	}

	s.mtx.Lock()
	spinning := s.spinning[userID]
	s.mtx.Unlock()

	return &model.Data{
		Balance:  balance,
		Spinning: spinning,
	}, nil
}

// Stats Агрегированная статистика спинов процесса
func (s *serv) Stats() statsModel.SpinStats {
	return s.statsRepo.Stats()
}

// Snapshot - снимок автомата игрока для стрима кадров
func (s *serv) Snapshot(ctx context.Context) (*machine.View, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	view := s.machineRepo.Machine(userID).Snapshot()
	return &view, nil
}
