package slot

import (
	"context"
	"errors"
	"fmt"
	"log"

	"slot_backend/internal/middleware"
	"slot_backend/internal/model"
)

// Spin выполняет один полный спин: списание стоимости, выбор исхода,
// анимация барабанов и оценка выигрышной линии после их остановки
func (s *serv) Spin(ctx context.Context, spinReq model.SpinRequest) (*model.SpinResult, error) {
	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	// Защита от повторного входа: пока спин в полете, новый запрос - no-op.
	// Ни списания, ни выбора исхода не происходит
	s.mtx.Lock()
	if s.spinning[userID] {
		s.mtx.Unlock()
		return nil, model.ErrSpinInProgress
	}
	s.spinning[userID] = true
	s.mtx.Unlock()

	return s.executeSpin(ctx, userID, spinReq.ForceWin)
}

// executeSpin - тело спина. Флаг spinning уже взят; каждый путь выхода обязан
// его снять, кроме ухода в фон - там флаг снимает отложенная оценка исхода
func (s *serv) executeSpin(ctx context.Context, userID int, forceWin bool) (*model.SpinResult, error) {
	cost := s.slotCfg.SpinCost()

	// Атомарное списание стоимости спина: проверка баланса и запись - одна операция,
	// конкурентный депозит между ними не потеряется
	if _, err := s.userRepo.AdjustBalance(ctx, userID, -cost); err != nil {
		s.setIdle(userID)
		if errors.Is(err, model.ErrInsufficientFunds) {
			return nil, model.ErrInsufficientFunds
		}
		return nil, errors.New("failed to deduct spin cost")
	}

	// Выбор исхода до старта анимации: по одному целевому символу на барабан.
	// Исход неизменен до конца спина
	targets := s.pickTargets(forceWin)

	// КЛЮЧЕВОЙ ВЫЗОВ
	// Барабаны игрока едут к выбранным целям, канал закроется когда встанут все
	m := s.machineRepo.Machine(userID)
	done, err := m.StartSpin(targets, forceWin)
	if err != nil {
		// Автомат занят или цели не сошлись с барабанами - возвращаем списание
		if _, rbErr := s.userRepo.AdjustBalance(ctx, userID, cost); rbErr != nil {
			log.Println("failed to refund spin cost:", rbErr)
		}
		s.setIdle(userID)
		return nil, err
	}

	select {
	case <-done:
		return s.settle(ctx, userID, cost)
	case <-ctx.Done():
		// Клиент ушел, но исход уже выбран и деньги списаны:
		// досчитываем спин в фоне, когда барабаны остановятся.
		// Если анимацию снимет StopAll, done не закроется и горутина
		// останется ждать - StopAll зовется только при остановке процесса,
		// так что утечка ограничена временем жизни процесса
		go func() {
			<-done
			if _, err := s.settle(context.Background(), userID, cost); err != nil {
				log.Println("background spin settlement failed:", err)
			}
		}()
		return nil, ctx.Err()
	}
}

// settle - оценка исхода после остановки всех барабанов:
// чтение выигрышной линии, начисление выплаты, обновление статистики
func (s *serv) settle(ctx context.Context, userID int, cost int) (*model.SpinResult, error) {
	defer s.setIdle(userID)

	m := s.machineRepo.Machine(userID)

	// Читаем выигрышную линию
	symbols, err := m.CenterSymbols()
	if err != nil {
		// Символ на центре не нашелся - сломана геометрия окна или рециклинг.
		// Это фатальная ошибка ядра, а не пользовательская
		return nil, fmt.Errorf("invariant violation: %w", err)
	}

	// Выигрыш - все символы линии совпали с первым
	win := len(symbols) > 0
	for _, sym := range symbols {
		if sym == "" || sym != symbols[0] {
			win = false
			break
		}
	}

	payout := 0
	if win {
		payout = s.slotCfg.WinPayout()
	}

	// Начисление выигрыша атомарным приращением: депозит, сделанный
	// во время анимации, не перетирается
	var balance int
	if payout > 0 {
		balance, err = s.userRepo.AdjustBalance(ctx, userID, payout)
		if err != nil {
			return nil, errors.New("failed to credit payout")
		}
	} else {
		balance, err = s.userRepo.GetBalance(ctx, userID)
		if err != nil {
			return nil, errors.New("failed to get user balance")
		}
	}

	// Обновляем статистику
	s.statsRepo.UpdateState(float64(cost), float64(payout))

	return &model.SpinResult{
		Symbols: symbols,
		Win:     win,
		Payout:  payout,
		Cost:    cost,
		Balance: balance,
	}, nil
}

// pickTargets - выбор целевых символов.
// forceWin: один равномерно случайный символ на все барабаны.
// Обычный режим: независимый равномерный выбор на каждый барабан
func (s *serv) pickTargets(forceWin bool) []string {
	symbols := s.slotCfg.Symbols()
	targets := make([]string, s.slotCfg.ReelCount())

	if forceWin {
		sym := symbols[s.rng(len(symbols))]
		for i := range targets {
			targets[i] = sym
		}
		return targets
	}

	for i := range targets {
		targets[i] = symbols[s.rng(len(symbols))]
	}
	return targets
}

func (s *serv) setIdle(userID int) {
	s.mtx.Lock()
	delete(s.spinning, userID)
	s.mtx.Unlock()
}
