package spin_stats_repo

import (
	"sync"

	"slot_backend/internal/repository"
	repoModel "slot_backend/internal/repository/spin_stats_repo/model"
)

const windowSize = 500

// Реализация репозитория статистики спинов в памяти
type StatsRepo struct {
	mtx   sync.RWMutex
	state repoModel.SpinStats
}

// NewSpinStatsRepository Конструктор для создания нового репозитория с начальным состоянием
func NewSpinStatsRepository() repository.SpinStatsRepository {
	return &StatsRepo{
		state: repoModel.SpinStats{
			SpinWindow: make([]repoModel.SpinResult, 0),
			WindowSize: windowSize,
		},
	}
}

// Stats Получение текущей статистики
// Возвращает копию структуры SpinStats
func (r *StatsRepo) Stats() repoModel.SpinStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.state
}

// UpdateState Обновление статистики после спина
func (r *StatsRepo) UpdateState(bet, payout float64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalSpins++
	r.state.TotalBet += bet
	r.state.TotalPayout += payout
	if payout > 0 {
		r.state.TotalWins++
	}
	if r.state.TotalBet > 0 {
		r.state.CurrentRTP = r.state.TotalPayout / r.state.TotalBet * 100
	}

	// Добавляем спин в окно
	spinRTP := 0.0
	if bet > 0 {
		spinRTP = payout / bet * 100
	}
	r.state.SpinWindow = append(r.state.SpinWindow, repoModel.SpinResult{
		Bet:    bet,
		Payout: payout,
		RTP:    spinRTP,
	})

	// Поддерживаем размер окна
	if len(r.state.SpinWindow) > r.state.WindowSize {
		r.state.SpinWindow = r.state.SpinWindow[1:]
	}

	// Пересчитываем RTP в окне
	var windowBet, windowPayout float64
	for _, spin := range r.state.SpinWindow {
		windowBet += spin.Bet
		windowPayout += spin.Payout
	}

	if windowBet > 0 {
		r.state.WindowRTP = windowPayout / windowBet * 100
	} else {
		r.state.WindowRTP = 0
	}
}
