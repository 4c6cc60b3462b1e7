package slot

import (
	"math/rand"
	"sync"
	"time"

	"slot_backend/internal/config"
	"slot_backend/internal/repository"
	"slot_backend/internal/service"
)

type serv struct {
	slotCfg     config.SlotConfig
	userRepo    repository.UserRepository
	machineRepo repository.MachineRepository
	statsRepo   repository.SpinStatsRepository

	rng func(int) int // Инжектируется для детерминированных тестов

	// Состояние сессии каждого игрока: idle | spinning.
	// Флаг держится на всю транзакцию спина (списание -> анимация -> начисление)
	mtx      sync.Mutex
	spinning map[int]bool
}

// NewSlotService Создать сервис игрового автомата
func NewSlotService(
	cfg config.SlotConfig,
	userRepo repository.UserRepository,
	machineRepo repository.MachineRepository,
	statsRepo repository.SpinStatsRepository,
) service.SlotService {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	var rndMtx sync.Mutex

	return &serv{
		slotCfg:     cfg,
		userRepo:    userRepo,
		machineRepo: machineRepo,
		statsRepo:   statsRepo,
		rng: func(n int) int {
			rndMtx.Lock()
			defer rndMtx.Unlock()
			return rnd.Intn(n)
		},
		spinning: make(map[int]bool),
	}
}
