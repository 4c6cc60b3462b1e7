package machine_repo

import (
	"math/rand"
	"sync"
	"time"

	"slot_backend/internal/config"
	"slot_backend/internal/game/clock"
	"slot_backend/internal/game/machine"
	"slot_backend/internal/repository"
)

// Реестр игровых автоматов в памяти: один автомат на игрока.
// Автомат создается при первом спине, вешается на общие кадровые часы
// и живет до конца процесса - барабаны не пересоздаются между спинами
type repo struct {
	mtx      sync.Mutex
	machines map[int]*entry
	cfg      config.SlotConfig
	clk      *clock.Clock
	rnd      *rand.Rand
	rndMtx   sync.Mutex
}

type entry struct {
	m          *machine.Machine
	unregister func()
}

func NewMachineRepository(cfg config.SlotConfig, clk *clock.Clock) repository.MachineRepository {
	return &repo{
		machines: make(map[int]*entry),
		cfg:      cfg,
		clk:      clk,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Machine - автомат игрока. Создает и регистрирует на часах при первом обращении
func (r *repo) Machine(userID int) *machine.Machine {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if e, ok := r.machines[userID]; ok {
		return e.m
	}

	m := machine.New(machine.Config{
		ReelCount:    r.cfg.ReelCount(),
		SlotsPerReel: r.cfg.SlotsPerReel(),
		CellHeight:   r.cfg.CellHeight(),
		Symbols:      r.cfg.Symbols(),
		MinFullSpins: r.cfg.MinFullSpins(),
		BaseDuration: r.cfg.BaseSpinDuration(),
		StopStagger:  r.cfg.StopStagger(),
		Backout:      r.cfg.BackoutAmount(),
	}, r.intn)

	unregister := r.clk.Register(m.Update)
	r.machines[userID] = &entry{m: m, unregister: unregister}

	return m
}

// StopAll - снимает анимации всех автоматов и отписывает их от часов.
// Вызывается при остановке приложения, чтобы твины не писали в выброшенное состояние
func (r *repo) StopAll() {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, e := range r.machines {
		e.unregister()
		e.m.StopAll()
	}
}

// intn - общий источник случайности для всех автоматов
func (r *repo) intn(n int) int {
	r.rndMtx.Lock()
	defer r.rndMtx.Unlock()
	return r.rnd.Intn(n)
}
