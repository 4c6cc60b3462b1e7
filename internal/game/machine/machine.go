package machine

import (
	"errors"
	"math"
	"sync"
	"time"

	"slot_backend/internal/game/reel"
	"slot_backend/internal/game/tween"
)

var (
	// ErrSpinInFlight - попытка запустить спин, пока предыдущий не завершился
	ErrSpinInFlight = errors.New("spin already in flight")
	// ErrReelCountMismatch - количество целевых символов не совпадает с количеством барабанов.
	// Нарушение инварианта, ошибка программирования, а не пользователя
	ErrReelCountMismatch = errors.New("target count does not match reel count")
)

// Config Геометрия и тайминги автомата
type Config struct {
	ReelCount    int           // Количество барабанов
	SlotsPerReel int           // Ячеек на ленте одного барабана
	CellHeight   float64       // Высота ячейки
	Symbols      []string      // Набор идентификаторов символов
	MinFullSpins int           // Минимум полных оборотов за спин (>= 5)
	BaseDuration time.Duration // Длительность анимации первого барабана
	StopStagger  time.Duration // Добавка к длительности на каждый следующий барабан
	Backout      float64       // Величина отскока кривой сглаживания
}

// Machine - набор барабанов одного игрового автомата плюс синхронизация их остановки.
// Все мутации состояния идут либо через Update (кадровые часы), либо через StartSpin,
// под одним мьютексом
type Machine struct {
	mtx   sync.Mutex
	cfg   Config
	reels []*reel.Reel
	rng   func(int) int

	stopped int
	done    chan struct{}
	forced  bool
	winSym  string
}

// New - собирает автомат. rng инжектируется, чтобы тесты были детерминированными
func New(cfg Config, rng func(int) int) *Machine {
	m := &Machine{
		cfg: cfg,
		rng: rng,
	}
	for i := 0; i < cfg.ReelCount; i++ {
		m.reels = append(m.reels, reel.New(cfg.SlotsPerReel, cfg.CellHeight, cfg.Symbols, rng))
	}
	return m
}

// Update - один кадр для всех барабанов. Вешается на кадровые часы
func (m *Machine) Update(dt time.Duration) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	for _, r := range m.reels {
		r.Update(dt)
	}
}

// Spinning Крутится ли сейчас хотя бы один барабан
func (m *Machine) Spinning() bool {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return m.spinningLocked()
}

func (m *Machine) spinningLocked() bool {
	for _, r := range m.reels {
		if r.Spinning() {
			return true
		}
	}
	return false
}

// StartSpin - запускает спин с целевым символом на каждый барабан.
// Возвращает канал, который закрывается ровно один раз - когда остановились ВСЕ барабаны.
// forced включает принудительное выравнивание выигрышной линии после остановки (демо-режим)
func (m *Machine) StartSpin(targets []string, forced bool) (<-chan struct{}, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if m.spinningLocked() {
		return nil, ErrSpinInFlight
	}
	if len(targets) != len(m.reels) {
		return nil, ErrReelCountMismatch
	}

	m.stopped = 0
	m.done = make(chan struct{})
	m.forced = forced
	if forced {
		m.winSym = targets[0]
	}

	easing := tween.Backout(m.cfg.Backout)
	for i, r := range m.reels {
		sym := targets[i]

		// Позиция целевого символа на ленте берется по его индексу в наборе
		slotIdx := m.symbolIndex(sym)
		travel := m.computeTravel(r, slotIdx)
		duration := m.cfg.BaseDuration + time.Duration(i)*m.cfg.StopStagger

		// Целевая ячейка проедет через рециклинг и привезет нужный символ на центр
		r.PinOutcome(slotIdx, sym)
		r.StartSpin(r.Position()+travel, duration, easing, m.stopCallback(r))
	}

	return m.done, nil
}

// stopCallback - обработчик остановки одного барабана.
// Вызывается из Update, то есть уже под мьютексом автомата
func (m *Machine) stopCallback(r *reel.Reel) func() {
	return func() {
		if m.forced {
			m.alignForcedWin(r)
		}
		m.stopped++
		if m.stopped == len(m.reels) {
			close(m.done)
		}
	}
}

// computeTravel - дистанция прокрутки, чтобы ячейка slotIdx встала на центральную линию.
// Движение только вперед: отрицательная сырая дистанция добирается полным оборотом,
// плюс минимум MinFullSpins полных оборотов независимо от близости цели
func (m *Machine) computeTravel(r *reel.Reel, slotIdx int) float64 {
	cell := r.Cell()
	stripH := r.StripHeight()

	// Выравнивание ленты, при котором ячейка slotIdx оказывается ровно на центре окна
	desired := float64(reel.CenterRow)*cell - float64(slotIdx)*cell

	norm := math.Mod(r.Position(), stripH)
	if norm < 0 {
		norm += stripH
	}
	want := math.Mod(desired, stripH)
	if want < 0 {
		want += stripH
	}

	dist := want - norm
	if dist < 0 {
		dist += stripH
	}

	return dist + float64(m.cfg.MinFullSpins)*stripH
}

// alignForcedWin - принудительное выравнивание после естественной остановки барабана.
// Средняя видимая ячейка получает выигрышный символ, верхняя и нижняя - любой другой.
// Демо-режим, явно отделенный от обычного выбора исхода
func (m *Machine) alignForcedWin(r *reel.Reel) {
	vis := r.Visible()
	if len(vis) != reel.VisibleRows {
		return
	}
	vis[0].Symbol = m.otherSymbol(m.winSym)
	vis[1].Symbol = m.winSym
	vis[2].Symbol = m.otherSymbol(m.winSym)
}

// otherSymbol - случайный символ из набора, исключая только winning.
// Две независимые выборки могут совпасть между собой - это допустимо
func (m *Machine) otherSymbol(winning string) string {
	for {
		s := m.cfg.Symbols[m.rng(len(m.cfg.Symbols))]
		if s != winning {
			return s
		}
	}
}

func (m *Machine) symbolIndex(sym string) int {
	for i, s := range m.cfg.Symbols {
		if s == sym {
			return i
		}
	}
	return 0
}

// CenterSymbols - чтение выигрышной линии: по одному символу с центра каждого барабана.
// Ничего не мутирует, осмысленно только когда барабаны стоят
func (m *Machine) CenterSymbols() ([]string, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	out := make([]string, 0, len(m.reels))
	for _, r := range m.reels {
		sym, err := r.CenterSymbol()
		if err != nil {
			return nil, err
		}
		out = append(out, sym)
	}
	return out, nil
}

// StopAll - снимает все активные анимации, не дожидаясь завершения.
// Используется при teardown, чтобы твины не писали в выброшенное состояние
func (m *Machine) StopAll() {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	for _, r := range m.reels {
		r.StopSpin()
	}
}

// ReelView Снимок одного барабана для выдачи наружу
type ReelView struct {
	Position float64
	Slots    []reel.Slot
}

// View Снимок всего автомата (используется стримом кадров)
type View struct {
	Spinning bool
	Reels    []ReelView
}

// Snapshot - копия текущего состояния автомата
func (m *Machine) Snapshot() View {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	v := View{Spinning: m.spinningLocked()}
	for _, r := range m.reels {
		v.Reels = append(v.Reels, ReelView{
			Position: r.Position(),
			Slots:    r.View(),
		})
	}
	return v
}
