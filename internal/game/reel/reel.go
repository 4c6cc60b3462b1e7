package reel

import (
	"errors"
	"math"
	"time"

	"slot_backend/internal/game/tween"
)

// VisibleRows Видимое окно барабана - фиксированные 3 ячейки, выигрышная линия по центру
const VisibleRows = 3

// CenterRow Индекс центральной (выигрышной) строки в видимом окне
const CenterRow = 1

// ErrNoCenterSymbol - на центральной линии не нашлось символа.
// При корректной геометрии не возникает, считается нарушением инварианта
var ErrNoCenterSymbol = errors.New("no symbol on the center line")

// Slot - одна ячейка ленты: экранное смещение и назначенный символ.
// Символ переназначается при рециклинге во время вращения, после остановки не меняется
type Slot struct {
	Offset float64
	Symbol string
}

// Reel - один барабан: лента из N ячеек, непрерывная позиция прокрутки
// и рециклинг ячеек, выходящих за границы видимого окна.
// Создается один раз при старте игры и живет до конца процесса
type Reel struct {
	slots   []*Slot
	cell    float64
	stripH  float64
	symbols []string
	rng     func(int) int

	position     float64
	prevPosition float64
	tw           *tween.Tween

	// Закрепленный исход текущего спина: ячейка, которая по расчету
	// координатора приедет на центральную линию, при каждом рециклинге
	// получает целевой символ вместо случайного
	pinSlot   *Slot
	pinSymbol string
}

// New - создает барабан из slotCount ячеек высотой cell.
// Начальные символы назначаются случайно из набора symbols
func New(slotCount int, cell float64, symbols []string, rng func(int) int) *Reel {
	r := &Reel{
		cell:    cell,
		stripH:  float64(slotCount) * cell,
		symbols: symbols,
		rng:     rng,
	}

	// Раскладываем ячейки по ленте: смещения кратны высоте ячейки.
	// Рабочая полоса смещений [-cell, stripH-cell), последняя ячейка уходит наверх
	for i := 0; i < slotCount; i++ {
		off := float64(i) * cell
		if off >= r.stripH-cell {
			off -= r.stripH
		}
		r.slots = append(r.slots, &Slot{
			Offset: off,
			Symbol: symbols[rng(len(symbols))],
		})
	}

	return r
}

// Position Текущая позиция прокрутки (неограниченно растет во время спина)
func (r *Reel) Position() float64 {
	return r.position
}

// Cell Высота одной ячейки
func (r *Reel) Cell() float64 {
	return r.cell
}

// StripHeight Полная логическая высота ленты (кол-во ячеек * высота ячейки)
func (r *Reel) StripHeight() float64 {
	return r.stripH
}

// SlotCount Количество ячеек на ленте
func (r *Reel) SlotCount() int {
	return len(r.slots)
}

// Spinning Есть ли активная анимация
func (r *Reel) Spinning() bool {
	return r.tw != nil
}

// StartSpin - запускает анимацию прокрутки до target.
// onStop вызывается один раз после того, как позиция выставлена ровно в target
// и рециклинг последнего шага применен
func (r *Reel) StartSpin(target float64, duration time.Duration, easing tween.Easing, onStop func()) {
	r.tw = tween.New(r.Position, r.setPosition, target, duration, easing, onStop)
}

// PinOutcome - закрепляет символ за ячейкой slotIndex на время спина.
// Дистанция спина включает минимум несколько полных оборотов, поэтому ячейка
// гарантированно пройдет через рециклинг и приедет на центр с нужным символом
func (r *Reel) PinOutcome(slotIndex int, symbol string) {
	r.pinSlot = r.slots[slotIndex]
	r.pinSymbol = symbol
}

// StopSpin - снимает активную анимацию без завершения (teardown-сценарий).
// Позиция и символы остаются как есть, onStop не вызывается
func (r *Reel) StopSpin() {
	if r.tw != nil {
		r.tw.Cancel()
		r.tw = nil
		r.pinSlot = nil
		r.pinSymbol = ""
	}
}

// Update - один кадр. Продвигает анимацию, если она есть
func (r *Reel) Update(dt time.Duration) {
	if r.tw == nil {
		return
	}
	if r.tw.Update(dt) {
		r.tw = nil
		r.pinSlot = nil
		r.pinSymbol = ""
	}
}

// setPosition - применяет новую позицию и сдвигает все ячейки на разницу
func (r *Reel) setPosition(v float64) {
	r.prevPosition = r.position
	r.position = v
	r.advance(v - r.prevPosition)
}

// advance - сдвигает смещение каждой ячейки на delta и заворачивает ячейки,
// полностью вышедшие за край полосы, на противоположный край (+-stripH).
// Новый случайный символ назначается только во время вращения:
// простаивающий барабан двигать можно, но менять символы - нельзя
func (r *Reel) advance(delta float64) {
	spinning := r.tw != nil
	for _, s := range r.slots {
		s.Offset += delta

		for s.Offset >= r.stripH-r.cell {
			s.Offset -= r.stripH
			if spinning {
				s.Symbol = r.recycledSymbol(s)
			}
		}
		for s.Offset < -r.cell {
			s.Offset += r.stripH
			if spinning {
				s.Symbol = r.recycledSymbol(s)
			}
		}
	}
}

// recycledSymbol - символ для завернувшейся ячейки: случайный из набора,
// либо закрепленный исход, если завернулась целевая ячейка спина
func (r *Reel) recycledSymbol(s *Slot) string {
	if s == r.pinSlot {
		return r.pinSymbol
	}
	return r.symbols[r.rng(len(r.symbols))]
}

// CenterSymbol - символ, занимающий центральную ячейку видимого окна.
// Поиск по допуску в полячейки от середины центральной строки
func (r *Reel) CenterSymbol() (string, error) {
	center := float64(CenterRow) * r.cell
	for _, s := range r.slots {
		if math.Abs(s.Offset-center) < r.cell/2 {
			return s.Symbol, nil
		}
	}
	return "", ErrNoCenterSymbol
}

// Visible - ячейки, попадающие в видимое окно, отсортированные сверху вниз
func (r *Reel) Visible() []*Slot {
	var vis []*Slot
	for _, s := range r.slots {
		if s.Offset > -r.cell/2 && s.Offset < float64(VisibleRows)*r.cell-r.cell/2 {
			vis = append(vis, s)
		}
	}
	// Ячеек мало, сортировка вставками
	for i := 1; i < len(vis); i++ {
		for j := i; j > 0 && vis[j].Offset < vis[j-1].Offset; j-- {
			vis[j], vis[j-1] = vis[j-1], vis[j]
		}
	}
	return vis
}

// View - копия состояния ячеек для выдачи наружу (стрим кадров)
func (r *Reel) View() []Slot {
	out := make([]Slot, 0, len(r.slots))
	for _, s := range r.slots {
		out = append(out, *s)
	}
	return out
}
