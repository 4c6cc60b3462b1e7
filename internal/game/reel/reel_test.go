package reel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slot_backend/internal/game/reel"
	"slot_backend/internal/game/tween"
)

var symbols = []string{"apple", "banana", "cherry", "corn", "kiwi"}

// cyclingRNG - детерминированная замена math/rand для тестов
func cyclingRNG() func(int) int {
	i := -1
	return func(n int) int {
		i++
		return i % n
	}
}

// runToStop докручивает барабан кадрами по миллисекунде до полной остановки
func runToStop(t *testing.T, r *reel.Reel) {
	t.Helper()
	for i := 0; i < 100000; i++ {
		r.Update(time.Millisecond)
		if !r.Spinning() {
			return
		}
	}
	t.Fatal("reel did not stop")
}

func TestNewLayout(t *testing.T) {
	r := reel.New(5, 100, symbols, cyclingRNG())

	assert.Equal(t, 5, r.SlotCount())
	assert.Equal(t, 100.0, r.Cell())
	assert.Equal(t, 500.0, r.StripHeight())

	// Все смещения в рабочей полосе [-cell, stripH-cell) и кратны высоте ячейки
	for _, s := range r.View() {
		assert.GreaterOrEqual(t, s.Offset, -100.0)
		assert.Less(t, s.Offset, 400.0)
	}
}

func TestSpinPreservesSlotCount(t *testing.T) {
	r := reel.New(5, 100, symbols, cyclingRNG())

	r.StartSpin(r.Position()+2750, 50*time.Millisecond, tween.Backout(0.5), nil)
	runToStop(t, r)

	assert.Equal(t, 5, r.SlotCount())

	// После остановки все ячейки снова в рабочей полосе
	for _, s := range r.View() {
		assert.GreaterOrEqual(t, s.Offset, -100.0)
		assert.Less(t, s.Offset, 400.0)
	}
}

func TestIdleReelKeepsSymbols(t *testing.T) {
	r := reel.New(5, 100, symbols, cyclingRNG())

	r.StartSpin(r.Position()+2500, 50*time.Millisecond, tween.Linear, nil)
	runToStop(t, r)

	before := r.View()
	for i := 0; i < 100; i++ {
		r.Update(time.Millisecond)
	}
	after := r.View()

	// Простаивающий барабан не трогает ни смещения, ни символы
	assert.Equal(t, before, after)
}

func TestPinnedOutcomeLandsOnCenter(t *testing.T) {
	r := reel.New(5, 100, symbols, cyclingRNG())

	// Геометрия: ячейка 2 встает на центр при выравнивании
	// want = CenterRow*cell - slotIdx*cell (mod stripH) = 400
	const travel = 400 + 5*500

	r.PinOutcome(2, "cherry")
	done := false
	r.StartSpin(r.Position()+travel, 50*time.Millisecond, tween.Backout(0.5), func() { done = true })
	runToStop(t, r)

	require.True(t, done)

	sym, err := r.CenterSymbol()
	require.NoError(t, err)
	assert.Equal(t, "cherry", sym)
}

func TestVisibleWindowAfterStop(t *testing.T) {
	r := reel.New(10, 100, symbols, cyclingRNG())

	r.StartSpin(r.Position()+400+5*1000, 50*time.Millisecond, tween.Backout(0.5), nil)
	runToStop(t, r)

	vis := r.Visible()
	require.Len(t, vis, reel.VisibleRows)

	// Сверху вниз, центральная строка ровно на своей позиции
	assert.InDelta(t, 0.0, vis[0].Offset, 1e-6)
	assert.InDelta(t, 100.0, vis[1].Offset, 1e-6)
	assert.InDelta(t, 200.0, vis[2].Offset, 1e-6)
}

func TestStopSpinCancelsWithoutCallback(t *testing.T) {
	r := reel.New(5, 100, symbols, cyclingRNG())

	called := false
	r.StartSpin(r.Position()+2500, 50*time.Millisecond, tween.Linear, func() { called = true })
	r.Update(time.Millisecond)

	r.StopSpin()
	assert.False(t, r.Spinning())

	r.Update(100 * time.Millisecond)
	assert.False(t, called)
}

func TestCenterSymbolToleranceMiss(t *testing.T) {
	r := reel.New(5, 100, symbols, cyclingRNG())

	// Сдвигаем ленту на полячейки: ни одна ячейка не попадает в допуск центра
	r.StartSpin(r.Position()+50, 10*time.Millisecond, tween.Linear, nil)
	runToStop(t, r)

	_, err := r.CenterSymbol()
	assert.ErrorIs(t, err, reel.ErrNoCenterSymbol)
}
