package tween_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slot_backend/internal/game/tween"
)

func TestBackoutCurve(t *testing.T) {
	f := tween.Backout(0.5)

	// Края кривой фиксированы
	assert.InDelta(t, 0.0, f(0), 1e-9)
	assert.InDelta(t, 1.0, f(1), 1e-9)

	// В конце пути кривая перелетает за единицу и возвращается
	overshoot := false
	for _, x := range []float64{0.8, 0.85, 0.9, 0.95} {
		if f(x) > 1 {
			overshoot = true
		}
	}
	assert.True(t, overshoot, "backout curve must overshoot past 1")

	// Проверка формулы в произвольной точке: f(t) = d^2*((a+1)*d + a) + 1, d = t-1
	d := 0.3 - 1
	want := d*d*((0.5+1)*d+0.5) + 1
	assert.InDelta(t, want, f(0.3), 1e-9)
}

func TestTweenReachesExactTarget(t *testing.T) {
	value := 0.17
	get := func() float64 { return value }
	set := func(v float64) { value = v }

	completed := 0
	tw := tween.New(get, set, 123.456, 100*time.Millisecond, tween.Backout(0.5), func() {
		completed++
	})

	require.False(t, tw.Update(30*time.Millisecond))
	require.False(t, tw.Update(30*time.Millisecond))
	require.False(t, tw.Update(30*time.Millisecond))

	// 120мс >= 100мс: завершение, значение ровно target без дрейфа плавающей точки
	require.True(t, tw.Update(30*time.Millisecond))
	assert.Equal(t, 123.456, value)
	assert.Equal(t, 1, completed)
	assert.True(t, tw.Done())

	// Повторные кадры после завершения - no-op, onComplete не повторяется
	require.True(t, tw.Update(30*time.Millisecond))
	assert.Equal(t, 123.456, value)
	assert.Equal(t, 1, completed)
}

func TestTweenZeroDurationCompletesImmediately(t *testing.T) {
	value := 5.0
	tw := tween.New(
		func() float64 { return value },
		func(v float64) { value = v },
		42.0, 0, tween.Linear, nil,
	)

	require.True(t, tw.Update(time.Millisecond))
	assert.Equal(t, 42.0, value)
}

func TestTweenCancelSkipsCompletion(t *testing.T) {
	value := 0.0
	completed := 0
	tw := tween.New(
		func() float64 { return value },
		func(v float64) { value = v },
		100.0, 100*time.Millisecond, tween.Linear, func() { completed++ },
	)

	require.False(t, tw.Update(10*time.Millisecond))
	mid := value

	tw.Cancel()
	require.True(t, tw.Done())

	// После отмены значение не трогается, onComplete не вызывается
	require.True(t, tw.Update(200*time.Millisecond))
	assert.Equal(t, mid, value)
	assert.Equal(t, 0, completed)
}

func TestLinearMidpoint(t *testing.T) {
	value := 0.0
	tw := tween.New(
		func() float64 { return value },
		func(v float64) { value = v },
		100.0, 100*time.Millisecond, tween.Linear, nil,
	)

	require.False(t, tw.Update(50*time.Millisecond))
	assert.InDelta(t, 50.0, value, 1e-9)
}
