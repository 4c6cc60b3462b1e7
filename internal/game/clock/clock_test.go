package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"slot_backend/internal/game/clock"
)

func TestTickCallsHandlersInRegistrationOrder(t *testing.T) {
	c := clock.New()

	var order []string
	c.Register(func(time.Duration) { order = append(order, "first") })
	c.Register(func(time.Duration) { order = append(order, "second") })

	c.Tick(16 * time.Millisecond)

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestUnregisterStopsDelivery(t *testing.T) {
	c := clock.New()

	calls := 0
	unregister := c.Register(func(time.Duration) { calls++ })

	c.Tick(time.Millisecond)
	unregister()
	c.Tick(time.Millisecond)

	assert.Equal(t, 1, calls)

	// Повторная отписка безопасна
	unregister()
}

func TestHandlerMayUnregisterItself(t *testing.T) {
	c := clock.New()

	calls := 0
	var unregister func()
	unregister = c.Register(func(time.Duration) {
		calls++
		unregister()
	})

	c.Tick(time.Millisecond)
	c.Tick(time.Millisecond)

	assert.Equal(t, 1, calls)
}

func TestHandlerMayRegisterDuringTick(t *testing.T) {
	c := clock.New()

	lateCalls := 0
	c.Register(func(time.Duration) {
		if lateCalls == 0 {
			c.Register(func(time.Duration) { lateCalls++ })
		}
	})

	// Новый подписчик не получает кадр, в котором был зарегистрирован
	c.Tick(time.Millisecond)
	assert.Equal(t, 0, lateCalls)

	c.Tick(time.Millisecond)
	assert.Equal(t, 1, lateCalls)
}

func TestTickPassesElapsed(t *testing.T) {
	c := clock.New()

	var got time.Duration
	c.Register(func(dt time.Duration) { got = dt })

	c.Tick(42 * time.Millisecond)
	assert.Equal(t, 42*time.Millisecond, got)
}
