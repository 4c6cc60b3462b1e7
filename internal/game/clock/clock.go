package clock

import (
	"context"
	"sync"
	"time"
)

// Handler вызывается один раз на каждый кадр с прошедшим временем
type Handler func(dt time.Duration)

// Clock - кадровые часы игрового цикла.
// Все подписчики вызываются строго последовательно, в порядке регистрации
type Clock struct {
	mtx      sync.Mutex
	nextID   int
	order    []int
	handlers map[int]Handler
}

func New() *Clock {
	return &Clock{
		handlers: make(map[int]Handler),
	}
}

// Register - подписывает обработчик на кадры.
// Возвращает функцию отписки. Повторный вызов отписки безопасен
func (c *Clock) Register(h Handler) (unregister func()) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	id := c.nextID
	c.nextID++
	c.order = append(c.order, id)
	c.handlers[id] = h

	return func() {
		c.mtx.Lock()
		defer c.mtx.Unlock()
		delete(c.handlers, id)
	}
}

// Tick - один кадр. Вызывает всех подписчиков с dt
func (c *Clock) Tick(dt time.Duration) {
	c.mtx.Lock()
	// Снимаем срез обработчиков под мьютексом, вызываем без него:
	// обработчик может отписать себя или зарегистрировать нового
	hs := make([]Handler, 0, len(c.order))
	alive := c.order[:0]
	for _, id := range c.order {
		if h, ok := c.handlers[id]; ok {
			hs = append(hs, h)
			alive = append(alive, id)
		}
	}
	c.order = alive
	c.mtx.Unlock()

	for _, h := range hs {
		h(dt)
	}
}

// Run - крутит часы с заданным интервалом до отмены контекста.
// В обработчики передается реально прошедшее время, а не interval
func (c *Clock) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			c.Tick(now.Sub(last))
			last = now
		}
	}
}
