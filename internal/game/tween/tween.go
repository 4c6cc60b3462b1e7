package tween

import "time"

// Easing - кривая сглаживания. Принимает долю времени t из [0,1],
// возвращает долю пути (может выходить за [0,1] для overshoot-кривых)
type Easing func(t float64) float64

// Linear Линейная кривая
func Linear(t float64) float64 {
	return t
}

// Backout - кривая с перелетом и возвратом:
// f(t) = (t-1)^2 * ((a+1)*(t-1) + a) + 1, где a задает величину отскока
func Backout(amount float64) Easing {
	return func(t float64) float64 {
		d := t - 1
		return d*d*((amount+1)*d+amount) + 1
	}
}

// Tween - анимация одного числового значения от текущего к целевому.
// Создается на один спин и уничтожается по завершении, повторно не используется
type Tween struct {
	start    float64
	target   float64
	duration time.Duration
	elapsed  time.Duration

	easing     Easing
	set        func(v float64)
	onComplete func()

	done bool
}

// New - захватывает стартовое значение через get в момент создания
func New(get func() float64, set func(v float64), target float64, duration time.Duration, easing Easing, onComplete func()) *Tween {
	return &Tween{
		start:      get(),
		target:     target,
		duration:   duration,
		easing:     easing,
		set:        set,
		onComplete: onComplete,
	}
}

// Update - один шаг анимации. Возвращает true, когда анимация завершена.
// На последнем шаге значение выставляется ровно в target (без дрейфа плавающей точки),
// onComplete вызывается ровно один раз
func (t *Tween) Update(dt time.Duration) bool {
	if t.done {
		return true
	}

	t.elapsed += dt

	// Доля времени с зажимом в [0,1]
	frac := float64(t.elapsed) / float64(t.duration)
	if frac >= 1 || t.duration <= 0 {
		t.done = true
		t.set(t.target)
		if t.onComplete != nil {
			t.onComplete()
		}
		return true
	}
	if frac < 0 {
		frac = 0
	}

	eased := t.easing(frac)
	t.set(t.start + (t.target-t.start)*eased)
	return false
}

// Done Завершена ли анимация
func (t *Tween) Done() bool {
	return t.done
}

// Cancel - останавливает анимацию без выставления цели и без onComplete
func (t *Tween) Cancel() {
	t.done = true
}
