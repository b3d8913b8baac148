// Package random предоставляет генератор случайных чисел в заданном диапазоне.
// Диапазон поддерживает непрерывную и дискретную (с шагом) выборку,
// а также коррекцию точности для дискретных значений.
package random

import (
	"math/rand/v2"
)

// Range описывает числовой диапазон [min, max] и режим выборки.
//
// Значение неизменяемое: все конструкторы упорядочивают границы так,
// что Min() <= Max(), а методы только читают состояние.
type Range struct {
	min    float64
	max    float64
	step   float64
	strict bool
	src    rand.Source
}

// Option настраивает диапазон при создании через New или FromCenter.
type Option func(*Range)

// WithStep задает шаг дискретной выборки. Шаг <= 0 означает непрерывную выборку.
func WithStep(step float64) Option {
	return func(r *Range) {
		r.step = step
	}
}

// WithStrictPrecision включает округление дискретных значений
// до количества знаков после запятой в шаге.
func WithStrictPrecision(strict bool) Option {
	return func(r *Range) {
		r.strict = strict
	}
}

// WithSource задает источник случайных чисел. Без него используется глобальный генератор math/rand/v2.
func WithSource(src rand.Source) Option {
	return func(r *Range) {
		r.src = src
	}
}

// New создает диапазон по двум границам в любом порядке.
func New(a, b float64, opts ...Option) Range {
	if a > b {
		a, b = b, a
	}
	r := Range{min: a, max: b}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// FromCenter создает диапазон [center-delta, center+delta].
// Отрицательная delta не является ошибкой: границы просто меняются местами.
func FromCenter(center, delta float64, opts ...Option) Range {
	return New(center-delta, center+delta, opts...)
}

// FromPair создает непрерывный диапазон по паре границ.
func FromPair(p Pair) Range {
	return New(p[0], p[1])
}

// Min возвращает нижнюю границу.
func (r Range) Min() float64 { return r.min }

// Max возвращает верхнюю границу.
func (r Range) Max() float64 { return r.max }

// Step возвращает шаг выборки.
func (r Range) Step() float64 { return r.step }

// StrictPrecision сообщает, включена ли коррекция точности.
func (r Range) StrictPrecision() bool { return r.strict }

// Discrete сообщает, выбираются ли значения с шагом.
func (r Range) Discrete() bool { return r.step > 0 }

// Center возвращает середину диапазона.
func (r Range) Center() float64 {
	return 0.5 * (r.min + r.max)
}

// HalfWidth возвращает половину ширины диапазона.
func (r Range) HalfWidth() float64 {
	return 0.5 * (r.max - r.min)
}

// Bounds возвращает границы в виде упорядоченной пары.
func (r Range) Bounds() [2]float64 {
	return [2]float64{r.min, r.max}
}

// WithSource возвращает копию диапазона с другим источником случайных чисел.
func (r Range) WithSource(src rand.Source) Range {
	r.src = src
	return r
}

// Equal сравнивает границы, шаг и режим точности. Источник случайных чисел не учитывается.
func (r Range) Equal(other Range) bool {
	return r.min == other.min &&
		r.max == other.max &&
		r.step == other.step &&
		r.strict == other.strict
}
