package random

import (
	"iter"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

// maxSteps ограничивает число позиций решетки, чтобы индекс помещался в int64.
const maxSteps = float64(1 << 62)

// Take возвращает одно случайное значение из диапазона.
//
// При непрерывной выборке значение лежит в [min, max).
// При дискретной выборке значение равно min + k*step для целого k >= 0 и не превышает max.
func (r Range) Take() float64 {
	if r.step <= 0 {
		return r.takeContinuous()
	}
	return r.takeDiscrete()
}

// Float64 возвращает числовое представление диапазона: очередное случайное значение.
func (r Range) Float64() float64 {
	return r.Take()
}

// TakeMany возвращает count независимых значений в порядке генерации.
func (r Range) TakeMany(count int) []float64 {
	if count <= 0 {
		return []float64{}
	}
	values := make([]float64, count)
	for i := range values {
		values[i] = r.Take()
	}
	return values
}

// All возвращает бесконечную ленивую последовательность значений.
// Последовательность не завершается сама, поэтому цикл должен прерываться вызывающим кодом.
func (r Range) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for {
			if !yield(r.Take()) {
				return
			}
		}
	}
}

func (r Range) takeContinuous() float64 {
	u := distuv.Uniform{Min: r.min, Max: r.max, Src: r.src}
	v := u.Rand()
	// Из-за округления min + u*(max-min) может совпасть с max.
	if v >= r.max && r.max > r.min {
		v = math.Nextafter(r.max, r.min)
	}
	return v
}

func (r Range) takeDiscrete() float64 {
	idx := r.int64N(r.stepCount())
	v := r.min + float64(idx)*r.step
	if v > r.max {
		v = r.max
	}
	if r.strict {
		v = roundTo(v, decimalPlaces(r.step))
	}
	return v
}

// stepCount возвращает количество позиций решетки min, min+step, ... <= max.
func (r Range) stepCount() int64 {
	n := math.Floor((r.max-r.min)/r.step) + 1
	if math.IsNaN(n) || n < 1 {
		return 1
	}
	if n >= maxSteps {
		return int64(maxSteps)
	}
	return int64(n)
}

func (r Range) int64N(n int64) int64 {
	if r.src == nil {
		return rand.Int64N(n)
	}
	return rand.New(r.src).Int64N(n)
}

// decimalPlaces возвращает число знаков после запятой в кратчайшей десятичной записи шага.
func decimalPlaces(step float64) int {
	s := strconv.FormatFloat(step, 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return len(s) - i - 1
}

func roundTo(v float64, places int) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}
