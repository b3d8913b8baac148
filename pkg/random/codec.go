package random

import (
	"encoding/json"
	"fmt"
)

// Structured - структурное (JSON) представление диапазона.
// Поля min и max обязательны, поэтому они хранятся указателями.
type Structured struct {
	Min   *float64 `json:"min"`   // Нижняя граница
	Max   *float64 `json:"max"`   // Верхняя граница
	Step  float64  `json:"step"`  // Шаг, 0 означает непрерывную выборку
	Usfpp bool     `json:"usfpp"` // Использовать строгую точность (use strict floating-point precision)
}

// FromStructured создает диапазон из структурного представления.
func FromStructured(s Structured) (Range, error) {
	if s.Min == nil {
		return Range{}, fmt.Errorf("%w: min is required", ErrParse)
	}
	if s.Max == nil {
		return Range{}, fmt.Errorf("%w: max is required", ErrParse)
	}
	return New(*s.Min, *s.Max, WithStep(s.Step), WithStrictPrecision(s.Usfpp)), nil
}

// Parse разбирает JSON-документ вида {"min":0,"max":1,"step":0,"usfpp":false}.
func Parse(text string) (Range, error) {
	var s Structured
	if err := json.Unmarshal([]byte(text), &s); err != nil {
		return Range{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return FromStructured(s)
}

// TryParse работает как Parse, но вместо ошибки возвращает false.
func TryParse(text string) (Range, bool) {
	r, err := Parse(text)
	if err != nil {
		return Range{}, false
	}
	return r, true
}

// Structured возвращает структурное представление диапазона.
func (r Range) Structured() Structured {
	lo, hi := r.min, r.max
	return Structured{
		Min:   &lo,
		Max:   &hi,
		Step:  r.step,
		Usfpp: r.strict,
	}
}

// String возвращает диапазон в виде JSON с отступом в два пробела.
func (r Range) String() string {
	encoded, err := json.MarshalIndent(r.Structured(), "", "  ")
	if err != nil {
		return fmt.Sprintf("Range{min: %v, max: %v, step: %v, usfpp: %v}", r.min, r.max, r.step, r.strict)
	}
	return string(encoded)
}

// MarshalJSON кодирует диапазон в структурное представление.
func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Structured())
}

// UnmarshalJSON декодирует диапазон из структурного представления.
func (r *Range) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	parsed.src = r.src
	*r = parsed
	return nil
}
