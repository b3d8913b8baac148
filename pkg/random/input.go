package random

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Input - допустимые формы описания диапазона: Text, Pair, Structured или Number.
type Input interface {
	rangeInput()
}

// Text - JSON-документ с описанием диапазона.
type Text string

// Pair - пара границ в любом порядке.
type Pair [2]float64

// Number - одиночное число. Значение игнорируется, результатом всегда будет диапазон [0, 1].
type Number float64

func (Text) rangeInput()       {}
func (Pair) rangeInput()       {}
func (Number) rangeInput()     {}
func (Structured) rangeInput() {}

// FromInput создает диапазон из типизированного входа.
func FromInput(in Input) (Range, error) {
	switch v := in.(type) {
	case Text:
		return Parse(string(v))
	case Pair:
		return FromPair(v), nil
	case Structured:
		return FromStructured(v)
	case *Structured:
		if v == nil {
			return Range{}, fmt.Errorf("%w: nil structured input", ErrInvalidInput)
		}
		return FromStructured(*v)
	case Number:
		// Одиночное число всегда дает [0, 1], независимо от значения.
		return New(0, 1), nil
	default:
		return Range{}, fmt.Errorf("%w: %T", ErrInvalidInput, in)
	}
}

// FromAny определяет форму произвольного значения и создает по нему диапазон.
//
// Поддерживаются: варианты Input, строки и []byte (JSON), числа (всегда [0, 1]),
// срезы и массивы из двух чисел, Structured и map со строковыми ключами,
// в которых есть числовые min и max.
func FromAny(v any) (Range, error) {
	switch in := v.(type) {
	case nil:
		return Range{}, fmt.Errorf("%w: nil", ErrInvalidInput)
	case Input:
		return FromInput(in)
	case string:
		return Parse(in)
	case []byte:
		return Parse(string(in))
	}

	if f, ok := toFloat(v); ok {
		return FromInput(Number(f))
	}
	if p, ok := asPair(v); ok {
		return FromPair(p), nil
	}
	if s, ok := asStructured(v); ok {
		return FromStructured(s)
	}
	return Range{}, fmt.Errorf("%w: %T", ErrInvalidInput, v)
}

// TryFromAny работает как FromAny, но вместо ошибки возвращает false.
func TryFromAny(v any) (Range, bool) {
	r, err := FromAny(v)
	if err != nil {
		return Range{}, false
	}
	return r, true
}

// IsPair сообщает, является ли значение срезом или массивом из двух чисел.
func IsPair(v any) bool {
	_, ok := asPair(v)
	return ok
}

// IsStructured сообщает, есть ли у значения числовые поля min и max.
func IsStructured(v any) bool {
	_, ok := asStructured(v)
	return ok
}

func asPair(v any) (Pair, bool) {
	if p, ok := v.(Pair); ok {
		return p, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return Pair{}, false
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return Pair{}, false
	}
	if rv.Len() != 2 {
		return Pair{}, false
	}
	var p Pair
	for i := range p {
		f, ok := toFloat(rv.Index(i).Interface())
		if !ok {
			return Pair{}, false
		}
		p[i] = f
	}
	return p, true
}

func asStructured(v any) (Structured, bool) {
	switch s := v.(type) {
	case Structured:
		return s, s.Min != nil && s.Max != nil
	case *Structured:
		if s == nil {
			return Structured{}, false
		}
		return *s, s.Min != nil && s.Max != nil
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return Structured{}, false
	}
	field := func(name string) (any, bool) {
		val := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true
	}

	number := func(name string) (float64, bool) {
		raw, ok := field(name)
		if !ok {
			return 0, false
		}
		return toFloat(raw)
	}

	lo, okMin := number("min")
	hi, okMax := number("max")
	if !okMin || !okMax {
		return Structured{}, false
	}
	s := Structured{Min: &lo, Max: &hi}
	if step, ok := number("step"); ok {
		s.Step = step
	}
	if raw, ok := field("usfpp"); ok {
		if b, isBool := raw.(bool); isBool {
			s.Usfpp = b
		}
	}
	return s, true
}

// toFloat приводит любое числовое значение к float64.
func toFloat(v any) (float64, bool) {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
