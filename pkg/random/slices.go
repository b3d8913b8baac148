package random

import (
	"fmt"
	"math/rand/v2"
)

// Choice возвращает случайный элемент среза.
func Choice[T any](items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf("%w: choice from empty slice", ErrEmptyInput)
	}
	return items[rand.IntN(len(items))], nil
}

// Shuffle возвращает перемешанную копию среза (алгоритм Фишера-Йетса).
// Исходный срез не изменяется.
func Shuffle[T any](items []T) []T {
	result := make([]T, len(items))
	copy(result, items)
	for i := len(result) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		result[i], result[j] = result[j], result[i]
	}
	return result
}
