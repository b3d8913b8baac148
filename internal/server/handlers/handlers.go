// Package handlers содержит общие для HTTP-обработчиков помощники.
package handlers

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/maynagashev/go-rangerand/pkg/random"
	"github.com/maynagashev/go-rangerand/pkg/response"
)

// ParseCount разбирает параметр count из строки запроса.
// Пустое значение означает одно значение.
func ParseCount(raw string, maxCount int) (int, error) {
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: count %q is not an integer", response.ErrBadRequest, raw)
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: count must be positive", response.ErrBadRequest)
	}
	return CheckCount(n, maxCount)
}

// CheckCount проверяет количество значений из тела запроса, 0 заменяется на 1.
func CheckCount(n, maxCount int) (int, error) {
	switch {
	case n == 0:
		return 1, nil
	case n < 0:
		return 0, fmt.Errorf("%w: count must be positive, got %d", response.ErrBadRequest, n)
	case n > maxCount:
		return 0, fmt.Errorf("%w: count %d exceeds limit %d", response.ErrBadRequest, n, maxCount)
	}
	return n, nil
}

// Bind подключает к диапазону общий источник сервера, если он задан.
func Bind(r random.Range, src rand.Source) random.Range {
	if src == nil {
		return r
	}
	return r.WithSource(src)
}
