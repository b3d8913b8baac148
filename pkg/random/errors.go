package random

import "errors"

var (
	// ErrParse возвращается, если текст не является корректным JSON
	// или в описании диапазона нет числовых min и max.
	ErrParse = errors.New("random: parse error")
	// ErrInvalidInput возвращается, если вход FromAny не подходит ни под одну известную форму.
	ErrInvalidInput = errors.New("random: unrecognized range input")
	// ErrEmptyInput возвращается при выборе элемента из пустого среза.
	ErrEmptyInput = errors.New("random: empty input")
)
