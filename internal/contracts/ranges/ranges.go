// Package ranges описывает структуры запросов и ответов HTTP API генератора.
package ranges

import (
	"encoding/json"
	"fmt"

	"github.com/maynagashev/go-rangerand/pkg/random"
)

// SampleRequest запрос на генерацию значений из произвольно описанного диапазона.
type SampleRequest struct {
	Range json.RawMessage `json:"range"`           // Диапазон в любой форме: объект, строка, пара чисел
	Count int             `json:"count,omitempty"` // Количество значений, по умолчанию 1
}

// Decode разбирает диапазон из запроса.
func (req *SampleRequest) Decode() (random.Range, error) {
	return DecodeRange(req.Range)
}

// SampleResponse ответ с сгенерированными значениями.
type SampleResponse struct {
	Range  random.Range `json:"range"`
	Values []float64    `json:"values"`
}

// NamedRange именованный диапазон из хранилища.
type NamedRange struct {
	Name  string       `json:"name"`
	Range random.Range `json:"range"`
}

func (nr *NamedRange) String() string {
	if nr == nil {
		return "<nil>"
	}
	return fmt.Sprintf("NamedRange{Name: %s, Min: %v, Max: %v, Step: %v, Usfpp: %v}",
		nr.Name, nr.Range.Min(), nr.Range.Max(), nr.Range.Step(), nr.Range.StrictPrecision())
}

// ItemsRequest запрос для операций над массивом: choice, shuffle.
type ItemsRequest struct {
	Items []any `json:"items"`
}

// ItemsResponse ответ с перемешанным массивом.
type ItemsResponse struct {
	Items []any `json:"items"`
}

// ChoiceResponse ответ с выбранным элементом.
type ChoiceResponse struct {
	Item any `json:"item"`
}

// DecodeRange разбирает диапазон из JSON в любой поддерживаемой форме.
// Строка JSON интерпретируется как сериализованный диапазон.
func DecodeRange(raw json.RawMessage) (random.Range, error) {
	if len(raw) == 0 {
		return random.Range{}, fmt.Errorf("%w: range is empty", random.ErrInvalidInput)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return random.Range{}, fmt.Errorf("%w: %w", random.ErrParse, err)
	}
	return random.FromAny(v)
}
