// Package items реализует операции над массивами: `POST /choice` и `POST /shuffle`.
package items

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/maynagashev/go-rangerand/internal/contracts/ranges"
	"github.com/maynagashev/go-rangerand/pkg/random"
	"github.com/maynagashev/go-rangerand/pkg/response"
)

// Choice возвращает случайный элемент массива. Пустой массив дает 400.
func Choice() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseItems(r)
		if err != nil {
			response.Fail(w, err)
			return
		}

		item, err := random.Choice(req.Items)
		if err != nil {
			response.Fail(w, err)
			return
		}
		response.JSON(w, ranges.ChoiceResponse{Item: item}, http.StatusOK)
	}
}

// Shuffle возвращает перемешанную копию массива.
func Shuffle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseItems(r)
		if err != nil {
			response.Fail(w, err)
			return
		}
		response.JSON(w, ranges.ItemsResponse{Items: random.Shuffle(req.Items)}, http.StatusOK)
	}
}

func parseItems(r *http.Request) (ranges.ItemsRequest, error) {
	var req ranges.ItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, fmt.Errorf("%w: %w", random.ErrParse, err)
	}
	if req.Items == nil {
		req.Items = []any{}
	}
	return req, nil
}
