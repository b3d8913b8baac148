// Package index реализует обработчик для получения списка именованных диапазонов в формате JSON.
package index

import (
	"net/http"

	"github.com/maynagashev/go-rangerand/internal/server/storage"
	"github.com/maynagashev/go-rangerand/pkg/response"
)

// New возвращает http.HandlerFunc, который отдает список диапазонов, отсортированный по имени.
func New(st storage.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := st.ListRanges(r.Context())
		if err != nil {
			response.Fail(w, err)
			return
		}
		response.JSON(w, items, http.StatusOK)
	}
}
