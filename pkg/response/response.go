// Package response содержит стандартные JSON-ответы HTTP API.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/maynagashev/go-rangerand/internal/server/storage"
	"github.com/maynagashev/go-rangerand/pkg/random"
)

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

func OK(w http.ResponseWriter, msg string) {
	JSON(w, Response{Status: StatusOK, Message: msg}, http.StatusOK)
}

func Error(w http.ResponseWriter, err error, statusCode int) {
	JSON(w, Response{Status: StatusError, Error: err.Error()}, statusCode)
}

// Fail отвечает ошибкой, подбирая HTTP-статус по ее виду.
func Fail(w http.ResponseWriter, err error) {
	Error(w, err, StatusCode(err))
}

// StatusCode сопоставляет доменные ошибки с кодами HTTP.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, random.ErrParse),
		errors.Is(err, random.ErrInvalidInput),
		errors.Is(err, random.ErrEmptyInput),
		errors.Is(err, storage.ErrEmptyName),
		errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ErrBadRequest помечает ошибки разбора параметров запроса.
var ErrBadRequest = errors.New("bad request")

// JSON кодирует v и отправляет его с указанным статусом.
func JSON(w http.ResponseWriter, v any, statusCode int) {
	encoded, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	// Заголовки уже отправлены, поэтому ошибку записи сообщить клиенту нельзя.
	_, _ = w.Write(encoded)
}
