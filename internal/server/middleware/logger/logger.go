// Package logger реализует middleware для логирования HTTP-запросов через zap.
package logger

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Тела длиннее этого размера обрезаются в логе.
const maxLoggedBody = 1024

func New(log *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log.Info("logger middleware enabled")

		fn := func(w http.ResponseWriter, r *http.Request) {
			entry := log.With(
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("query", r.URL.RawQuery),
				zap.String("remote_addr", r.RemoteAddr),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("request_body", truncate(readRequestBody(r, log))),
			)
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			body := bytes.NewBuffer(nil)
			ww.Tee(body)

			t1 := time.Now()
			defer func() {
				entry.Log(levelFor(ww.Status()), "request completed",
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.String("response_body", truncate(body.Bytes())),
					zap.Duration("duration", time.Since(t1)),
				)
			}()

			next.ServeHTTP(ww, r)
		}

		return http.HandlerFunc(fn)
	}
}

// levelFor повышает уровень записи для ответов с ошибкой.
func levelFor(status int) zapcore.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zapcore.ErrorLevel
	case status >= http.StatusBadRequest:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}

func truncate(b []byte) string {
	if len(b) > maxLoggedBody {
		return string(b[:maxLoggedBody]) + "..."
	}
	return string(b)
}

func readRequestBody(r *http.Request, log *zap.Logger) []byte {
	if r.Body == nil {
		return nil
	}
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("Ошибка при чтении тела запроса", zap.Error(err))
		return nil
	}
	_ = r.Body.Close()

	// Восстановление r.Body для дальнейшего использования
	r.Body = io.NopCloser(bytes.NewReader(reqBody))
	return reqBody
}
