// Package decompress содержит middleware которое отвечает за обработку сжатых запросов,
// когда от клиента пришел заголовок Content-Encoding: gzip.
package decompress

import (
	"compress/gzip"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/maynagashev/go-rangerand/pkg/response"
)

// MaxBodySize ограничивает размер распакованного тела запроса.
const MaxBodySize = 8 << 20

func New(log *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log.Info("decompress middleware enabled")

		fn := func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Content-Encoding") != "gzip" {
				next.ServeHTTP(w, r)
				return
			}
			log.Debug("content encoded with gzip, replacing body with gzip.Reader")

			gz, err := gzip.NewReader(r.Body)
			if err != nil {
				log.Error("error while decompressing request body", zap.Error(err))
				response.Error(w, fmt.Errorf("invalid gzip body: %w", err), http.StatusBadRequest)
				return
			}
			defer func() {
				if closeErr := gz.Close(); closeErr != nil {
					log.Error("error while closing decompression stream", zap.Error(closeErr))
				}
			}()

			// Заменяем тело запроса на распакованный поток
			r.Body = http.MaxBytesReader(w, gz, MaxBodySize)
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}
