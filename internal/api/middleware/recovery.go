package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	apperrors "github.com/pratik-mahalle/gigmarket/internal/pkg/errors"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/logger"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/utils"
)

// Recovery turns panics into 500 responses instead of dropped connections
func Recovery(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.WithFields(map[string]interface{}{
						"panic":      fmt.Sprintf("%v", rec),
						"stack":      string(debug.Stack()),
						"path":       r.URL.Path,
						"request_id": GetRequestID(r.Context()),
					}).Error("panic recovered")

					utils.WriteError(w, apperrors.Internal("internal server error", nil))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
