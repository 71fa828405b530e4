package transport

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/rare-treasures/constant"
	"github.com/muhammadheryan/rare-treasures/utils/errors"
	"github.com/muhammadheryan/rare-treasures/utils/logger"
	"go.uber.org/zap"
)

// RecoveryMiddleware turns a panicking handler into a 500 response.
func RecoveryMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Ctx(r.Context()).Error(
						"panic in handler",
						zap.String("error", fmt.Sprint(rec)),
						zap.String("stack", string(debug.Stack())),
					)
					writeError(w, errors.SetCustomError(constant.ErrInternal))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
