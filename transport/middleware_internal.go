package transport

import (
	"net/http"

	"github.com/bobursolih/market-backend/constant"
	"github.com/bobursolih/market-backend/utils/errors"
)

// InternalMiddleware gates service-to-service endpoints behind a static API
// key. An empty configured key disables the internal surface outright.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" || r.Header.Get("Authorization") != "Bearer "+apiKey {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
