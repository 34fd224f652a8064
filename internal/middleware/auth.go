package middleware

import (
	"net/http"
	"strings"

	"github.com/baharkarakas/airdrop-scanner/internal/api/httpx"
	"github.com/baharkarakas/airdrop-scanner/internal/auth"
)

// Auth requires a valid bearer access token. A nil manager lets everything
// through, which is how the service runs when no AUTH_SECRET is configured.
func Auth(tm *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if tm == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ah := r.Header.Get("Authorization")
			if ah == "" || !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
				httpx.WriteMessage(w, http.StatusUnauthorized, "Missing bearer token")
				return
			}
			token := strings.TrimSpace(ah[len("Bearer "):])

			claims, err := tm.Parse(token)
			if err != nil {
				httpx.WriteMessage(w, http.StatusUnauthorized, "Invalid access token")
				return
			}
			ctx := WithUser(r.Context(), UserCtx{Subject: claims.Subject})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
