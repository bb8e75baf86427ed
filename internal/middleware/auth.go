package middleware

import (
	"net/http"
	"strings"

	"printmill-be/internal/session"
	"printmill-be/internal/utils"
)

// ExtractToken pulls the opaque session token off a request: Authorization
// header first, then the token query parameter older clients still send.
func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return r.URL.Query().Get("token")
}

// AuthMiddleware resolves the caller through the session gate and stores the
// user in the request context. It never rejects: routes that require a
// caller enforce the context themselves, so public routes share the chain.
func AuthMiddleware(sessions session.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			u, err := sessions.Authenticate(r.Context(), token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.SetUserContext(r.Context(), u)))
		})
	}
}
