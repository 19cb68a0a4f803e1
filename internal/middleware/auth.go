package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"famorg/internal/auth"
	"famorg/internal/session"
)

// RequireAuth verifies the Authorization bearer token and attaches the
// session identity to the request context. Missing or expired tokens get
// a 401; the client clears its stored session and returns to login.
func RequireAuth(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				unauthorized(w, "missing session token")
				return
			}

			id, err := sessions.Verify(token)
			if err != nil {
				if err == session.ErrExpired {
					unauthorized(w, "session expired")
					return
				}
				unauthorized(w, "invalid session token")
				return
			}

			ctx := auth.WithIdentity(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
