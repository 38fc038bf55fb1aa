package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"librarysvc/internal/auth"
)

// TokenHeader is the documented contract: the bearer token travels in a
// custom header, not an Authorization scheme.
const TokenHeader = "x-access-token"

// AuthMiddleware verifies the session token on every request it wraps and
// stores the username claim in the request context.
func AuthMiddleware(tokens *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := tokens.ParseToken(r.Header.Get(TokenHeader))
			if err != nil {
				writeAuthError(w, err)
				return
			}
			ctx := ContextWithUser(r.Context(), claims.User)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthError(w http.ResponseWriter, err error) {
	msg := "Invalid token!"
	switch {
	case errors.Is(err, auth.ErrTokenMissing):
		msg = "Token is missing!"
	case errors.Is(err, auth.ErrTokenExpired):
		msg = "Token has expired!"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
