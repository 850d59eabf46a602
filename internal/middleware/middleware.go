package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/cors"

	"linxblog/internal/apperror"
	"linxblog/internal/service"
)

type Middleware func(http.Handler) http.Handler

type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated caller extracted from a session token.
type Identity struct {
	ID    int64
	Email string
}

type TokenValidator interface {
	Validate(tokenString string) (*service.Claims, error)
}

// WithIdentity stores the caller in ctx.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the caller set by Auth.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// Auth rejects requests without a valid bearer token.
func Auth(tokens TokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r)
			if !ok {
				apperror.Write(w, apperror.Unauthorized("Unauthorized"))
				return
			}

			claims, err := tokens.Validate(tokenString)
			if err != nil {
				apperror.Write(w, apperror.Unauthorized("Unauthorized"))
				return
			}

			ctx := WithIdentity(r.Context(), Identity{ID: claims.Sub, Email: claims.Email})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}

// CORS allows the configured frontend origins with credentials.
func CORS(origins []string) Middleware {
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}

// Chain wraps h so that the first middleware is the outermost.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
