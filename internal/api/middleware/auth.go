package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/parkease/parkease-backend/internal/api/handlers"
	"github.com/parkease/parkease-backend/internal/domain"
	"github.com/parkease/parkease-backend/internal/service/auth"
)

type identityKey struct{}

// Identity личность вызывающего, извлеченная из токена
type Identity struct {
	DriverName string
	Email      string
	Role       domain.UserRole
}

// TokenParser интерфейс проверки токена доступа
type TokenParser interface {
	ParseToken(tokenString string) (*auth.Claims, error)
}

// IdentityFromContext достает личность вызывающего из контекста запроса
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(*Identity)
	return id, ok
}

// ContextWithIdentity кладет личность вызывающего в контекст
func ContextWithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// Auth проверяет Bearer токен и кладет личность вызывающего в контекст
func Auth(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondUnauthorized(w, "authorization header is required")
				return
			}

			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				handlers.RespondUnauthorized(w, "authorization header must use Bearer scheme")
				return
			}

			claims, err := parser.ParseToken(tokenString)
			if err != nil {
				handlers.RespondUnauthorized(w, "invalid or expired token")
				return
			}

			identity := &Identity{
				DriverName: claims.Name,
				Email:      claims.Subject,
				Role:       domain.UserRole(claims.Role),
			}

			next.ServeHTTP(w, r.WithContext(ContextWithIdentity(r.Context(), identity)))
		})
	}
}

// AdminOnly пропускает только пользователей с ролью ADMIN.
// Должен стоять после Auth.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, "authentication required")
			return
		}
		if identity.Role != domain.RoleAdmin {
			handlers.RespondForbidden(w, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
