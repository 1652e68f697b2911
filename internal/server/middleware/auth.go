package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jrenteria/tiendasync/internal/server/auth"
)

// contextKey тип для ключей контекста
type contextKey string

// ClientIDKey ключ для хранения client_id в контексте
const ClientIDKey contextKey = "client_id"

// GetClientID извлекает client_id из контекста запроса
func GetClientID(ctx context.Context) (string, bool) {
	clientID, ok := ctx.Value(ClientIDKey).(string)
	return clientID, ok
}

// TokenValidator проверяет bearer-токен и возвращает его claims
type TokenValidator interface {
	ValidateToken(tokenString string) (*auth.Claims, error)
}

// AuthMiddleware создает middleware для проверки bearer-токена
func AuthMiddleware(logger *slog.Logger, validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Missing Authorization header")
				http.Error(w, "Unauthorized: missing token", http.StatusUnauthorized)
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("Invalid Authorization header format")
				http.Error(w, "Unauthorized: invalid token format", http.StatusUnauthorized)
				return
			}

			claims, err := validator.ValidateToken(parts[1])
			if err != nil {
				logger.Warn("Invalid access token", "error", err)
				http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ClientIDKey, claims.ClientID)

			logger.Debug("Client authenticated", "client_id", claims.ClientID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
