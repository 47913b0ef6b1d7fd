package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/Totarae/SecondBrain/internal/apperr"
	"github.com/Totarae/SecondBrain/internal/response"
)

type userIDKey struct{}

// userSlotKey ячейка, которую LoggingMiddleware кладёт в контекст до Auth,
// чтобы увидеть пользователя, определённого ниже по цепочке.
type userSlotKey struct{}

// TokenVerifier возвращает ID пользователя для корректного токена.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Auth пропускает запрос дальше только с корректным токеном в Authorization.
// Токен принимается как "Bearer <token>" или без префикса.
func Auth(verifier TokenVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromHeader(r.Header.Get("Authorization"))
			if token == "" {
				response.Error(w, r, apperr.Auth("missing authorization token"), logger)
				return
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				logger.Debug("token rejected", zap.String("uri", r.RequestURI), zap.Error(err))
				var appErr *apperr.Error
				if !errors.As(err, &appErr) || appErr.Code != apperr.CodeAuth {
					appErr = apperr.Auth("invalid token").WithCause(err)
				}
				response.Error(w, r, appErr, logger)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// TokenFromHeader извлекает токен из значения заголовка Authorization.
func TokenFromHeader(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}

// WithUserID кладёт ID пользователя в контекст и заполняет ячейку логгера, если она есть.
func WithUserID(ctx context.Context, userID string) context.Context {
	if slot, ok := ctx.Value(userSlotKey{}).(*string); ok {
		*slot = userID
	}
	return context.WithValue(ctx, userIDKey{}, userID)
}

func withUserSlot(ctx context.Context) (context.Context, *string) {
	slot := new(string)
	return context.WithValue(ctx, userSlotKey{}, slot), slot
}

// UserIDFromContext возвращает ID аутентифицированного пользователя.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey{}).(string)
	return id, ok && id != ""
}
