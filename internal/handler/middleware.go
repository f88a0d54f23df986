package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/PotionApp/internal/auth"
)

// RequestLogger — middleware для логирования HTTP-запросов.
func RequestLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Оборачиваем ResponseWriter, чтобы знать статус
			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(ww, r)

			duration := time.Since(start)
			logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.statusCode,
				"duration_ms", duration.Milliseconds(),
			)
		})
	}
}

// responseWriter нужен, чтобы перехватывать код ответа
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// contextKey — собственный тип ключа контекста, чтобы не пересекаться
// с ключами других пакетов.
type contextKey string

const identityKey contextKey = "identity"

// IdentityFromContext достает личность аутентифицированного пользователя,
// положенную туда middleware SessionAuth.
func IdentityFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(identityKey).(*auth.Claims)
	return claims, ok
}

// SessionAuth — middleware-страж защищенных маршрутов.
// Запрос без cookie, с поддельным или истекшим токеном отклоняется
// со статусом 401 до какого-либо обращения к хранилищу.
// При успехе личность пользователя кладется в контекст запроса.
func SessionAuth(tokens *auth.TokenManager, cookieName string, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "требуется аутентификация", logger)
				return
			}

			claims, err := tokens.Parse(cookie.Value)
			if err != nil {
				logger.Warn("rejected session token", "error", err)
				respondWithError(w, http.StatusUnauthorized, "требуется аутентификация", logger)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
