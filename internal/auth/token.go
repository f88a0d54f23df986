// Package auth выпускает и проверяет сессионные токены.
// Токен подписан (HS256), но не зашифрован: клеймы читаемы,
// подделка без серверного секрета невозможна. Отзыва на сервере нет —
// logout лишь очищает cookie, токен живет до естественного истечения.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims — содержимое сессионного токена: идентификатор и имя пользователя
// плюс стандартные клеймы (в частности, срок действия).
type Claims struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	jwt.RegisteredClaims
}

// TokenManager выпускает и проверяет токены с фиксированным временем жизни.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager создает менеджер токенов.
// secret не должен быть пустым; ttl — абсолютный срок жизни сессии.
func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("секрет подписи токенов не задан")
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}, nil
}

// TTL возвращает срок жизни выпускаемых токенов.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue выпускает подписанный токен со сроком действия now + ttl.
func (m *TokenManager) Issue(userID uuid.UUID, username string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}
	return signed, nil
}

// Parse проверяет подпись, алгоритм и срок действия токена.
// Любая причина отказа сворачивается в одну обобщенную ошибку:
// вызывающей стороне достаточно знать, что сессия недействительна.
func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("недействительный сессионный токен")
	}
	return claims, nil
}
