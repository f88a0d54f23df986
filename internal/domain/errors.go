package domain

import (
	"errors"
	"strings"
)

// Ошибки уровня домена. Обработчики HTTP сопоставляют их со статусами:
// ValidationError -> 400, ErrInvalidCredentials -> 401,
// ErrNotFound -> 404, ErrUsernameTaken -> 409, всё остальное -> 500.
var (
	// ErrNotFound — запись с указанным идентификатором отсутствует.
	ErrNotFound = errors.New("запись не найдена")

	// ErrInvalidCredentials возвращается одинаково и для неизвестного
	// пользователя, и для неверного пароля, чтобы не раскрывать,
	// какие имена зарегистрированы.
	ErrInvalidCredentials = errors.New("неверные учетные данные")

	// ErrUsernameTaken — нарушение уникальности имени пользователя.
	ErrUsernameTaken = errors.New("имя пользователя уже занято")
)

// ValidationError накапливает все нарушения входных данных одного запроса.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "ошибка валидации: " + strings.Join(e.Messages, "; ")
}

// NewValidationError создает ошибку валидации из списка сообщений.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// AsValidationError извлекает ValidationError из цепочки ошибок.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
