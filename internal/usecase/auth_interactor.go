package usecase

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/GoArmGo/PotionApp/internal/core/ports"
	"github.com/GoArmGo/PotionApp/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 30
	passwordMinLen = 6

	// bcryptCost — кост-фактор хеширования паролей
	bcryptCost = 10
)

// authUseCase implements AuthUseCase
type authUseCase struct {
	users ports.UserStorage
}

// NewAuthUseCase создает новый экземпляр AuthUseCase
func NewAuthUseCase(users ports.UserStorage) AuthUseCase {
	return &authUseCase{users: users}
}

// Register валидирует ввод, хеширует пароль и создает пользователя.
// Хеширование выполняется явно до обращения к хранилищу:
// открытый пароль дальше этого метода не уходит.
func (uc *authUseCase) Register(ctx context.Context, username, password string) error {
	// Подрезаем и экранируем ввод до проверки длины
	username = html.EscapeString(strings.TrimSpace(username))
	password = html.EscapeString(strings.TrimSpace(password))

	var messages []string
	if l := utf8.RuneCountInString(username); l < usernameMinLen || l > usernameMaxLen {
		messages = append(messages, fmt.Sprintf("имя пользователя должно быть от %d до %d символов", usernameMinLen, usernameMaxLen))
	}
	if utf8.RuneCountInString(password) < passwordMinLen {
		messages = append(messages, fmt.Sprintf("пароль должен быть не короче %d символов", passwordMinLen))
	}
	if len(messages) > 0 {
		return domain.NewValidationError(messages...)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("usecase: ошибка хеширования пароля: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := uc.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("usecase: ошибка при создании пользователя: %w", err)
	}
	return nil
}

// Login проверяет учетные данные.
// «Пользователь не найден» и «неверный пароль» неразличимы снаружи,
// чтобы нельзя было перебирать зарегистрированные имена.
func (uc *authUseCase) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := uc.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("usecase: ошибка при поиске пользователя: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}
