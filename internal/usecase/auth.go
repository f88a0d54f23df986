package usecase

import (
	"context"

	"github.com/GoArmGo/PotionApp/internal/domain"
)

// AuthUseCase определяет операции регистрации и проверки учетных данных
type AuthUseCase interface {
	// Register валидирует и регистрирует нового пользователя.
	// domain.ValidationError при нарушении правил ввода,
	// domain.ErrUsernameTaken при занятом имени.
	Register(ctx context.Context, username, password string) error

	// Login проверяет учетные данные и возвращает пользователя.
	// Для неизвестного имени и для неверного пароля возвращается
	// один и тот же domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*domain.User, error)
}
