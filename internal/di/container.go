package di

import (
	"github.com/GoArmGo/PotionApp/internal/app"
	"github.com/GoArmGo/PotionApp/internal/auth"
	"github.com/GoArmGo/PotionApp/internal/config"
	"github.com/GoArmGo/PotionApp/internal/database/client"
	"github.com/GoArmGo/PotionApp/internal/database/storage"
	"github.com/GoArmGo/PotionApp/internal/logger"
	"github.com/GoArmGo/PotionApp/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
// Клиент бд создается один раз и передается хранилищам явно —
// глобальных синглтонов подключения здесь нет.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Инициализация PostgreSQL клиента (с миграциями)
	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 3. Инициализация хранилищ
	potionStorage := storage.NewPotionStorage(dbClient.DB, slogger)
	userStorage := storage.NewUserStorage(dbClient.DB, slogger)
	analyticsStorage := storage.NewAnalyticsStorage(dbClient.DB, slogger)

	// 4. Менеджер сессионных токенов
	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL)
	if err != nil {
		return nil, err
	}

	// 5. Инициализация бизнес-логики (usecases)
	authUC := usecase.NewAuthUseCase(userStorage)
	potionUC := usecase.NewPotionUseCase(potionStorage)
	analyticsUC := usecase.NewAnalyticsUseCase(analyticsStorage)

	// 6. Сборка итогового приложения
	application := app.NewApp(cfg, slogger, dbClient, tokens, authUC, potionUC, analyticsUC)

	slogger.Info("all dependencies initialized")
	return application, nil
}
