package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/PotionApp/internal/auth"
	"github.com/GoArmGo/PotionApp/internal/config"
	"github.com/GoArmGo/PotionApp/internal/database/client"
	"github.com/GoArmGo/PotionApp/internal/usecase"
)

// App держит все зависимости приложения, собранные в di.BuildApp.
type App struct {
	cfg         *config.Config
	logger      *slog.Logger
	dbClient    *client.Client
	tokens      *auth.TokenManager
	authUC      usecase.AuthUseCase
	potionUC    usecase.PotionUseCase
	analyticsUC usecase.AnalyticsUseCase
}

func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	dbClient *client.Client,
	tokens *auth.TokenManager,
	authUC usecase.AuthUseCase,
	potionUC usecase.PotionUseCase,
	analyticsUC usecase.AnalyticsUseCase,
) *App {
	return &App{
		cfg:         cfg,
		logger:      logger,
		dbClient:    dbClient,
		tokens:      tokens,
		authUC:      authUC,
		potionUC:    potionUC,
		analyticsUC: analyticsUC,
	}
}

// LoggerIns возвращает основной логгер приложения.
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

// Run запускает HTTP сервер и блокируется до сигнала завершения.
func (a *App) Run(ctx context.Context) error {
	// канал для graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router := newRouter(a.cfg, a.logger, a.tokens, a.authUC, a.potionUC, a.analyticsUC)

	err := runServer(ctx, a.cfg, a.logger, router)

	// аккуратно закрываем ресурсы
	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("shutdown error", "error", closeErr)
	}

	return err
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	if a.dbClient != nil {
		if err := a.dbClient.Close(); err != nil {
			return fmt.Errorf("ошибка закрытия БД: %w", err)
		}
	}
	return nil
}
