package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/PotionApp/internal/auth"
	"github.com/GoArmGo/PotionApp/internal/config"
	"github.com/GoArmGo/PotionApp/internal/handler"
	"github.com/GoArmGo/PotionApp/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// newRouter собирает все маршруты приложения.
// /auth открыт, /potions и /analytics сидят за стражем сессии.
func newRouter(
	cfg *config.Config,
	logger *slog.Logger,
	tokens *auth.TokenManager,
	authUC usecase.AuthUseCase,
	potionUC usecase.PotionUseCase,
	analyticsUC usecase.AnalyticsUseCase,
) http.Handler {
	authHandler := handler.NewAuthHandler(authUC, tokens, cfg.CookieName, logger)
	potionHandler := handler.NewPotionHandler(potionUC, logger)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsUC, logger)

	r := chi.NewRouter()
	r.Use(handler.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Get("/logout", authHandler.Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(handler.SessionAuth(tokens, cfg.CookieName, logger))

		r.Route("/potions", func(r chi.Router) {
			r.Get("/", potionHandler.List)
			r.Get("/names", potionHandler.ListNames)
			r.Get("/vendor/{vendor_id}", potionHandler.FindByVendor)
			r.Get("/price-range", potionHandler.FindByPriceRange)
			r.Get("/{id}", potionHandler.FindByID)
			r.Post("/", potionHandler.Create)
			r.Put("/{id}", potionHandler.Update)
			r.Delete("/{id}", potionHandler.Delete)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/distinct-categories", analyticsHandler.DistinctCategories)
			r.Get("/average-score-by-vendor", analyticsHandler.AverageScoreByVendor)
			r.Get("/average-score-by-category", analyticsHandler.AverageScoreByCategory)
			r.Get("/strength-flavor-ratio", analyticsHandler.StrengthFlavorRatio)
			r.Get("/search", analyticsHandler.Search)
		})
	})

	return r
}

// runServer запускает HTTP сервер и блокируется до отмены контекста
func runServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, router http.Handler) error {
	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", "addr", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("ошибка при запуске сервера: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	ctxServer, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxServer); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}
