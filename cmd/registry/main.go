// Точка входа Registry Service — сервиса учёта утерянных и найденных вещей.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/arturkryukov/lostfound/internal/api/handlers"
	"github.com/arturkryukov/lostfound/internal/api/middleware"
	"github.com/arturkryukov/lostfound/internal/auth"
	"github.com/arturkryukov/lostfound/internal/config"
	"github.com/arturkryukov/lostfound/internal/server"
	"github.com/arturkryukov/lostfound/internal/service"
	"github.com/arturkryukov/lostfound/internal/storage/registry"
)

func main() {
	// Загрузка конфигурации из переменных окружения
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка конфигурации: %v\n", err)
		os.Exit(1)
	}

	// Настройка логгера
	logger := config.SetupLogger(cfg)
	logger.Info("Registry Service запускается",
		slog.String("version", config.Version),
		slog.Int("port", cfg.Port),
		slog.Bool("auth_required", cfg.AuthRequired),
		slog.Bool("redact_digests", cfg.RedactDigests),
	)

	// --- Инициализация компонентов ---

	// 1. In-memory таблицы реестра
	users := registry.NewMemoryUserStore()
	items := registry.NewMemoryItemStore()
	requests := registry.NewMemoryRequestStore()

	// 2. Коллабораторы аутентификации
	hasher, err := auth.NewBcryptHasher(cfg.BcryptCost)
	if err != nil {
		logger.Error("Ошибка инициализации хешера паролей", slog.String("error", err.Error()))
		os.Exit(1)
	}

	issuer, err := auth.NewJWTIssuer(cfg.TokenSecret, cfg.TokenTTL)
	if err != nil {
		logger.Error("Ошибка инициализации issuer токенов", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 3. Сервисы
	authSvc := service.NewAuthService(users, hasher, issuer, logger)
	itemSvc := service.NewItemService(items, logger)
	requestSvc := service.NewRequestService(requests, logger)
	userSvc := service.NewUserService(users, logger)

	// 4. Handlers
	h := server.Handlers{
		Auth:     handlers.NewAuthHandler(authSvc),
		Items:    handlers.NewItemsHandler(itemSvc),
		Requests: handlers.NewRequestsHandler(requestSvc),
		Users:    handlers.NewUsersHandler(userSvc, cfg.RedactDigests),
		Health:   handlers.NewHealthHandler(users),
	}

	// 5. Middleware проверки токенов (по умолчанию выключен)
	var sessionAuth *middleware.SessionAuth
	if cfg.AuthRequired {
		sessionAuth = middleware.NewSessionAuth(issuer, logger)
		logger.Info("Проверка сессионных токенов включена")
	}

	// 6. Создание и запуск HTTP-сервера
	srv := server.New(cfg, logger, h, sessionAuth)

	if err := srv.Run(); err != nil {
		logger.Error("Ошибка сервера", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Registry Service остановлен")
}
