// Пакет server — HTTP-сервер Registry Service с graceful shutdown.
// Без TLS — HTTP внутри кластера, TLS termination на API Gateway.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arturkryukov/lostfound/internal/api/handlers"
	"github.com/arturkryukov/lostfound/internal/api/middleware"
	"github.com/arturkryukov/lostfound/internal/config"
)

// Handlers — набор обработчиков API для маршрутизации.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Items    *handlers.ItemsHandler
	Requests *handlers.RequestsHandler
	Users    *handlers.UsersHandler
	Health   *handlers.HealthHandler
}

// Server — HTTP-сервер Registry Service.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	cfg        *config.Config
}

// New создаёт HTTP-сервер с настроенными routes и middleware.
// sessionAuth — middleware проверки токенов; nil, если проверка
// отключена (LF_AUTH_REQUIRED=false, историческое поведение API).
func New(cfg *config.Config, logger *slog.Logger, h Handlers, sessionAuth *middleware.SessionAuth) *Server {
	router := NewRouter(logger, h, sessionAuth)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return &Server{
		httpServer: srv,
		logger:     logger,
		cfg:        cfg,
	}
}

// NewRouter собирает chi-роутер со всеми маршрутами и middleware.
// Выделен из New для использования в httptest.
func NewRouter(logger *slog.Logger, h Handlers, sessionAuth *middleware.SessionAuth) chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestLogger(logger))

	if sessionAuth != nil {
		// Регистрация, вход и служебные endpoints — без токена
		router.Use(middleware.WithExclusions(
			sessionAuth.Middleware(),
			"/api/signup",
			"/api/signin",
			"/health",
			"/metrics",
		))
	}

	router.Route("/api", func(r chi.Router) {
		r.Post("/signup", h.Auth.SignUp)
		r.Post("/signin", h.Auth.SignIn)

		r.Post("/items", h.Items.Create)
		r.Get("/items", h.Items.List)
		r.Put("/items/{id}", h.Items.Update)
		r.Delete("/items/{id}", h.Items.Delete)

		r.Post("/requests", h.Requests.Create)
		r.Get("/requests", h.Requests.List)
		r.Put("/requests/{id}/status", h.Requests.UpdateStatus)

		r.Get("/users", h.Users.List)
	})

	router.Get("/health/live", h.Health.HealthLive)
	router.Get("/health/ready", h.Health.HealthReady)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return router
}

// Run запускает сервер и ожидает сигнала завершения (SIGINT, SIGTERM).
// При получении сигнала выполняется graceful shutdown.
func (s *Server) Run() error {
	// Канал для ошибок сервера
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("HTTP-сервер запущен",
			slog.String("addr", s.httpServer.Addr),
		)

		err := s.httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		s.logger.Info("Получен сигнал завершения", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ошибка HTTP-сервера: %w", err)
		}
	}

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.logger.Info("Выполняется graceful shutdown...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("ошибка при graceful shutdown: %w", err)
	}

	s.logger.Info("HTTP-сервер остановлен")
	return nil
}
