// health.go — обработчики health endpoints для Kubernetes probes.
package handlers

import (
	"net/http"
	"time"

	"github.com/arturkryukov/lostfound/internal/config"
)

// TableCounter — интерфейс подсчёта строк таблицы для readiness-ответа.
type TableCounter interface {
	Count() int
}

// HealthHandler реализует health endpoints: /health/live, /health/ready.
type HealthHandler struct {
	version string
	users   TableCounter
}

// NewHealthHandler создаёт обработчик health endpoints.
func NewHealthHandler(users TableCounter) *HealthHandler {
	return &HealthHandler{
		version: config.Version,
		users:   users,
	}
}

// HealthLive обрабатывает GET /health/live.
// Возвращает 200, если процесс жив. Не проверяет зависимости.
func (h *HealthHandler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   h.version,
		"service":   "lostfound-registry",
	})
}

// HealthReady обрабатывает GET /health/ready.
// Таблицы in-memory и готовы сразу после конструирования,
// внешних зависимостей нет.
func (h *HealthHandler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	resp := map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks": map[string]any{
			"registry": map[string]any{
				"status": "ok",
				"users":  h.users.Count(),
			},
		},
	}

	writeJSON(w, http.StatusOK, resp)
}
