// users.go — HTTP-обработчик списка пользователей.
package handlers

import (
	"net/http"

	"github.com/arturkryukov/lostfound/internal/api/middleware"
	"github.com/arturkryukov/lostfound/internal/service"
)

// UsersHandler — обработчик endpoint /api/users.
type UsersHandler struct {
	userSvc *service.UserService
	// redactDigests — исключать ли дайджесты паролей из ответа.
	// Исторически API отдавал дайджесты (известный дефект);
	// по умолчанию поведение сохранено, флаг LF_REDACT_DIGESTS
	// включает редактирование.
	redactDigests bool
}

// NewUsersHandler создаёт обработчик пользователей.
func NewUsersHandler(userSvc *service.UserService, redactDigests bool) *UsersHandler {
	return &UsersHandler{
		userSvc:       userSvc,
		redactDigests: redactDigests,
	}
}

// List обрабатывает GET /api/users.
// Возвращает snapshot всех пользователей в порядке регистрации.
func (h *UsersHandler) List(w http.ResponseWriter, _ *http.Request) {
	users := h.userSvc.List()

	// List отдаёт копии, обнуление дайджеста не трогает таблицу
	if h.redactDigests {
		for _, u := range users {
			u.PasswordDigest = ""
		}
	}

	middleware.OperationsTotal.WithLabelValues("user_list", "success").Inc()

	writeJSON(w, http.StatusOK, users)
}
