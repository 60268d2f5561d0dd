// requests.go — HTTP-обработчики заявок на вещи.
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	apierrors "github.com/arturkryukov/lostfound/internal/api/errors"
	"github.com/arturkryukov/lostfound/internal/api/middleware"
	"github.com/arturkryukov/lostfound/internal/domain/model"
	"github.com/arturkryukov/lostfound/internal/service"
)

// RequestsHandler — обработчик endpoints /api/requests.
type RequestsHandler struct {
	requestSvc *service.RequestService
}

// NewRequestsHandler создаёт обработчик заявок.
func NewRequestsHandler(requestSvc *service.RequestService) *RequestsHandler {
	return &RequestsHandler{requestSvc: requestSvc}
}

// requestCreate — тело запроса создания заявки.
// Поля id и status игнорируются: id присваивается сервером,
// статус всегда принудительно PENDING.
type requestCreate struct {
	ItemID int64 `json:"itemId"`
	UserID int64 `json:"userId"`
}

// Create обрабатывает POST /api/requests.
// Существование itemId и userId не проверяется.
func (h *RequestsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req requestCreate
	if err := decodeJSON(r, &req); err != nil {
		apierrors.ValidationError(w, err.Error())
		return
	}

	created := h.requestSvc.Create(req.ItemID, req.UserID)

	middleware.OperationsTotal.WithLabelValues("request_create", "success").Inc()
	middleware.RequestsTotal.WithLabelValues(string(model.RequestPending)).Inc()

	writeJSON(w, http.StatusOK, created)
}

// List обрабатывает GET /api/requests.
// Возвращает snapshot всех заявок в порядке создания.
func (h *RequestsHandler) List(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.requestSvc.List())
}

// UpdateStatus обрабатывает PUT /api/requests/{id}/status?status=...
// Текст статуса распознаётся без учёта регистра; нераспознанный
// текст — 400 INVALID_STATUS, статус заявки при этом не меняется.
func (h *RequestsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierrors.ValidationError(w, err.Error())
		return
	}

	statusText := r.URL.Query().Get("status")

	var prev model.RequestStatus
	if existing := h.requestSvc.Get(id); existing != nil {
		prev = existing.Status
	}

	updated, err := h.requestSvc.UpdateStatus(id, statusText)
	if err != nil {
		var invalidErr *service.InvalidStatusError
		switch {
		case errors.Is(err, service.ErrRequestNotFound):
			middleware.OperationsTotal.WithLabelValues("request_update", "not_found").Inc()
			apierrors.NotFound(w, fmt.Sprintf("Заявка %d не найдена", id))
		case errors.As(err, &invalidErr):
			middleware.OperationsTotal.WithLabelValues("request_update", "invalid_status").Inc()
			apierrors.InvalidStatus(w, invalidErr.Error())
		default:
			apierrors.InternalError(w, "Ошибка обновления заявки")
		}
		return
	}

	middleware.OperationsTotal.WithLabelValues("request_update", "success").Inc()
	if prev != "" && prev != updated.Status {
		middleware.RequestsTotal.WithLabelValues(string(prev)).Dec()
		middleware.RequestsTotal.WithLabelValues(string(updated.Status)).Inc()
	}

	writeJSON(w, http.StatusOK, updated)
}
