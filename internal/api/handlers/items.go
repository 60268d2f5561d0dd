// items.go — HTTP-обработчики CRUD вещей.
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

// ItemsHandler — обработчик endpoints /api/items.
type ItemsHandler struct {
	itemSvc *service.ItemService
}

// NewItemsHandler создаёт обработчик вещей.
func NewItemsHandler(itemSvc *service.ItemService) *ItemsHandler {
	return &ItemsHandler{itemSvc: itemSvc}
}

// itemRequest — тело запросов создания и обновления вещи.
// Поле id игнорируется: id присваивается сервером.
type itemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	OwnerID     int64  `json:"ownerId"`
}

// deleteResponse — подтверждение удаления.
type deleteResponse struct {
	Message string `json:"message"`
}

// Create обрабатывает POST /api/items.
// Id присваивается сервером; существование ownerId не проверяется.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		apierrors.ValidationError(w, err.Error())
		return
	}

	status, err := model.ParseItemStatus(req.Status)
	if err != nil {
		apierrors.ValidationError(w, err.Error())
		return
	}

	it := h.itemSvc.Create(req.Name, req.Description, status, req.OwnerID)

	middleware.OperationsTotal.WithLabelValues("item_create", "success").Inc()
	middleware.ItemsTotal.WithLabelValues(string(it.Status)).Inc()

	writeJSON(w, http.StatusOK, it)
}

// List обрабатывает GET /api/items.
// Возвращает snapshot всех вещей в порядке создания.
func (h *ItemsHandler) List(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.itemSvc.List())
}

// Update обрабатывает PUT /api/items/{id}.
// Изменяет name, description и status; id и ownerId неизменяемы.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierrors.ValidationError(w, err.Error())
		return
	}

	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		apierrors.ValidationError(w, err.Error())
		return
	}

	status, err := model.ParseItemStatus(req.Status)
	if err != nil {
		apierrors.ValidationError(w, err.Error())
		return
	}

	var prev model.ItemStatus
	if existing := h.itemSvc.Get(id); existing != nil {
		prev = existing.Status
	}

	it, err := h.itemSvc.Update(id, req.Name, req.Description, status)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			middleware.OperationsTotal.WithLabelValues("item_update", "not_found").Inc()
			apierrors.NotFound(w, fmt.Sprintf("Вещь %d не найдена", id))
			return
		}
		apierrors.InternalError(w, "Ошибка обновления вещи")
		return
	}

	middleware.OperationsTotal.WithLabelValues("item_update", "success").Inc()
	if prev != "" && prev != it.Status {
		middleware.ItemsTotal.WithLabelValues(string(prev)).Dec()
		middleware.ItemsTotal.WithLabelValues(string(it.Status)).Inc()
	}

	writeJSON(w, http.StatusOK, it)
}

// Delete обрабатывает DELETE /api/items/{id}.
// Идемпотентна: подтверждение возвращается и для отсутствующего id.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierrors.ValidationError(w, err.Error())
		return
	}

	var prev model.ItemStatus
	if existing := h.itemSvc.Get(id); existing != nil {
		prev = existing.Status
	}

	h.itemSvc.Delete(id)

	middleware.OperationsTotal.WithLabelValues("item_delete", "success").Inc()
	if prev != "" {
		middleware.ItemsTotal.WithLabelValues(string(prev)).Dec()
	}

	writeJSON(w, http.StatusOK, deleteResponse{Message: "Вещь удалена"})
}
