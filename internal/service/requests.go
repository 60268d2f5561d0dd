// requests.go — операции над таблицей заявок.
package service

import (
	"errors"
	"log/slog"

	"github.com/arturkryukov/lostfound/internal/domain/model"
	"github.com/arturkryukov/lostfound/internal/storage/registry"
)

// RequestService — создание заявок и смена их статуса.
type RequestService struct {
	requests registry.RequestStore
	logger   *slog.Logger
}

// NewRequestService создаёт сервис заявок.
func NewRequestService(requests registry.RequestStore, logger *slog.Logger) *RequestService {
	return &RequestService{
		requests: requests,
		logger:   logger.With(slog.String("component", "request_service")),
	}
}

// Create сохраняет новую заявку. Статус всегда принудительно
// PENDING независимо от значения вызывающего. Существование
// itemID и userID не проверяется — висячие ссылки допустимы.
func (s *RequestService) Create(itemID, userID int64) *model.Request {
	r := s.requests.Create(model.Request{
		ItemID: itemID,
		UserID: userID,
		Status: model.RequestPending,
	})

	s.logger.Info("Заявка создана",
		slog.Int64("request_id", r.ID),
		slog.Int64("item_id", r.ItemID),
		slog.Int64("user_id", r.UserID),
	)

	return r
}

// List возвращает snapshot всех заявок в порядке создания.
func (s *RequestService) List() []*model.Request {
	return s.requests.List()
}

// Get возвращает копию заявки или nil, если id не найден.
func (s *RequestService) Get(id int64) *model.Request {
	return s.requests.Get(id)
}

// UpdateStatus устанавливает статус заявки. Текст статуса
// распознаётся без учёта регистра. Смена статуса — прямое
// присваивание без проверки предыдущего состояния: APPROVED
// допустим и для PENDING, и для ранее REJECTED заявки.
//
// Ошибки: ErrRequestNotFound, если заявка отсутствует;
// *InvalidStatusError, если текст не распознан (статус заявки
// при этом не меняется).
func (s *RequestService) UpdateStatus(id int64, statusText string) (*model.Request, error) {
	r := s.requests.Get(id)
	if r == nil {
		return nil, ErrRequestNotFound
	}

	status, err := model.ParseRequestStatus(statusText)
	if err != nil {
		return nil, &InvalidStatusError{Value: statusText}
	}

	r.Status = status
	if err := s.requests.Update(r); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	s.logger.Info("Статус заявки изменён",
		slog.Int64("request_id", r.ID),
		slog.String("status", string(r.Status)),
	)

	return r, nil
}
