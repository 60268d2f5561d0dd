// items.go — операции над таблицей вещей.
package service

import (
	"errors"
	"log/slog"

	"github.com/arturkryukov/lostfound/internal/domain/model"
	"github.com/arturkryukov/lostfound/internal/storage/registry"
)

// ItemService — CRUD над вещами реестра.
type ItemService struct {
	items  registry.ItemStore
	logger *slog.Logger
}

// NewItemService создаёт сервис вещей.
func NewItemService(items registry.ItemStore, logger *slog.Logger) *ItemService {
	return &ItemService{
		items:  items,
		logger: logger.With(slog.String("component", "item_service")),
	}
}

// Create сохраняет новую вещь. Id присваивается сервером,
// значение вызывающего игнорируется. Существование ownerID
// не проверяется.
func (s *ItemService) Create(name, description string, status model.ItemStatus, ownerID int64) *model.Item {
	it := s.items.Create(model.Item{
		Name:        name,
		Description: description,
		Status:      status,
		OwnerID:     ownerID,
	})

	s.logger.Info("Вещь создана",
		slog.Int64("item_id", it.ID),
		slog.String("status", string(it.Status)),
	)

	return it
}

// List возвращает snapshot всех вещей в порядке создания.
func (s *ItemService) List() []*model.Item {
	return s.items.List()
}

// Get возвращает копию вещи или nil, если id не найден.
func (s *ItemService) Get(id int64) *model.Item {
	return s.items.Get(id)
}

// Update изменяет name, description и status вещи.
// Id и ownerID неизменяемы. Возвращает ErrItemNotFound,
// если вещь отсутствует; таблица при этом не меняется.
func (s *ItemService) Update(id int64, name, description string, status model.ItemStatus) (*model.Item, error) {
	it := s.items.Get(id)
	if it == nil {
		return nil, ErrItemNotFound
	}

	it.Name = name
	it.Description = description
	it.Status = status

	if err := s.items.Update(it); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	s.logger.Info("Вещь обновлена",
		slog.Int64("item_id", it.ID),
		slog.String("status", string(it.Status)),
	)

	return it, nil
}

// Delete удаляет вещь. Идемпотентна: удаление отсутствующего id —
// не ошибка, вызывающий всегда получает подтверждение.
func (s *ItemService) Delete(id int64) {
	existed := s.items.Delete(id)

	s.logger.Info("Вещь удалена",
		slog.Int64("item_id", id),
		slog.Bool("existed", existed),
	)
}
