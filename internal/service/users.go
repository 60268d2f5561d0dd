// users.go — чтение таблицы пользователей.
package service

import (
	"log/slog"

	"github.com/arturkryukov/lostfound/internal/domain/model"
	"github.com/arturkryukov/lostfound/internal/storage/registry"
)

// UserService — операции чтения над пользователями.
// Пользователи не изменяются и не удаляются после регистрации.
type UserService struct {
	users  registry.UserStore
	logger *slog.Logger
}

// NewUserService создаёт сервис пользователей.
func NewUserService(users registry.UserStore, logger *slog.Logger) *UserService {
	return &UserService{
		users:  users,
		logger: logger.With(slog.String("component", "user_service")),
	}
}

// List возвращает snapshot всех пользователей в порядке регистрации.
// Дайджесты паролей включены; решение о редактировании принимает
// слой API (флаг LF_REDACT_DIGESTS).
func (s *UserService) List() []*model.User {
	return s.users.List()
}
