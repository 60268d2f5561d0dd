// Пакет auth — внешние коллабораторы аутентификации Registry Service:
// хеширование паролей (bcrypt) и выпуск/проверка сессионных токенов (JWT).
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher — контракт хеширования паролей:
// hash(password) → digest, verify(password, digest) → bool.
// Digest непрозрачен для остального кода.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// BcryptHasher — реализация PasswordHasher на bcrypt.
// CPU-bound: вызывается вне блокировок таблиц.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher создаёт хешер с указанной стоимостью.
// Возвращает ошибку, если cost вне диапазона bcrypt.
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("недопустимый bcrypt cost %d, допустимый диапазон %d-%d",
			cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &BcryptHasher{cost: cost}, nil
}

// Hash вычисляет bcrypt-дайджест пароля.
func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("ошибка хеширования пароля: %w", err)
	}
	return string(digest), nil
}

// Verify проверяет пароль против сохранённого дайджеста.
func (h *BcryptHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

var _ PasswordHasher = (*BcryptHasher)(nil)
