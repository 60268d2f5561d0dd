// errors.go — доменные ошибки сервисного слоя.
// Каждая операция возвращает типизированную ошибку; обработчики API
// преобразуют её в машиночитаемый код и HTTP-статус.
package service

import (
	"errors"
	"fmt"
)

var (
	// ErrUsernameTaken — регистрация с уже занятым username.
	ErrUsernameTaken = errors.New("username уже существует")
	// ErrInvalidCredentials — неверная пара username/password.
	ErrInvalidCredentials = errors.New("неверные учётные данные")
	// ErrItemNotFound — вещь с указанным id отсутствует.
	ErrItemNotFound = errors.New("вещь не найдена")
	// ErrRequestNotFound — заявка с указанным id отсутствует.
	ErrRequestNotFound = errors.New("заявка не найдена")
)

// InvalidStatusError — нераспознанный текст статуса.
// Восстановимая ошибка валидации, не паника: исходная версия
// сервиса роняла обработчик на невалидном статусе.
type InvalidStatusError struct {
	Value string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("недопустимый статус: %q", e.Value)
}
