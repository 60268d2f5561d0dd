// Пакет model — доменные модели Registry Service.
// Три сущности: User, Item, Request. Идентификаторы — строго
// возрастающие int64, выдаются счётчиками хранилища.
package model

import (
	"fmt"
	"strings"
)

// Role — роль пользователя. Хранится, но не проверяется
// ни одной операцией (авторизация вне рамок сервиса).
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
	RoleUser  Role = "USER"
)

// ItemStatus — статус вещи в реестре.
type ItemStatus string

const (
	// ItemLost — вещь заявлена как утерянная
	ItemLost ItemStatus = "LOST"
	// ItemFound — вещь найдена и ожидает владельца
	ItemFound ItemStatus = "FOUND"
	// ItemClaimed — вещь передана владельцу
	ItemClaimed ItemStatus = "CLAIMED"
)

// RequestStatus — статус заявки на получение вещи.
type RequestStatus string

const (
	// RequestPending — заявка ожидает решения персонала
	RequestPending RequestStatus = "PENDING"
	// RequestApproved — заявка одобрена
	RequestApproved RequestStatus = "APPROVED"
	// RequestRejected — заявка отклонена
	RequestRejected RequestStatus = "REJECTED"
)

// User — зарегистрированный пользователь.
// Username уникален среди всех когда-либо зарегистрированных
// пользователей (точное совпадение, с учётом регистра).
// PasswordDigest — непрозрачный вывод bcrypt, не plaintext.
type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	PasswordDigest string `json:"passwordDigest,omitempty"`
	Role           Role   `json:"role"`
}

// Item — вещь в реестре. OwnerID ссылается на User.ID,
// существование владельца не проверяется.
// ID и OwnerID неизменяемы после создания.
type Item struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      ItemStatus `json:"status"`
	OwnerID     int64      `json:"ownerId"`
}

// Request — заявка пользователя на вещь. ItemID и UserID
// не валидируются против таблиц — висячие ссылки допустимы.
// Создаётся всегда со статусом PENDING.
type Request struct {
	ID     int64         `json:"id"`
	ItemID int64         `json:"itemId"`
	UserID int64         `json:"userId"`
	Status RequestStatus `json:"status"`
}

// ParseItemStatus преобразует строку в ItemStatus без учёта регистра.
// Возвращает ошибку для недопустимых значений.
func ParseItemStatus(s string) (ItemStatus, error) {
	switch ItemStatus(strings.ToUpper(s)) {
	case ItemLost:
		return ItemLost, nil
	case ItemFound:
		return ItemFound, nil
	case ItemClaimed:
		return ItemClaimed, nil
	default:
		return "", fmt.Errorf("недопустимый статус вещи: %q, допустимые: LOST, FOUND, CLAIMED", s)
	}
}

// ParseRequestStatus преобразует строку в RequestStatus без учёта регистра.
// Возвращает ошибку для недопустимых значений.
func ParseRequestStatus(s string) (RequestStatus, error) {
	switch RequestStatus(strings.ToUpper(s)) {
	case RequestPending:
		return RequestPending, nil
	case RequestApproved:
		return RequestApproved, nil
	case RequestRejected:
		return RequestRejected, nil
	default:
		return "", fmt.Errorf("недопустимый статус заявки: %q, допустимые: PENDING, APPROVED, REJECTED", s)
	}
}
