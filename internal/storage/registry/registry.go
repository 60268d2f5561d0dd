// Пакет registry — хранилище таблиц Registry Service.
//
// Определяет интерфейсы таблиц (users, items, requests) и их
// in-memory реализацию. Абстракция позволяет позже заменить
// in-memory карты персистентным бэкендом без изменения
// сервисного слоя.
//
// Все операции чтения возвращают копии (snapshot), никогда —
// живые ссылки во внутренние структуры.
package registry

import (
	"errors"
	"sync/atomic"

	"github.com/arturkryukov/lostfound/internal/domain/model"
)

// Ошибки хранилища.
var (
	// ErrNotFound — строка с указанным id отсутствует в таблице.
	ErrNotFound = errors.New("запись не найдена")
	// ErrUsernameExists — пользователь с таким username уже зарегистрирован.
	ErrUsernameExists = errors.New("username уже существует")
)

// Sequence — атомарный счётчик идентификаторов таблицы.
// Выдаёт строго возрастающие значения начиная с 1.
// Однажды выданный id никогда не переиспользуется.
type Sequence struct {
	n atomic.Int64
}

// Next атомарно выделяет следующий идентификатор.
func (s *Sequence) Next() int64 {
	return s.n.Add(1)
}

// Current возвращает последний выданный идентификатор (0, если выдач не было).
func (s *Sequence) Current() int64 {
	return s.n.Load()
}

// UserStore — таблица пользователей.
type UserStore interface {
	// Create сохраняет нового пользователя, присваивая следующий id.
	// Возвращает ErrUsernameExists при дубликате username; в этом
	// случае id не выделяется.
	Create(u model.User) (*model.User, error)
	// Get возвращает копию пользователя или nil, если id не найден.
	Get(id int64) *model.User
	// FindByUsername ищет пользователя по точному совпадению username.
	// Возвращает nil, если не найден.
	FindByUsername(username string) *model.User
	// List возвращает snapshot всех пользователей в порядке регистрации.
	List() []*model.User
}

// ItemStore — таблица вещей.
type ItemStore interface {
	// Create сохраняет вещь, присваивая следующий id
	// (заданный вызывающим id игнорируется).
	Create(it model.Item) *model.Item
	// Get возвращает копию вещи или nil, если id не найден.
	Get(id int64) *model.Item
	// Update заменяет существующую вещь. Возвращает ErrNotFound,
	// если id отсутствует; таблица при этом не меняется.
	Update(it *model.Item) error
	// Delete удаляет вещь. Возвращает true, если вещь существовала.
	// Удаление отсутствующего id — не ошибка.
	Delete(id int64) bool
	// List возвращает snapshot всех вещей в порядке создания.
	List() []*model.Item
}

// RequestStore — таблица заявок. Заявки никогда не удаляются.
type RequestStore interface {
	// Create сохраняет заявку, присваивая следующий id.
	Create(r model.Request) *model.Request
	// Get возвращает копию заявки или nil, если id не найден.
	Get(id int64) *model.Request
	// Update заменяет существующую заявку. Возвращает ErrNotFound,
	// если id отсутствует.
	Update(r *model.Request) error
	// List возвращает snapshot всех заявок в порядке создания.
	List() []*model.Request
}
