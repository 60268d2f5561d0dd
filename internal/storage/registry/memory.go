// memory.go — in-memory реализация таблиц Registry Service.
// Потокобезопасность через sync.RWMutex на таблицу: конкурентные
// чтения, эксклюзивные записи. Порядок перечисления — порядок
// вставки (для детерминизма списков и тестов).
//
// Не персистентна: состояние сбрасывается при рестарте процесса.
package registry

import (
	"sync"

	"github.com/arturkryukov/lostfound/internal/domain/model"
)

// MemoryUserStore — in-memory таблица пользователей.
type MemoryUserStore struct {
	mu    sync.RWMutex
	seq   Sequence
	users map[int64]*model.User
	order []int64
}

// NewMemoryUserStore создаёт пустую таблицу пользователей.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		users: make(map[int64]*model.User),
	}
}

// Create сохраняет нового пользователя. Уникальность username
// проверяется под эксклюзивной блокировкой, поэтому два
// конкурентных вызова с одним username не могут оба пройти.
// При конфликте id не выделяется.
func (s *MemoryUserStore) Create(u model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == u.Username {
			return nil, ErrUsernameExists
		}
	}

	u.ID = s.seq.Next()
	s.users[u.ID] = &u
	s.order = append(s.order, u.ID)

	copied := u
	return &copied, nil
}

// Get возвращает копию пользователя или nil.
func (s *MemoryUserStore) Get(id int64) *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil
	}
	copied := *u
	return &copied
}

// FindByUsername ищет пользователя по точному совпадению username.
func (s *MemoryUserStore) FindByUsername(username string) *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			copied := *u
			return &copied
		}
	}
	return nil
}

// List возвращает snapshot всех пользователей в порядке регистрации.
func (s *MemoryUserStore) List() []*model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.User, 0, len(s.order))
	for _, id := range s.order {
		copied := *s.users[id]
		result = append(result, &copied)
	}
	return result
}

// Count возвращает количество пользователей.
func (s *MemoryUserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// MemoryItemStore — in-memory таблица вещей.
type MemoryItemStore struct {
	mu    sync.RWMutex
	seq   Sequence
	items map[int64]*model.Item
	order []int64
}

// NewMemoryItemStore создаёт пустую таблицу вещей.
func NewMemoryItemStore() *MemoryItemStore {
	return &MemoryItemStore{
		items: make(map[int64]*model.Item),
	}
}

// Create сохраняет вещь, присваивая следующий id.
func (s *MemoryItemStore) Create(it model.Item) *model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	it.ID = s.seq.Next()
	s.items[it.ID] = &it
	s.order = append(s.order, it.ID)

	copied := it
	return &copied
}

// Get возвращает копию вещи или nil.
func (s *MemoryItemStore) Get(id int64) *model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return nil
	}
	copied := *it
	return &copied
}

// Update заменяет существующую вещь.
func (s *MemoryItemStore) Update(it *model.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[it.ID]; !ok {
		return ErrNotFound
	}

	copied := *it
	s.items[it.ID] = &copied
	return nil
}

// Delete удаляет вещь по id. Идемпотентна: повторное удаление
// или удаление отсутствующего id возвращает false без ошибки.
// Выданный id не переиспользуется.
func (s *MemoryItemStore) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)

	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// List возвращает snapshot всех вещей в порядке создания.
func (s *MemoryItemStore) List() []*model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.Item, 0, len(s.order))
	for _, id := range s.order {
		copied := *s.items[id]
		result = append(result, &copied)
	}
	return result
}

// CountByStatus возвращает количество вещей с указанным статусом.
func (s *MemoryItemStore) CountByStatus(status model.ItemStatus) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, it := range s.items {
		if it.Status == status {
			count++
		}
	}
	return count
}

// MemoryRequestStore — in-memory таблица заявок.
type MemoryRequestStore struct {
	mu       sync.RWMutex
	seq      Sequence
	requests map[int64]*model.Request
	order    []int64
}

// NewMemoryRequestStore создаёт пустую таблицу заявок.
func NewMemoryRequestStore() *MemoryRequestStore {
	return &MemoryRequestStore{
		requests: make(map[int64]*model.Request),
	}
}

// Create сохраняет заявку, присваивая следующий id.
func (s *MemoryRequestStore) Create(r model.Request) *model.Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = s.seq.Next()
	s.requests[r.ID] = &r
	s.order = append(s.order, r.ID)

	copied := r
	return &copied
}

// Get возвращает копию заявки или nil.
func (s *MemoryRequestStore) Get(id int64) *model.Request {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.requests[id]
	if !ok {
		return nil
	}
	copied := *r
	return &copied
}

// Update заменяет существующую заявку.
func (s *MemoryRequestStore) Update(r *model.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.requests[r.ID]; !ok {
		return ErrNotFound
	}

	copied := *r
	s.requests[r.ID] = &copied
	return nil
}

// List возвращает snapshot всех заявок в порядке создания.
func (s *MemoryRequestStore) List() []*model.Request {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.Request, 0, len(s.order))
	for _, id := range s.order {
		copied := *s.requests[id]
		result = append(result, &copied)
	}
	return result
}

// CountByStatus возвращает количество заявок с указанным статусом.
func (s *MemoryRequestStore) CountByStatus(status model.RequestStatus) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, r := range s.requests {
		if r.Status == status {
			count++
		}
	}
	return count
}

// Проверка реализации интерфейсов на этапе компиляции.
var (
	_ UserStore    = (*MemoryUserStore)(nil)
	_ ItemStore    = (*MemoryItemStore)(nil)
	_ RequestStore = (*MemoryRequestStore)(nil)
)
