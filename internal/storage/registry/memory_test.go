package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/arturkryukov/lostfound/internal/domain/model"
)

// TestSequence_Concurrent проверяет, что N конкурентных выделений
// дают ровно множество {1..N} без пропусков и дубликатов.
func TestSequence_Concurrent(t *testing.T) {
	const n = 1000

	var seq Sequence
	ids := make(chan int64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- seq.Next()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		if id < 1 || id > n {
			t.Errorf("id %d вне диапазона 1..%d", id, n)
		}
		if seen[id] {
			t.Errorf("id %d выдан дважды", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Errorf("ожидалось %d уникальных id, получено %d", n, len(seen))
	}
	if seq.Current() != n {
		t.Errorf("Current(): ожидалось %d, получено %d", n, seq.Current())
	}
}

// TestMemoryUserStore_Create проверяет присвоение id и уникальность username.
func TestMemoryUserStore_Create(t *testing.T) {
	store := NewMemoryUserStore()

	u1, err := store.Create(model.User{Username: "alice", PasswordDigest: "d1", Role: model.RoleUser})
	if err != nil {
		t.Fatalf("Create(alice): неожиданная ошибка: %v", err)
	}
	if u1.ID != 1 {
		t.Errorf("первый id: ожидалось 1, получено %d", u1.ID)
	}

	// Дубликат username — конфликт, id не выделяется
	if _, err := store.Create(model.User{Username: "alice", PasswordDigest: "d2"}); !errors.Is(err, ErrUsernameExists) {
		t.Errorf("дубликат username: ожидалась ErrUsernameExists, получено %v", err)
	}

	u2, err := store.Create(model.User{Username: "bob", PasswordDigest: "d3", Role: model.RoleUser})
	if err != nil {
		t.Fatalf("Create(bob): неожиданная ошибка: %v", err)
	}
	if u2.ID != 2 {
		t.Errorf("после конфликта id не должен пропускаться: ожидалось 2, получено %d", u2.ID)
	}

	if store.Count() != 2 {
		t.Errorf("Count(): ожидалось 2, получено %d", store.Count())
	}
}

// TestMemoryUserStore_ConcurrentDuplicates проверяет, что из N конкурентных
// регистраций одного username проходит ровно одна.
func TestMemoryUserStore_ConcurrentDuplicates(t *testing.T) {
	const n = 100

	store := NewMemoryUserStore()

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Create(model.User{Username: "alice", PasswordDigest: "d"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	ok := 0
	for err := range errs {
		if err == nil {
			ok++
		} else if !errors.Is(err, ErrUsernameExists) {
			t.Errorf("неожиданная ошибка: %v", err)
		}
	}
	if ok != 1 {
		t.Errorf("ожидалась ровно 1 успешная регистрация, получено %d", ok)
	}

	users := store.List()
	if len(users) != 1 || users[0].ID != 1 {
		t.Errorf("таблица: ожидался один пользователь с id=1, получено %+v", users)
	}
}

// TestMemoryUserStore_Snapshot проверяет, что List и FindByUsername
// возвращают копии, а не живые ссылки.
func TestMemoryUserStore_Snapshot(t *testing.T) {
	store := NewMemoryUserStore()
	store.Create(model.User{Username: "alice", PasswordDigest: "d1"})

	got := store.FindByUsername("alice")
	got.PasswordDigest = "изменено"

	if store.FindByUsername("alice").PasswordDigest != "d1" {
		t.Error("изменение возвращённой копии не должно затрагивать таблицу")
	}

	list := store.List()
	list[0].Username = "mallory"
	if store.FindByUsername("alice") == nil {
		t.Error("изменение snapshot-списка не должно затрагивать таблицу")
	}
}

// TestMemoryItemStore_CRUD проверяет жизненный цикл вещи.
func TestMemoryItemStore_CRUD(t *testing.T) {
	store := NewMemoryItemStore()

	it := store.Create(model.Item{Name: "Кошелёк", Status: model.ItemLost, OwnerID: 1})
	if it.ID != 1 {
		t.Fatalf("первый id: ожидалось 1, получено %d", it.ID)
	}

	// Заданный вызывающим id игнорируется
	it2 := store.Create(model.Item{ID: 99, Name: "Зонт", Status: model.ItemFound})
	if it2.ID != 2 {
		t.Errorf("id вызывающего должен игнорироваться: ожидалось 2, получено %d", it2.ID)
	}

	// Update существующей
	it.Status = model.ItemFound
	it.Description = "чёрный кожаный"
	if err := store.Update(it); err != nil {
		t.Fatalf("Update: неожиданная ошибка: %v", err)
	}
	if got := store.Get(1); got.Status != model.ItemFound || got.Description != "чёрный кожаный" {
		t.Errorf("Update не применился: %+v", got)
	}

	// Update несуществующей — ErrNotFound, таблица не меняется
	missing := &model.Item{ID: 777, Name: "призрак"}
	if err := store.Update(missing); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(777): ожидалась ErrNotFound, получено %v", err)
	}
	if len(store.List()) != 2 {
		t.Error("неудачный Update не должен менять таблицу")
	}

	// Идемпотентное удаление
	if !store.Delete(1) {
		t.Error("Delete(1): вещь существовала, ожидалось true")
	}
	if store.Delete(1) {
		t.Error("повторный Delete(1): ожидалось false без ошибки")
	}
	if store.Delete(777) {
		t.Error("Delete отсутствующего id: ожидалось false без ошибки")
	}

	// Id не переиспользуется после удаления
	it3 := store.Create(model.Item{Name: "Ключи", Status: model.ItemLost})
	if it3.ID != 3 {
		t.Errorf("id после удаления не должен переиспользоваться: ожидалось 3, получено %d", it3.ID)
	}
}

// TestMemoryItemStore_ListOrder проверяет порядок вставки в List.
func TestMemoryItemStore_ListOrder(t *testing.T) {
	store := NewMemoryItemStore()
	names := []string{"первая", "вторая", "третья"}
	for _, name := range names {
		store.Create(model.Item{Name: name, Status: model.ItemLost})
	}

	list := store.List()
	if len(list) != len(names) {
		t.Fatalf("ожидалось %d вещей, получено %d", len(names), len(list))
	}
	for i, it := range list {
		if it.Name != names[i] {
			t.Errorf("позиция %d: ожидалось %q, получено %q", i, names[i], it.Name)
		}
		if it.ID != int64(i+1) {
			t.Errorf("позиция %d: ожидался id %d, получен %d", i, i+1, it.ID)
		}
	}
}

// TestMemoryItemStore_ConcurrentCreate проверяет уникальность id
// при конкурентном создании.
func TestMemoryItemStore_ConcurrentCreate(t *testing.T) {
	const n = 500

	store := NewMemoryItemStore()

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Create(model.Item{Name: "вещь", Status: model.ItemLost})
		}()
	}
	wg.Wait()

	list := store.List()
	if len(list) != n {
		t.Fatalf("ожидалось %d вещей, получено %d", n, len(list))
	}

	seen := make(map[int64]bool, n)
	for _, it := range list {
		if it.ID < 1 || it.ID > n {
			t.Errorf("id %d вне диапазона 1..%d", it.ID, n)
		}
		if seen[it.ID] {
			t.Errorf("id %d выдан дважды", it.ID)
		}
		seen[it.ID] = true
	}
}

// TestMemoryRequestStore_CRUD проверяет создание и обновление заявок.
func TestMemoryRequestStore_CRUD(t *testing.T) {
	store := NewMemoryRequestStore()

	r := store.Create(model.Request{ItemID: 1, UserID: 2, Status: model.RequestPending})
	if r.ID != 1 {
		t.Fatalf("первый id: ожидалось 1, получено %d", r.ID)
	}

	r.Status = model.RequestApproved
	if err := store.Update(r); err != nil {
		t.Fatalf("Update: неожиданная ошибка: %v", err)
	}
	if got := store.Get(1); got.Status != model.RequestApproved {
		t.Errorf("статус: ожидалось APPROVED, получено %q", got.Status)
	}

	if err := store.Update(&model.Request{ID: 42}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(42): ожидалась ErrNotFound, получено %v", err)
	}

	// Snapshot-изоляция
	snapshot := store.List()
	snapshot[0].Status = model.RequestRejected
	if store.Get(1).Status != model.RequestApproved {
		t.Error("изменение snapshot не должно затрагивать таблицу")
	}
}
