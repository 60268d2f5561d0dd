package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// TestNewBcryptHasher проверяет валидацию стоимости bcrypt.
func TestNewBcryptHasher(t *testing.T) {
	tests := []struct {
		cost    int
		wantErr bool
	}{
		{bcrypt.MinCost, false},
		{bcrypt.DefaultCost, false},
		{bcrypt.MaxCost, false},
		{bcrypt.MinCost - 1, true},
		{bcrypt.MaxCost + 1, true},
	}

	for _, tt := range tests {
		_, err := NewBcryptHasher(tt.cost)
		if tt.wantErr && err == nil {
			t.Errorf("NewBcryptHasher(%d): ожидалась ошибка", tt.cost)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("NewBcryptHasher(%d): неожиданная ошибка: %v", tt.cost, err)
		}
	}
}

// TestBcryptHasher_HashVerify проверяет контракт hash/verify.
func TestBcryptHasher_HashVerify(t *testing.T) {
	hasher, err := NewBcryptHasher(bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	digest, err := hasher.Hash("pw1")
	if err != nil {
		t.Fatalf("Hash: неожиданная ошибка: %v", err)
	}
	if digest == "pw1" || !strings.HasPrefix(digest, "$2") {
		t.Errorf("дайджест не похож на bcrypt: %q", digest)
	}

	if !hasher.Verify("pw1", digest) {
		t.Error("Verify с правильным паролем должен вернуть true")
	}
	if hasher.Verify("wrong", digest) {
		t.Error("Verify с неправильным паролем должен вернуть false")
	}
	if hasher.Verify("pw1", "не-дайджест") {
		t.Error("Verify с мусорным дайджестом должен вернуть false")
	}
}

// TestBcryptHasher_UniqueDigests проверяет, что одинаковые пароли
// дают разные дайджесты (соль).
func TestBcryptHasher_UniqueDigests(t *testing.T) {
	hasher, _ := NewBcryptHasher(bcrypt.MinCost)

	d1, _ := hasher.Hash("pw1")
	d2, _ := hasher.Hash("pw1")
	if d1 == d2 {
		t.Error("два хеширования одного пароля не должны совпадать")
	}
}
