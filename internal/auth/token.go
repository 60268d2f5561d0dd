// token.go — выпуск и проверка сессионных токенов.
//
// Контракт SessionIssuer: issue(user) → непрозрачный токен,
// verify(token) → principal или ошибка. Реализация — подписанный
// JWT HS256 вместо неверифицируемой строки-заглушки исходной
// версии сервиса.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/arturkryukov/lostfound/internal/domain/model"
)

// ErrInvalidToken — токен не прошёл проверку подписи или срока действия.
var ErrInvalidToken = errors.New("невалидный или просроченный токен")

// Principal — аутентифицированный вызывающий, извлечённый из токена.
type Principal struct {
	UserID   int64
	Username string
	Role     model.Role
}

// SessionIssuer — выпуск и проверка сессионных токенов.
type SessionIssuer interface {
	Issue(u *model.User) (string, error)
	Verify(token string) (*Principal, error)
}

// sessionClaims — JWT claims сессии Registry Service.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"uid"`
	Role   string `json:"role"`
}

// JWTIssuer — SessionIssuer на подписанных HS256 JWT.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	// now подменяется в тестах
	now func() time.Time
}

// NewJWTIssuer создаёт issuer с указанным секретом и временем жизни токена.
func NewJWTIssuer(secret string, ttl time.Duration) (*JWTIssuer, error) {
	if secret == "" {
		return nil, errors.New("секрет подписи токенов не задан")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("недопустимое время жизни токена: %s", ttl)
	}
	return &JWTIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue выпускает подписанный токен для пользователя.
func (j *JWTIssuer) Issue(u *model.User) (string, error) {
	now := j.now().UTC()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		UserID: u.ID,
		Role:   string(u.Role),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}
	return signed, nil
}

// Verify проверяет подпись и срок действия токена, возвращает Principal.
func (j *JWTIssuer) Verify(tokenString string) (*Principal, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("неожиданный метод подписи: %s", t.Method.Alg())
		}
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &Principal{
		UserID:   claims.UserID,
		Username: claims.Subject,
		Role:     model.Role(claims.Role),
	}, nil
}

var _ SessionIssuer = (*JWTIssuer)(nil)
