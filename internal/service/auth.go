// auth.go — регистрация и вход пользователей.
package service

import (
	"errors"
	"log/slog"

	"github.com/arturkryukov/lostfound/internal/auth"
	"github.com/arturkryukov/lostfound/internal/domain/model"
	"github.com/arturkryukov/lostfound/internal/storage/registry"
)

// AuthService — регистрация (signUp) и вход (signIn).
type AuthService struct {
	users  registry.UserStore
	hasher auth.PasswordHasher
	issuer auth.SessionIssuer
	logger *slog.Logger
}

// NewAuthService создаёт сервис аутентификации.
func NewAuthService(
	users registry.UserStore,
	hasher auth.PasswordHasher,
	issuer auth.SessionIssuer,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		issuer: issuer,
		logger: logger.With(slog.String("component", "auth_service")),
	}
}

// SignUp регистрирует нового пользователя с ролью USER.
// Username сравнивается с существующими точным совпадением
// (с учётом регистра). При дубликате возвращает ErrUsernameTaken,
// id при этом не выделяется. Проверок на пустой username нет —
// поведение намеренно разрешительное.
func (s *AuthService) SignUp(username, password string) (*model.User, error) {
	// Хеширование до обращения к таблице: bcrypt CPU-bound,
	// не должен выполняться под блокировкой.
	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	u, err := s.users.Create(model.User{
		Username:       username,
		PasswordDigest: digest,
		Role:           model.RoleUser,
	})
	if err != nil {
		if errors.Is(err, registry.ErrUsernameExists) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	s.logger.Info("Пользователь зарегистрирован",
		slog.Int64("user_id", u.ID),
		slog.String("username", u.Username),
	)

	return u, nil
}

// SignIn проверяет учётные данные и выпускает сессионный токен.
// Возвращает ErrInvalidCredentials, если пользователь не найден
// или пароль не проходит проверку против сохранённого дайджеста.
func (s *AuthService) SignIn(username, password string) (string, error) {
	u := s.users.FindByUsername(username)
	if u == nil || !s.hasher.Verify(password, u.PasswordDigest) {
		return "", ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(u)
	if err != nil {
		return "", err
	}

	s.logger.Info("Пользователь вошёл в систему",
		slog.Int64("user_id", u.ID),
		slog.String("username", u.Username),
	)

	return token, nil
}
