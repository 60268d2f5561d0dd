// auth.go — middleware проверки сессионных токенов.
// Извлекает Bearer token из заголовка Authorization, проверяет его
// через SessionIssuer и помещает Principal в контекст запроса.
//
// По умолчанию не подключается: API реестра исторически не проверяет
// токены на CRUD endpoints. Включается флагом LF_AUTH_REQUIRED.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	apierrors "github.com/arturkryukov/lostfound/internal/api/errors"
	"github.com/arturkryukov/lostfound/internal/auth"
)

// ContextKeyPrincipal — ключ для Principal в контексте запроса.
const ContextKeyPrincipal contextKey = "principal"

// SessionAuth — middleware аутентификации по сессионному токену.
type SessionAuth struct {
	issuer auth.SessionIssuer
	logger *slog.Logger
}

// NewSessionAuth создаёт middleware с указанным issuer.
func NewSessionAuth(issuer auth.SessionIssuer, logger *slog.Logger) *SessionAuth {
	return &SessionAuth{
		issuer: issuer,
		logger: logger.With(slog.String("component", "session_auth")),
	}
}

// Middleware возвращает HTTP middleware для проверки токена.
// Невалидный или отсутствующий токен — 401.
func (a *SessionAuth) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apierrors.Unauthorized(w, "Отсутствует заголовок Authorization")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				apierrors.Unauthorized(w, "Неверный формат Authorization: ожидается Bearer <token>")
				return
			}

			tokenString := strings.TrimSpace(parts[1])
			if tokenString == "" {
				apierrors.Unauthorized(w, "Пустой Bearer token")
				return
			}

			principal, err := a.issuer.Verify(tokenString)
			if err != nil {
				a.logger.Debug("Проверка токена не пройдена",
					slog.String("error", err.Error()),
					slog.String("remote_addr", r.RemoteAddr),
				)
				apierrors.Unauthorized(w, "Невалидный или просроченный токен")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyPrincipal, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithExclusions оборачивает middleware, пропуская указанные пути.
// Запросы к путям, начинающимся с любого из excludePrefixes,
// проходят без проверки токена (signup, signin, health, metrics).
func WithExclusions(mw func(http.Handler) http.Handler, excludePrefixes ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, prefix := range excludePrefixes {
				if strings.HasPrefix(r.URL.Path, prefix) {
					next.ServeHTTP(w, r)
					return
				}
			}

			mw(next).ServeHTTP(w, r)
		})
	}
}

// PrincipalFromContext извлекает Principal из контекста запроса.
// Возвращает nil, если аутентификация не выполнялась.
func PrincipalFromContext(ctx context.Context) *auth.Principal {
	p, _ := ctx.Value(ContextKeyPrincipal).(*auth.Principal)
	return p
}
