// auth.go — HTTP-обработчики регистрации и входа.
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	apierrors "github.com/arturkryukov/lostfound/internal/api/errors"
	"github.com/arturkryukov/lostfound/internal/api/middleware"
	"github.com/arturkryukov/lostfound/internal/service"
)

// AuthHandler — обработчик endpoints /api/signup и /api/signin.
type AuthHandler struct {
	authSvc *service.AuthService
}

// NewAuthHandler создаёт обработчик аутентификации.
func NewAuthHandler(authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// authRequest — тело запросов signup и signin.
type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// signUpResponse — тело ответа успешной регистрации.
type signUpResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// signInResponse — тело ответа успешного входа.
type signInResponse struct {
	Token string `json:"token"`
}

// SignUp обрабатывает POST /api/signup.
// Дубликат username — 400 CONFLICT, id при этом не выделяется.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := decodeJSON(r, &req); err != nil {
		apierrors.ValidationError(w, err.Error())
		return
	}

	u, err := h.authSvc.SignUp(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			middleware.OperationsTotal.WithLabelValues("signup", "conflict").Inc()
			apierrors.Conflict(w, "Username уже существует")
			return
		}
		apierrors.InternalError(w, "Ошибка регистрации пользователя")
		return
	}

	middleware.OperationsTotal.WithLabelValues("signup", "success").Inc()
	middleware.UsersTotal.Inc()

	writeJSON(w, http.StatusOK, signUpResponse{
		Message: fmt.Sprintf("Пользователь зарегистрирован с ID %d", u.ID),
		ID:      u.ID,
	})
}

// SignIn обрабатывает POST /api/signin.
// Неверные учётные данные — 401 UNAUTHORIZED.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := decodeJSON(r, &req); err != nil {
		apierrors.ValidationError(w, err.Error())
		return
	}

	token, err := h.authSvc.SignIn(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			middleware.OperationsTotal.WithLabelValues("signin", "unauthorized").Inc()
			apierrors.Unauthorized(w, "Неверные учётные данные")
			return
		}
		apierrors.InternalError(w, "Ошибка выпуска токена")
		return
	}

	middleware.OperationsTotal.WithLabelValues("signin", "success").Inc()

	writeJSON(w, http.StatusOK, signInResponse{Token: token})
}
