package user

import (
	"context"
	"errors"

	"docvault/internal/domain/session"
	"docvault/internal/domain/user"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    user.Servicer
	session    session.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, session session.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		session:    session,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	userID, err := h.service.Register(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		if errors.Is(err, user.ErrAlreadyExists) {
			return nil, huma.Error409Conflict("An account with this email already exists")
		}
		if errors.Is(err, user.ErrInvalidInput) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return &registerOutput{
			Body: RegisterResponse{Status: "Error", Error: err.Error()},
		}, nil
	}

	return &registerOutput{
		Body: RegisterResponse{ID: userID, Status: "Ok"},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return &loginOutput{
			Body: LoginResponse{
				Status: "Error",
				Error:  "Invalid credentials",
			},
		}, nil
	}

	token, err := h.session.Create(ctx, u.ID)
	if err != nil {
		h.log.Error("create session failed", "user_id", u.ID, "error", err)
		return &loginOutput{
			Body: LoginResponse{
				Status: "Error",
				Error:  "Could not create session",
			},
		}, nil
	}

	return &loginOutput{
		Body: LoginResponse{
			Token:  token,
			Status: "Ok",
		},
	}, nil
}

// logout отзывает сессию токена из заголовка. Невалидный токен не ошибка:
// клиенту в любом случае больше нечего отзывать.
func (h *Handler) logout(ctx context.Context, input *logoutInput) (*logoutOutput, error) {
	token := input.Authorization
	if len(token) > 7 && token[:7] == "Bearer " {
		token = token[7:]
	}

	if err := h.session.Revoke(ctx, token); err != nil {
		h.log.Warn("session revoke failed", "error", err)
	}

	return &logoutOutput{
		Body: LogoutResponse{Status: "Ok"},
	}, nil
}
