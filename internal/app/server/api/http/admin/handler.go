package admin

import (
	"context"
	"crypto/subtle"

	"docvault/internal/app/server/config"
	"docvault/internal/domain/user"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Prober проверяет связность с объектным хранилищем.
type Prober interface {
	Probe(ctx context.Context) (bucketName string, err error)
}

type Handler struct {
	users      user.Servicer
	prober     Prober
	cfg        *config.Config
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(users user.Servicer, prober Prober, cfg *config.Config, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		users:      users,
		prober:     prober,
		cfg:        cfg,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.storageCheckOp(), h.storageCheck)
	huma.Register(api, h.deleteTestUsersOp(), h.deleteTestUsers)
}

// authorize сверяет админский токен. Пустой ADMIN_TOKEN в конфигурации
// полностью отключает админские операции.
func (h *Handler) authorize(header string) error {
	if h.cfg.Admin.Token == "" {
		return huma.Error404NotFound("Not found")
	}

	token := header
	if len(token) > 7 && token[:7] == "Bearer " {
		token = token[7:]
	}

	if subtle.ConstantTimeCompare([]byte(token), []byte(h.cfg.Admin.Token)) != 1 {
		return huma.Error401Unauthorized("Unauthorized")
	}
	return nil
}

func (h *Handler) storageCheck(ctx context.Context, input *storageCheckInput) (*storageCheckOutput, error) {
	if err := h.authorize(input.Authorization); err != nil {
		return nil, err
	}

	bucket, err := h.prober.Probe(ctx)
	if err != nil {
		h.log.Error("storage probe failed", "error", err)
		return &storageCheckOutput{
			Body: StorageCheckResponse{
				Success: false,
				Error:   err.Error(),
			},
		}, nil
	}

	return &storageCheckOutput{
		Body: StorageCheckResponse{
			Success:    true,
			Message:    "Storage connection is healthy",
			BucketName: bucket,
		},
	}, nil
}

// deleteTestUsers удаляет пользователей, перечисленных в TEST_USER_IDS.
// Каждый пользователь обрабатывается независимо: одна неудача не
// останавливает остальных.
func (h *Handler) deleteTestUsers(ctx context.Context, input *deleteTestUsersInput) (*deleteTestUsersOutput, error) {
	if err := h.authorize(input.Authorization); err != nil {
		return nil, err
	}

	ids := h.cfg.TestUsers()
	if len(ids) == 0 {
		return &deleteTestUsersOutput{
			Body: DeleteTestUsersResponse{Message: "TEST_USER_IDS is empty, nothing to delete"},
		}, nil
	}

	var deleted, failed int
	for _, email := range ids {
		if err := h.users.DeleteByEmail(ctx, email); err != nil {
			h.log.Warn("test user deletion failed", "email", email, "error", err)
			failed++
			continue
		}
		deleted++
	}

	h.log.Info("test users cleanup finished", "deleted", deleted, "failed", failed)

	return &deleteTestUsersOutput{
		Body: DeleteTestUsersResponse{
			Deleted: deleted,
			Failed:  failed,
		},
	}, nil
}
