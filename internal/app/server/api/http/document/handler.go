package document

import (
	"context"
	"encoding/base64"

	"docvault/internal/app/server/api/http/middleware/auth"
	"docvault/internal/domain/document"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    document.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service document.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.uploadOp(), h.upload)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
	huma.Register(api, h.searchOp(), h.search)
	huma.Register(api, h.usageOp(), h.usage)
}

func (h *Handler) upload(ctx context.Context, input *uploadInput) (*uploadOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	// Декодируем base64 данные
	data, err := base64.StdEncoding.DecodeString(input.Body.Data)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("Invalid base64 data: " + err.Error())
	}

	doc, err := h.service.Upload(ctx, userID, document.UploadRequest{
		Name:        input.Body.Name,
		ContentType: input.Body.ContentType,
		Category:    input.Body.Category,
		Tags:        input.Body.Tags,
		Data:        data,
	})
	if err != nil {
		return &uploadOutput{
			Body: uploadResponse{Status: "Error", Message: err.Error()},
		}, err
	}

	return &uploadOutput{
		Body: uploadResponse{
			Status:   "Ok",
			Document: doc,
		},
	}, nil
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	resp, err := h.service.List(ctx, userID, input.Category)
	if err != nil {
		return nil, err
	}

	return &listOutput{
		Body: resp,
	}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*findOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	doc, err := h.service.Get(ctx, userID, input.ID)
	if err != nil {
		return &findOutput{
			Body: findResponse{
				Status: "Error",
			},
		}, err
	}

	return &findOutput{
		Body: findResponse{
			Status:   "Ok",
			Document: doc,
		},
	}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*statusOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	err := h.service.Update(ctx, userID, input.ID, input.Body)
	if err != nil {
		return &statusOutput{
			Body: statusResponse{
				ID:     input.ID,
				Status: "Error",
			},
		}, err
	}
	return &statusOutput{
		Body: statusResponse{
			ID:     input.ID,
			Status: "Ok",
		},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*statusOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	err := h.service.Delete(ctx, userID, input.ID)
	if err != nil {
		return &statusOutput{
			Body: statusResponse{
				Status: "Error",
			},
		}, err
	}
	return &statusOutput{
		Body: statusResponse{
			ID:     input.ID,
			Status: "Ok",
		},
	}, nil
}

func (h *Handler) search(ctx context.Context, input *searchInput) (*searchOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	docs, err := h.service.Search(ctx, userID, input.Query)
	if err != nil {
		return nil, err
	}

	return &searchOutput{
		Body: document.ListResponse{Documents: docs, Count: len(docs)},
	}, nil
}

func (h *Handler) usage(ctx context.Context, _ *usageInput) (*usageOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	resp, err := h.service.StorageUsage(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usageOutput{
		Body: resp,
	}, nil
}
