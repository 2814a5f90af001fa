package document

import (
	"context"
	"encoding/base64"
	"testing"

	"docvault/internal/app/server/api/http/middleware/auth"
	"docvault/internal/domain/document"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Upload(ctx context.Context, userID int, req document.UploadRequest) (*document.Document, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Document), args.Error(1)
}

func (m *MockService) List(ctx context.Context, userID int, category string) (document.ListResponse, error) {
	args := m.Called(ctx, userID, category)
	return args.Get(0).(document.ListResponse), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, userID int, docID string) (*document.Document, error) {
	args := m.Called(ctx, userID, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Document), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, userID int, docID string, upd document.UpdateRequest) error {
	args := m.Called(ctx, userID, docID, upd)
	return args.Error(0)
}

func (m *MockService) Delete(ctx context.Context, userID int, docID string) error {
	args := m.Called(ctx, userID, docID)
	return args.Error(0)
}

func (m *MockService) Search(ctx context.Context, userID int, query string) ([]document.Document, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]document.Document), args.Error(1)
}

func (m *MockService) ListUserFiles(ctx context.Context, userID int) ([]document.FileInfo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]document.FileInfo), args.Error(1)
}

func (m *MockService) StorageUsage(ctx context.Context, userID int) (document.UsageResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(document.UsageResponse), args.Error(1)
}

func authedCtx(userID int) context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, userID)
}

func TestHandler_Upload(t *testing.T) {
	service := new(MockService)
	h := NewHandler(service, slog.Default(), nil)

	raw := []byte("file body")
	service.On("Upload", mock.Anything, 7, mock.MatchedBy(func(req document.UploadRequest) bool {
		return req.Name == "a.txt" && string(req.Data) == "file body"
	})).Return(&document.Document{ID: "doc-1", Name: "a.txt"}, nil)

	out, err := h.upload(authedCtx(7), &uploadInput{
		Body: uploadRequest{
			Name: "a.txt",
			Data: base64.StdEncoding.EncodeToString(raw),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Ok", out.Body.Status)
	assert.Equal(t, "doc-1", out.Body.Document.ID)
}

func TestHandler_Upload_Unauthorized(t *testing.T) {
	service := new(MockService)
	h := NewHandler(service, slog.Default(), nil)

	_, err := h.upload(context.Background(), &uploadInput{})
	require.Error(t, err)
	service.AssertNotCalled(t, "Upload")
}

func TestHandler_Upload_BadBase64(t *testing.T) {
	service := new(MockService)
	h := NewHandler(service, slog.Default(), nil)

	_, err := h.upload(authedCtx(7), &uploadInput{
		Body: uploadRequest{Name: "a.txt", Data: "!!! not base64 !!!"},
	})
	require.Error(t, err)
	service.AssertNotCalled(t, "Upload")
}

func TestHandler_Upload_PermissionDeniedMessage(t *testing.T) {
	service := new(MockService)
	h := NewHandler(service, slog.Default(), nil)

	service.On("Upload", mock.Anything, 7, mock.Anything).
		Return(nil, document.NewError(document.CodePermissionDenied, assert.AnError))

	out, err := h.upload(authedCtx(7), &uploadInput{
		Body: uploadRequest{Name: "a.txt", Data: base64.StdEncoding.EncodeToString([]byte("x"))},
	})
	require.Error(t, err)
	// Пользователь получает фиксированную фразу каталога, не сырую ошибку.
	assert.Equal(t, "You do not have permission to access documents", err.Error())
	assert.Equal(t, "Error", out.Body.Status)
}

func TestHandler_List(t *testing.T) {
	service := new(MockService)
	h := NewHandler(service, slog.Default(), nil)

	service.On("List", mock.Anything, 7, "reports").Return(document.ListResponse{
		Documents: []document.Document{{ID: "1"}},
		Count:     1,
	}, nil)

	out, err := h.list(authedCtx(7), &listInput{Category: "reports"})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Body.Count)
}

func TestHandler_Find_NotFound(t *testing.T) {
	service := new(MockService)
	h := NewHandler(service, slog.Default(), nil)

	service.On("Get", mock.Anything, 7, "ghost").
		Return(nil, document.NewError(document.CodeNotFound, document.ErrNotFound))

	out, err := h.find(authedCtx(7), &findInput{ID: "ghost"})
	require.Error(t, err)
	assert.Equal(t, "Error", out.Body.Status)
}

func TestHandler_Update(t *testing.T) {
	service := new(MockService)
	h := NewHandler(service, slog.Default(), nil)

	starred := true
	upd := document.UpdateRequest{Starred: &starred}
	service.On("Update", mock.Anything, 7, "doc-1", upd).Return(nil)

	out, err := h.update(authedCtx(7), &updateInput{ID: "doc-1", Body: upd})
	require.NoError(t, err)
	assert.Equal(t, "Ok", out.Body.Status)
	assert.Equal(t, "doc-1", out.Body.ID)
}

func TestHandler_Delete(t *testing.T) {
	service := new(MockService)
	h := NewHandler(service, slog.Default(), nil)

	service.On("Delete", mock.Anything, 7, "doc-1").Return(nil)

	out, err := h.delete(authedCtx(7), &deleteInput{ID: "doc-1"})
	require.NoError(t, err)
	assert.Equal(t, "Ok", out.Body.Status)
}

func TestHandler_Usage(t *testing.T) {
	service := new(MockService)
	h := NewHandler(service, slog.Default(), nil)

	service.On("StorageUsage", mock.Anything, 7).Return(document.UsageResponse{
		Files:      []document.FileInfo{{Key: "users/7/1_a.txt", Size: 10}},
		TotalBytes: 10,
	}, nil)

	out, err := h.usage(authedCtx(7), &usageInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(10), out.Body.TotalBytes)
}
