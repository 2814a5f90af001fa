package document

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, doc *Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockRepository) Get(ctx context.Context, userID int, docID string) (*Document, error) {
	args := m.Called(ctx, userID, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Document), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, userID int, category string) ([]Document, error) {
	args := m.Called(ctx, userID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Document), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, userID int, docID string, upd UpdateRequest) error {
	args := m.Called(ctx, userID, docID, upd)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, userID int, docID string) error {
	args := m.Called(ctx, userID, docID)
	return args.Error(0)
}

func (m *MockRepository) Search(ctx context.Context, userID int, query string) ([]Document, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Document), args.Error(1)
}

func (m *MockRepository) DeleteAllForUser(ctx context.Context, userID int) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	args := m.Called(ctx, key, data, contentType)
	return args.Error(0)
}

func (m *MockObjectStore) PresignGet(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStore) List(ctx context.Context, prefix string) ([]FileInfo, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]FileInfo), args.Error(1)
}

func (m *MockObjectStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func newTestService(repo Repository, store ObjectStore) *Service {
	return NewService(repo, store, slog.Default())
}

func TestService_Upload(t *testing.T) {
	repo := new(MockRepository)
	store := new(MockObjectStore)
	service := newTestService(repo, store)

	data := []byte("file contents")

	store.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "users/7/") && strings.HasSuffix(key, "_report.pdf")
	}), data, "application/pdf").Return(nil)
	store.On("PresignGet", mock.Anything, mock.AnythingOfType("string")).
		Return("https://s3.local/presigned/report.pdf", nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(doc *Document) bool {
		return doc.UserID == 7 && doc.Name == "report.pdf" &&
			doc.Size == int64(len(data)) && doc.ID != "" && doc.StorageKey != ""
	})).Return(nil)

	doc, err := service.Upload(context.Background(), 7, UploadRequest{
		Name:        "report.pdf",
		ContentType: "application/pdf",
		Category:    "reports",
		Tags:        []string{"q3", "finance"},
		Data:        data,
	})

	require.NoError(t, err)
	assert.Equal(t, "https://s3.local/presigned/report.pdf", doc.URL)
	assert.Equal(t, "reports", doc.Category)

	repo.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestService_Upload_EmptyName(t *testing.T) {
	repo := new(MockRepository)
	store := new(MockObjectStore)
	service := newTestService(repo, store)

	_, err := service.Upload(context.Background(), 7, UploadRequest{})
	require.Error(t, err)
	store.AssertNotCalled(t, "Put")
}

func TestService_Upload_BlobFailureIsSurfacedOnce(t *testing.T) {
	repo := new(MockRepository)
	store := new(MockObjectStore)
	service := newTestService(repo, store)

	blobErr := NewError(CodeStorageUnauthorized, errors.New("AccessDenied"))
	store.On("Put", mock.Anything, mock.AnythingOfType("string"), mock.Anything, mock.Anything).
		Return(blobErr).Once()

	_, err := service.Upload(context.Background(), 7, UploadRequest{Name: "a.txt", Data: []byte("x")})
	require.Error(t, err)
	assert.Equal(t, CodeStorageUnauthorized, CodeOf(err))

	// Ровно одна попытка, без ретраев.
	store.AssertNumberOfCalls(t, "Put", 1)
	repo.AssertNotCalled(t, "Create")
}

func TestService_Get_RefreshesURL(t *testing.T) {
	repo := new(MockRepository)
	store := new(MockObjectStore)
	service := newTestService(repo, store)

	repo.On("Get", mock.Anything, 7, "doc-1").Return(&Document{
		ID: "doc-1", UserID: 7, StorageKey: "users/7/100_ab_a.txt",
	}, nil)
	store.On("PresignGet", mock.Anything, "users/7/100_ab_a.txt").
		Return("https://s3.local/fresh", nil)

	doc, err := service.Get(context.Background(), 7, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "https://s3.local/fresh", doc.URL)
}

func TestService_Get_NotFound(t *testing.T) {
	repo := new(MockRepository)
	store := new(MockObjectStore)
	service := newTestService(repo, store)

	repo.On("Get", mock.Anything, 7, "ghost").
		Return(nil, NewError(CodeNotFound, ErrNotFound))

	_, err := service.Get(context.Background(), 7, "ghost")
	require.Error(t, err)
	assert.Equal(t, CodeNotFound, CodeOf(err))
	assert.Equal(t, "Document not found", err.Error())
	store.AssertNotCalled(t, "PresignGet")
}

func TestService_List(t *testing.T) {
	repo := new(MockRepository)
	store := new(MockObjectStore)
	service := newTestService(repo, store)

	docs := []Document{{ID: "1"}, {ID: "2"}}
	repo.On("List", mock.Anything, 7, "reports").Return(docs, nil)

	resp, err := service.List(context.Background(), 7, "reports")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, docs, resp.Documents)
}

func TestService_Delete_DoesNotTouchBlob(t *testing.T) {
	repo := new(MockRepository)
	store := new(MockObjectStore)
	service := newTestService(repo, store)

	repo.On("Delete", mock.Anything, 7, "doc-1").Return(nil)

	require.NoError(t, service.Delete(context.Background(), 7, "doc-1"))
	store.AssertNotCalled(t, "Delete")
}

func TestService_StorageUsage(t *testing.T) {
	repo := new(MockRepository)
	store := new(MockObjectStore)
	service := newTestService(repo, store)

	store.On("List", mock.Anything, "users/7/").Return([]FileInfo{
		{Key: "users/7/1_a.txt", Size: 100},
		{Key: "users/7/2_b.pdf", Size: 250},
	}, nil)

	usage, err := service.StorageUsage(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(350), usage.TotalBytes)
	assert.Len(t, usage.Files, 2)
}

func TestErrorCatalog(t *testing.T) {
	tests := []struct {
		code    Code
		message string
	}{
		{CodePermissionDenied, "You do not have permission to access documents"},
		{CodeUnavailable, "Service temporarily unavailable. Please try again"},
		{CodeUnauthenticated, "Please sign in to continue"},
		{CodeQuotaExceeded, "Storage quota exceeded. Please free up space"},
		{CodeNotFound, "Document not found"},
		{CodeStorageUnauthorized, "You are not authorized to access this file"},
		{CodeStorageObjectNotFound, "File not found in storage"},
		{CodeStorageCanceled, "The operation was canceled"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := NewError(tt.code, errors.New("raw platform error"))
			// Пользователь видит фиксированную фразу, не сырую ошибку платформы.
			assert.Equal(t, tt.message, err.Error())
			assert.NotContains(t, err.Error(), "raw platform")
		})
	}
}

func TestNewError_UnknownCodeFallsBack(t *testing.T) {
	err := NewError(Code("something-new"), errors.New("boom"))
	assert.Equal(t, CodeUnknown, err.Code)
	assert.Equal(t, "An unexpected error occurred. Please try again", err.Error())
}

func TestCodeOf_ForeignError(t *testing.T) {
	assert.Equal(t, CodeUnknown, CodeOf(errors.New("plain")))
}
