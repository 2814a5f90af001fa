package document

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Upload(ctx context.Context, userID int, req UploadRequest) (*Document, error)
	List(ctx context.Context, userID int, category string) (ListResponse, error)
	Get(ctx context.Context, userID int, docID string) (*Document, error)
	Update(ctx context.Context, userID int, docID string, upd UpdateRequest) error
	Delete(ctx context.Context, userID int, docID string) error
	Search(ctx context.Context, userID int, query string) ([]Document, error)
	ListUserFiles(ctx context.Context, userID int) ([]FileInfo, error)
	StorageUsage(ctx context.Context, userID int) (UsageResponse, error)
}

// Service is a pass-through adapter over the object store and the metadata
// repository. Every operation is a single attempt: failures are translated
// into the closed error catalog and surfaced immediately, no retries.
type Service struct {
	repo  Repository
	store ObjectStore
	log   *slog.Logger
}

func NewService(repo Repository, store ObjectStore, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		store: store,
		log:   log,
	}
}

// StorageKey namespaces blobs by owner and upload timestamp, with a random
// suffix so two same-named uploads never collide.
func StorageKey(userID int, name string) string {
	return fmt.Sprintf("users/%d/%d_%s_%s", userID, time.Now().Unix(), uuid.NewString()[:8], name)
}

func userPrefix(userID int) string {
	return fmt.Sprintf("users/%d/", userID)
}

func (s *Service) Upload(ctx context.Context, userID int, req UploadRequest) (*Document, error) {
	if req.Name == "" {
		return nil, NewError(CodeUnknown, fmt.Errorf("empty file name"))
	}

	key := StorageKey(userID, req.Name)

	if err := s.store.Put(ctx, key, req.Data, req.ContentType); err != nil {
		s.log.Error("blob upload failed", "user_id", userID, "key", key, "error", err)
		return nil, err
	}

	url, err := s.store.PresignGet(ctx, key)
	if err != nil {
		s.log.Error("presign failed", "key", key, "error", err)
		return nil, err
	}

	doc := &Document{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		ContentType: req.ContentType,
		Size:        int64(len(req.Data)),
		Category:    req.Category,
		Tags:        req.Tags,
		StorageKey:  key,
		URL:         url,
		UploadedAt:  time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		s.log.Error("metadata insert failed", "doc_id", doc.ID, "error", err)
		return nil, err
	}

	return doc, nil
}

func (s *Service) List(ctx context.Context, userID int, category string) (ListResponse, error) {
	docs, err := s.repo.List(ctx, userID, category)
	if err != nil {
		return ListResponse{}, err
	}
	return ListResponse{Documents: docs, Count: len(docs)}, nil
}

// Get возвращает метаданные со свежей presigned-ссылкой на скачивание.
func (s *Service) Get(ctx context.Context, userID int, docID string) (*Document, error) {
	doc, err := s.repo.Get(ctx, userID, docID)
	if err != nil {
		return nil, err
	}

	url, err := s.store.PresignGet(ctx, doc.StorageKey)
	if err != nil {
		return nil, err
	}
	doc.URL = url

	return doc, nil
}

func (s *Service) Update(ctx context.Context, userID int, docID string, upd UpdateRequest) error {
	return s.repo.Update(ctx, userID, docID, upd)
}

// Delete removes the metadata record only. The stored blob is kept: the key
// stays reachable through ListUserFiles. Known limitation carried over from
// the original behavior.
func (s *Service) Delete(ctx context.Context, userID int, docID string) error {
	return s.repo.Delete(ctx, userID, docID)
}

func (s *Service) Search(ctx context.Context, userID int, query string) ([]Document, error) {
	return s.repo.Search(ctx, userID, query)
}

func (s *Service) ListUserFiles(ctx context.Context, userID int) ([]FileInfo, error) {
	return s.store.List(ctx, userPrefix(userID))
}

func (s *Service) StorageUsage(ctx context.Context, userID int) (UsageResponse, error) {
	files, err := s.store.List(ctx, userPrefix(userID))
	if err != nil {
		return UsageResponse{}, err
	}

	var total int64
	for _, f := range files {
		total += f.Size
	}

	return UsageResponse{Files: files, TotalBytes: total}, nil
}
