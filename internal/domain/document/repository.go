package document

import "context"

type Repository interface {
	Create(ctx context.Context, doc *Document) error
	Get(ctx context.Context, userID int, docID string) (*Document, error)
	List(ctx context.Context, userID int, category string) ([]Document, error)
	Update(ctx context.Context, userID int, docID string, upd UpdateRequest) error
	Delete(ctx context.Context, userID int, docID string) error
	Search(ctx context.Context, userID int, query string) ([]Document, error)
	DeleteAllForUser(ctx context.Context, userID int) error
}

// ObjectStore is the blob side of the service: raw bytes in, download URLs
// out. Implemented by the S3 adapter in internal/infrastructure/blob.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	PresignGet(ctx context.Context, key string) (string, error)
	List(ctx context.Context, prefix string) ([]FileInfo, error)
	Delete(ctx context.Context, key string) error
}
