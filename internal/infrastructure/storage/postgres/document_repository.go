package postgres

import (
	"context"
	"errors"
	"strings"

	"docvault/internal/domain/document"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/exp/slog"
)

type DocumentRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewDocumentRepository(db *Storage, log *slog.Logger) *DocumentRepository {
	return &DocumentRepository{
		db:  db,
		log: log,
	}
}

// mapDBError резолвит ошибку pgx в закрытый каталог кодов document.
func mapDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return document.NewError(document.CodeNotFound, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "28"): // invalid authorization
			return document.NewError(document.CodePermissionDenied, err)
		case strings.HasPrefix(pgErr.Code, "08"): // connection exception
			return document.NewError(document.CodeUnavailable, err)
		case strings.HasPrefix(pgErr.Code, "53"): // insufficient resources
			return document.NewError(document.CodeQuotaExceeded, err)
		}
	}
	return document.NewError(document.CodeUnknown, err)
}

func (r *DocumentRepository) Create(ctx context.Context, doc *document.Document) error {
	_, err := r.db.Pool().Exec(ctx,
		`INSERT INTO documents
            (id, user_id, name, content_type, size, category, tags, starred, storage_key, uploaded_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		doc.ID, doc.UserID, doc.Name, doc.ContentType, doc.Size,
		doc.Category, doc.Tags, doc.Starred, doc.StorageKey,
		doc.UploadedAt, doc.UpdatedAt)
	return mapDBError(err)
}

func (r *DocumentRepository) Get(ctx context.Context, userID int, docID string) (*document.Document, error) {
	var doc document.Document
	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, user_id, name, content_type, size, category, tags, starred, storage_key, uploaded_at, updated_at
         FROM documents WHERE id = $1 AND user_id = $2`,
		docID, userID).
		Scan(&doc.ID, &doc.UserID, &doc.Name, &doc.ContentType, &doc.Size,
			&doc.Category, &doc.Tags, &doc.Starred, &doc.StorageKey,
			&doc.UploadedAt, &doc.UpdatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	return &doc, nil
}

func (r *DocumentRepository) List(ctx context.Context, userID int, category string) ([]document.Document, error) {
	query := `SELECT id, user_id, name, content_type, size, category, tags, starred, storage_key, uploaded_at, updated_at
              FROM documents WHERE user_id = $1`
	args := []any{userID}

	if category != "" {
		query += ` AND category = $2`
		args = append(args, category)
	}
	query += ` ORDER BY uploaded_at DESC`

	rows, err := r.db.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, mapDBError(err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

func (r *DocumentRepository) Update(ctx context.Context, userID int, docID string, upd document.UpdateRequest) error {
	// Частичное обновление: COALESCE оставляет прежние значения для nil-полей.
	tag, err := r.db.Pool().Exec(ctx,
		`UPDATE documents SET
            name       = COALESCE($3, name),
            category   = COALESCE($4, category),
            tags       = COALESCE($5, tags),
            starred    = COALESCE($6, starred),
            updated_at = NOW()
         WHERE id = $1 AND user_id = $2`,
		docID, userID, upd.Name, upd.Category, upd.Tags, upd.Starred)
	if err != nil {
		return mapDBError(err)
	}
	if tag.RowsAffected() == 0 {
		return document.NewError(document.CodeNotFound, document.ErrNotFound)
	}
	return nil
}

func (r *DocumentRepository) Delete(ctx context.Context, userID int, docID string) error {
	tag, err := r.db.Pool().Exec(ctx,
		`DELETE FROM documents WHERE id = $1 AND user_id = $2`, docID, userID)
	if err != nil {
		return mapDBError(err)
	}
	if tag.RowsAffected() == 0 {
		return document.NewError(document.CodeNotFound, document.ErrNotFound)
	}
	return nil
}

func (r *DocumentRepository) Search(ctx context.Context, userID int, query string) ([]document.Document, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, user_id, name, content_type, size, category, tags, starred, storage_key, uploaded_at, updated_at
         FROM documents
         WHERE user_id = $1 AND (name ILIKE '%' || $2 || '%' OR $2 = ANY(tags))
         ORDER BY uploaded_at DESC`,
		userID, query)
	if err != nil {
		return nil, mapDBError(err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

func (r *DocumentRepository) DeleteAllForUser(ctx context.Context, userID int) error {
	_, err := r.db.Pool().Exec(ctx,
		`DELETE FROM documents WHERE user_id = $1`, userID)
	return mapDBError(err)
}

func scanDocuments(rows pgx.Rows) ([]document.Document, error) {
	var docs []document.Document
	for rows.Next() {
		var doc document.Document
		if err := rows.Scan(&doc.ID, &doc.UserID, &doc.Name, &doc.ContentType,
			&doc.Size, &doc.Category, &doc.Tags, &doc.Starred,
			&doc.StorageKey, &doc.UploadedAt, &doc.UpdatedAt); err != nil {
			return nil, mapDBError(err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, mapDBError(err)
	}
	return docs, nil
}
