package document

import "time"

type Document struct {
	ID          string    `json:"id"`
	UserID      int       `json:"user_id"`
	Name        string    `json:"name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Category    string    `json:"category,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Starred     bool      `json:"starred"`
	StorageKey  string    `json:"-"`
	URL         string    `json:"url,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FileInfo описывает объект в хранилище без метаданных из БД.
type FileInfo struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
}
