package document

type UploadRequest struct {
	Name        string   `json:"name"`
	ContentType string   `json:"content_type"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Data        []byte   `json:"-"`
}

// UpdateRequest — частичное обновление: nil-поля не трогаются.
type UpdateRequest struct {
	Name     *string   `json:"name,omitempty"`
	Category *string   `json:"category,omitempty"`
	Tags     *[]string `json:"tags,omitempty"`
	Starred  *bool     `json:"starred,omitempty"`
}

type ListResponse struct {
	Documents []Document `json:"documents"`
	Count     int        `json:"count"`
}

type UsageResponse struct {
	Files      []FileInfo `json:"files"`
	TotalBytes int64      `json:"total_bytes"`
}
