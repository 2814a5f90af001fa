package document

import (
	"docvault/internal/domain/document"
)

type uploadInput struct {
	Body uploadRequest
}

type uploadRequest struct {
	Name        string   `json:"name" minLength:"1" doc:"Имя файла"`
	ContentType string   `json:"content_type,omitempty" doc:"MIME-тип файла"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Data        string   `json:"data" doc:"Содержимое файла, base64"`
}

type uploadOutput struct {
	Body uploadResponse
}

type uploadResponse struct {
	Status   string             `json:"status"`
	Message  string             `json:"message,omitempty"`
	Document *document.Document `json:"document,omitempty"`
}

type listInput struct {
	Category string `query:"category" doc:"Фильтр по категории"`
}

type listOutput struct {
	Body document.ListResponse
}

type findInput struct {
	ID string `path:"id" doc:"ID документа"`
}

type findOutput struct {
	Body findResponse
}

type findResponse struct {
	Status   string             `json:"status"`
	Document *document.Document `json:"document,omitempty"`
	Error    string             `json:"error,omitempty"`
}

type updateInput struct {
	ID   string `path:"id" doc:"ID документа"`
	Body document.UpdateRequest
}

type deleteInput struct {
	ID string `path:"id" doc:"ID документа"`
}

type statusOutput struct {
	Body statusResponse
}

type statusResponse struct {
	ID     string `json:"id,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type searchInput struct {
	Query string `query:"q" minLength:"1" doc:"Строка поиска"`
}

type searchOutput struct {
	Body document.ListResponse
}

type usageInput struct{}

type usageOutput struct {
	Body document.UsageResponse
}
