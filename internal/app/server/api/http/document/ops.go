package document

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) uploadOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-upload",
		Method:      http.MethodPost,
		Path:        "/api/v1/documents",
		Summary:     "Загрузить документ",
		Description: "Загружает файл в хранилище и создает запись с метаданными.",
		Tags:        []string{"documents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/documents",
		Summary:     "Список документов пользователя",
		Description: "Возвращает документы владельца, свежие сверху. Опционально фильтрует по категории.",
		Tags:        []string{"documents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-find",
		Method:      http.MethodGet,
		Path:        "/api/v1/documents/{id}",
		Summary:     "Получить документ",
		Tags:        []string{"documents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-update",
		Method:      http.MethodPatch,
		Path:        "/api/v1/documents/{id}",
		Summary:     "Частично обновить документ",
		Description: "Обновляет имя, категорию, теги или отметку. Пропущенные поля не меняются.",
		Tags:        []string{"documents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-delete",
		Method:      http.MethodDelete,
		Path:        "/api/v1/documents/{id}",
		Summary:     "Удалить документ",
		Description: "Удаляет только метаданные; файл в хранилище остается.",
		Tags:        []string{"documents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) searchOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-search",
		Method:      http.MethodGet,
		Path:        "/api/v1/documents/search",
		Summary:     "Поиск по имени и тегам",
		Tags:        []string{"documents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) usageOp() huma.Operation {
	return huma.Operation{
		OperationID: "storage-usage",
		Method:      http.MethodGet,
		Path:        "/api/v1/storage/usage",
		Summary:     "Использование хранилища",
		Description: "Перечисляет файлы пользователя в хранилище и суммирует их размер.",
		Tags:        []string{"documents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
