package admin

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) storageCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-storage-check",
		Method:      http.MethodGet,
		Path:        "/api/v1/admin/storage/check",
		Summary:     "Проверка связности с хранилищем",
		Description: "Выполняет пробный запрос к бакету объектного хранилища.",
		Tags:        []string{"admin"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteTestUsersOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-delete-test-users",
		Method:      http.MethodDelete,
		Path:        "/api/v1/admin/test-users",
		Summary:     "Удалить тестовых пользователей",
		Description: "Удаляет пользователей из TEST_USER_IDS вместе с их сессиями и документами.",
		Tags:        []string{"admin"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
