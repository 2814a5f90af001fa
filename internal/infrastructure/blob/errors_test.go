package blob

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"docvault/internal/domain/document"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

func apiError(code string) error {
	return &smithy.GenericAPIError{Code: code, Message: "raw platform message"}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected document.Code
	}{
		{"access denied", apiError("AccessDenied"), document.CodeStorageUnauthorized},
		{"bad access key", apiError("InvalidAccessKeyId"), document.CodeStorageUnauthorized},
		{"missing key", apiError("NoSuchKey"), document.CodeStorageObjectNotFound},
		{"missing bucket", apiError("NoSuchBucket"), document.CodeStorageObjectNotFound},
		{"canceled", apiError("RequestCanceled"), document.CodeStorageCanceled},
		{"slow down", apiError("SlowDown"), document.CodeUnavailable},
		{"internal", apiError("InternalError"), document.CodeUnavailable},
		{"too large", apiError("EntityTooLarge"), document.CodeQuotaExceeded},
		{"unmapped code", apiError("WeirdNewCode"), document.CodeUnknown},
		{"plain error", errors.New("dial tcp: refused"), document.CodeUnknown},
		{"wrapped api error", fmt.Errorf("put: %w", apiError("AccessDenied")), document.CodeStorageUnauthorized},
		{"context canceled", context.Canceled, document.CodeStorageCanceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapError(tt.err)
			assert.Equal(t, tt.expected, document.CodeOf(mapped))
			// Сырой текст ошибки платформы не должен попадать в сообщение.
			assert.NotContains(t, mapped.Error(), "raw platform message")
		})
	}
}

func TestMapError_Nil(t *testing.T) {
	assert.NoError(t, mapError(nil))
}
