package blob

import (
	"context"
	"errors"

	"docvault/internal/domain/document"

	"github.com/aws/smithy-go"
)

// mapError resolves an S3 failure into the closed document error catalog.
// Raw SDK errors never cross this boundary.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return document.NewError(document.CodeStorageCanceled, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return document.NewError(document.CodeStorageUnauthorized, err)
		case "NoSuchKey", "NotFound", "NoSuchBucket":
			return document.NewError(document.CodeStorageObjectNotFound, err)
		case "RequestCanceled":
			return document.NewError(document.CodeStorageCanceled, err)
		case "SlowDown", "ServiceUnavailable", "InternalError":
			return document.NewError(document.CodeUnavailable, err)
		case "QuotaExceeded", "EntityTooLarge":
			return document.NewError(document.CodeQuotaExceeded, err)
		}
	}

	return document.NewError(document.CodeUnknown, err)
}
