package document

import "errors"

// Code is a closed set of failure categories. Platform errors (S3, postgres)
// are resolved into one of these at the adapter boundary and never leak
// upward as opaque driver errors.
type Code string

const (
	CodePermissionDenied      Code = "permission-denied"
	CodeUnavailable           Code = "unavailable"
	CodeUnauthenticated       Code = "unauthenticated"
	CodeQuotaExceeded         Code = "quota-exceeded"
	CodeNotFound              Code = "not-found"
	CodeStorageUnauthorized   Code = "storage/unauthorized"
	CodeStorageObjectNotFound Code = "storage/object-not-found"
	CodeStorageCanceled       Code = "storage/canceled"
	CodeUnknown               Code = "unknown"
)

// userMessages — фиксированный каталог сообщений для пользователя.
var userMessages = map[Code]string{
	CodePermissionDenied:      "You do not have permission to access documents",
	CodeUnavailable:           "Service temporarily unavailable. Please try again",
	CodeUnauthenticated:       "Please sign in to continue",
	CodeQuotaExceeded:         "Storage quota exceeded. Please free up space",
	CodeNotFound:              "Document not found",
	CodeStorageUnauthorized:   "You are not authorized to access this file",
	CodeStorageObjectNotFound: "File not found in storage",
	CodeStorageCanceled:       "The operation was canceled",
	CodeUnknown:               "An unexpected error occurred. Please try again",
}

var ErrNotFound = errors.New("document not found")

// Error carries the resolved code and the underlying cause. Error() returns
// the user-facing message, not the raw platform error string.
type Error struct {
	Code Code
	Err  error
}

func (e *Error) Error() string {
	if msg, ok := userMessages[e.Code]; ok {
		return msg
	}
	return userMessages[CodeUnknown]
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err under the given code, falling back to CodeUnknown for
// codes outside the catalog.
func NewError(code Code, err error) *Error {
	if _, ok := userMessages[code]; !ok {
		code = CodeUnknown
	}
	return &Error{Code: code, Err: err}
}

// CodeOf extracts the resolved code, or CodeUnknown for foreign errors.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeUnknown
}
