package ingest

import "errors"

var (
	// ErrUnsupportedMediaType means the Content-Type was neither JSON nor
	// form encoded.
	ErrUnsupportedMediaType = errors.New("content-type must be application/json, multipart/form-data, or application/x-www-form-urlencoded")

	// ErrMissingImage means a form-encoded event creation carried no image
	// file.
	ErrMissingImage = errors.New("image file is required")

	// ErrUploadFailed wraps an upload collaborator failure; the whole
	// request aborts, nothing is persisted.
	ErrUploadFailed = errors.New("image upload failed")

	// ErrInvalidInput covers malformed bodies and field values.
	ErrInvalidInput = errors.New("invalid input")
)
