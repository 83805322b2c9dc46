package services

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors returned by the service layer. Handlers map these to HTTP
// statuses; nothing below the handlers knows about presentation.
var (
	// ErrNotFound means a referenced post, user or group does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden means the caller is authenticated but not entitled.
	// The legacy behavior silently redirected instead of signaling; it is
	// surfaced explicitly here and the boundary decides how to present it.
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthorized means the action requires an authenticated caller.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrValidation means the payload is missing required fields or
	// references an entity that does not resolve. No partial mutation occurs.
	ErrValidation = errors.New("validation failed")
)

// notFound translates gorm's record-not-found into the service taxonomy so
// callers never have to import gorm to classify an error.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
