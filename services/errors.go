package services

import (
	"errors"

	"guest-admin/repositories"
	"guest-admin/validation"
)

var (
	ErrNotFound      = repositories.ErrNotFound
	ErrGuestNotFound = errors.New("guest not found")

	// ErrSaleSyncFailed means the appointment change was stored but the
	// linked sale could not be brought in line with it.
	ErrSaleSyncFailed  = errors.New("appointment saved but sale sync failed")
	ErrUnknownItemType = errors.New("unknown calendar item type")
)

// ValidationErrors extracts field errors from err, if it carries any.
func ValidationErrors(err error) (validation.Errors, bool) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}
