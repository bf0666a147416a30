// Package service implements the admin-panel use-cases on top of the
// in-memory stores. Services validate request payloads, translate store
// errors into typed application errors and log noteworthy transitions.
package service

import (
	"errors"

	appErrors "github.com/harmonylane/studio-admin-api/pkg/errors"

	"github.com/harmonylane/studio-admin-api/internal/store"
)

// translateStoreError maps store sentinels onto the application error
// taxonomy. notFoundMsg names the entity for 404 responses.
func translateStoreError(err error, notFoundMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return appErrors.Clone(appErrors.ErrNotFound, notFoundMsg)
	case errors.Is(err, store.ErrInvalid):
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "store operation failed")
}
