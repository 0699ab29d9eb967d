// Package apperror defines the error taxonomy shared by every feature.
//
// A request either finds nothing at the provider (ErrNotFound) or fails for
// any other reason. Transport handlers map the former to 404 and everything
// else to 500.
package apperror

import "errors"

// ErrNotFound is returned by usecases when the provider answered with an
// empty dataset.
var ErrNotFound = errors.New("not found")

// IsNotFound reports whether err is, or wraps, ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
