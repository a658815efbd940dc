package squares

import "errors"

var (
	// ErrSurfaceUnavailable is returned by Mount when the host cannot provide
	// a drawing surface. The background then renders nothing and registers no
	// listeners.
	ErrSurfaceUnavailable = errors.New("squares: drawing surface unavailable")

	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("squares: invalid config")

	// ErrAlreadyMounted is returned by Mount on a background that has not
	// been unmounted yet.
	ErrAlreadyMounted = errors.New("squares: already mounted")
)
