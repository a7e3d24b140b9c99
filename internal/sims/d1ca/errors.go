package d1ca

import "errors"

var (
	// ErrInvalidConfiguration is returned when a universe would be built with
	// a zero width or seeded with a malformed row.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrInvalidDirection is returned when a scan direction outside {0,1,2}
	// or not smaller than the width is requested.
	ErrInvalidDirection = errors.New("invalid direction")
)
