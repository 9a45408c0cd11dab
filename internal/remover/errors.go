package remover

import "errors"

var (
	// ErrInvalidImage is returned for buffers with zero width or height.
	ErrInvalidImage = errors.New("invalid image: zero width or height")

	// ErrInvalidThreshold is returned for thresholds below 1.
	ErrInvalidThreshold = errors.New("invalid threshold: must be >= 1")
)
