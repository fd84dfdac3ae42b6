package terrain

import "errors"

var (
	// ErrInvalidConfiguration reports parameters rejected before any field
	// is touched.
	ErrInvalidConfiguration = errors.New("terrain: invalid configuration")
	// ErrUnsupportedNoiseType reports a NoiseType without a handler.
	ErrUnsupportedNoiseType = errors.New("terrain: unsupported noise type")
	// ErrUnsupportedLandformShape reports a Shape without a handler.
	ErrUnsupportedLandformShape = errors.New("terrain: unsupported landform shape")
)
