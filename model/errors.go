package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when a world is requested with a zero width or height
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrInvalidProbability is returned for a random policy outside [0, 1]
	ErrInvalidProbability = errors.New("invalid probability")
)
