package renderer

import "errors"

var (
	ErrInvalidConfig = errors.New("renderer: invalid configuration")
	ErrNoWorld       = errors.New("renderer: no world defined")
	ErrNoSky         = errors.New("renderer: no sky defined")
)
