package game

import "errors"

var (
	ErrAlreadyMarked     = errors.New("square already marked")
	ErrRowOutOfRange     = errors.New("cannot represent rows past 'Z'")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)
