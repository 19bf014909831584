package domain

import "errors"

var (
	ErrPathUnavailable = errors.New("remote path unavailable")
	ErrInvalidRange    = errors.New("invalid meeting range")
)
