package catalog

import "errors"

var (
	ErrAPINotFound = errors.New("api not found")
	ErrInvalidType = errors.New("invalid api type")
)
