package credential

import "errors"

var (
	ErrKeyNotFound     = errors.New("api key not found")
	ErrInvalidProvider = errors.New("invalid provider")
)
