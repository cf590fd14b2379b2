package types

import "errors"

var (
	ErrMissingPayload = errors.New("no payload")
	ErrInvalidPayload = errors.New("invalid payload")
	ErrNoInstances    = errors.New("no instances configured")
	ErrInvalidEntry   = errors.New("invalid entry format")
	ErrUnknownAction  = errors.New("unknown action")
)
