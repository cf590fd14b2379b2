package types

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Directive is the action requested by an inbound message.
type Directive int

const (
	Stop  Directive = 0
	Start Directive = 1
)

func (d Directive) String() string {
	switch d {
	case Start:
		return "start"
	case Stop:
		return "stop"
	default:
		return "unknown(" + strconv.Itoa(int(d)) + ")"
	}
}

// Valid reports whether the directive is one of Start or Stop.
func (d Directive) Valid() bool {
	return d == Start || d == Stop
}

// ParseAction parses a decoded payload into an integer action without checking its range.
// Surrounding whitespace is ignored. An integer too large for an int is still an integer:
// it is returned clamped, which is never a valid directive.
func ParseAction(payload []byte) (Directive, error) {
	text := strings.TrimSpace(string(payload))
	if text == "" {
		return 0, ErrMissingPayload
	}
	action, err := strconv.Atoi(text)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return Directive(action), nil
		}
		return 0, errors.Wrapf(ErrInvalidPayload, "'%s', expected '1' (start) or '0' (stop)", text)
	}
	return Directive(action), nil
}

// ParseDirective parses a decoded payload into a Start or Stop directive.
func ParseDirective(payload []byte) (Directive, error) {
	d, err := ParseAction(payload)
	if err != nil {
		return 0, err
	}
	if !d.Valid() {
		return 0, errors.Wrapf(ErrUnknownAction, "'%s', expected 1 or 0", strings.TrimSpace(string(payload)))
	}
	return d, nil
}
