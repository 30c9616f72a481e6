package mcwire

import (
	"errors"
	"fmt"
)

var ErrTooBig = errors.New("mcwire: varint exceeds its bit width")

// TooBigError reports a varint whose continuation bytes run past the
// target width without terminating. Partial holds the bits accumulated
// before the limit was hit and Len the input available at the time, so
// callers can log what the peer actually sent.
type TooBigError struct {
	Bits    int
	Partial int64
	Len     int
}

func (e *TooBigError) Error() string {
	return fmt.Sprintf("mcwire: varint exceeds %d bits (partial value %d, %d bytes of input)", e.Bits, e.Partial, e.Len)
}

func (e *TooBigError) Unwrap() error { return ErrTooBig }
