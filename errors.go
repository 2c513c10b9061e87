package quadra

import "errors"

// ErrInvalidState is returned when an operation's precondition does not
// hold, for example mapping a frame on an image with no texture.
var ErrInvalidState = errors.New("quadra: invalid state")

// ErrFrameNotFound is returned when an atlas has no usable frame under the
// requested name.
var ErrFrameNotFound = errors.New("quadra: atlas frame not found")
