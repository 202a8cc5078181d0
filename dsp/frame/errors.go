package frame

import "errors"

// ErrInvalidFrameSize indicates a frame length that is not a positive power
// of two or does not fit the available samples. This is a configuration
// error; retrying without changing the frame length is pointless.
var ErrInvalidFrameSize = errors.New("invalid frame size")
