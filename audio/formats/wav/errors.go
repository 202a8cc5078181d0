package wav

import "errors"

var (
	ErrNotWAV            = errors.New("not a WAV file")
	ErrUnsupportedLayout = errors.New("unsupported WAV layout")
)
