package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrNotPCM               = errors.New("not linear PCM")
	ErrUnsupportedWavChunks = errors.New("unsupported WAV chunks")
)
