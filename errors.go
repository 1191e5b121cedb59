// SPDX-License-Identifier: EPL-2.0

package stereowav

import "errors"

var (
	// ErrNotStereo means an operation requiring a two-channel input got
	// something else.
	ErrNotStereo = errors.New("input is not stereo")
	// ErrNotMono means an operation requiring a single-channel input got
	// something else.
	ErrNotMono = errors.New("input is not mono")
	// ErrUnsupportedFormat means the input bit depth does not match the
	// requested operation.
	ErrUnsupportedFormat = errors.New("unsupported sample format")
	// ErrHeaderMismatch means two mono inputs disagree on a header field.
	// It is always wrapped with the name of the differing field.
	ErrHeaderMismatch = errors.New("mono inputs do not match")
)
