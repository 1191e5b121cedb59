// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	ErrInvalidChannelMode = errors.New("invalid channel mode")
)
