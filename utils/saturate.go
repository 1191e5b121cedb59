// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Saturate16 clamps x into the signed 16-bit range [-32768, 32767].
func Saturate16(x int) int16 {
	if x > math.MaxInt16 {
		return math.MaxInt16
	}

	if x < math.MinInt16 {
		return math.MinInt16
	}

	return int16(x)
}
