// SPDX-License-Identifier: EPL-2.0

package pcm

import "github.com/ik5/stereowav/utils"

// Pack32 encodes a 16-bit stereo sample pair as a single unsigned 32-bit
// value: the half-sum (mid) in the high 16 bits and the half-difference
// (side) in the low 16 bits.
//
// Both halves are masked to their low 16 bits. This is two's-complement
// truncation, not saturation: halving two in-range 16-bit values always fits
// in 16 signed bits, so nothing is lost for real input.
func Pack32(left, right int16) uint32 {
	mid := utils.FloorDiv(int(left)+int(right), 2)
	side := utils.FloorDiv(int(left)-int(right), 2)

	return uint32(mid&0xFFFF)<<16 | uint32(side&0xFFFF)
}

// Unpack32 decodes a coded 32-bit sample produced by Pack32 back into a
// 16-bit stereo pair.
//
// The low half is sign-extended before the arithmetic; the high half is taken
// as stored. Each reconstructed channel is saturated into [-32768, 32767],
// which never triggers for values Pack32 produced from in-range input but
// keeps synthetic or corrupted coded streams from wrapping.
func Unpack32(coded uint32) (left, right int16) {
	mid := int(coded >> 16)
	side := int(int16(coded & 0xFFFF))

	left = utils.Saturate16(mid + side)
	right = utils.Saturate16(mid - side)

	return left, right
}
