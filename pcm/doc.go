// SPDX-License-Identifier: EPL-2.0

// Package pcm implements per-sample arithmetic for channel-domain transforms
// of linear PCM audio.
//
// The package provides two groups of operations:
//
//   - Combine reduces a stereo sample pair to one mono sample using a
//     ChannelMode (left, right, mid, side).
//   - Pack32 and Unpack32 convert between a 16-bit stereo pair and a single
//     32-bit coded sample carrying mid in the high half and side in the low
//     half.
//
// # Division Semantics
//
// Mid and side are half-sum and half-difference values. Halving uses floor
// division (rounding toward negative infinity), not Go's native truncating
// division. The two differ on negative odd sums: floor(-151/2) is -76 while
// truncation yields -75. Floor semantics keep the transform consistent across
// the sign of the signal.
//
// # Truncation vs. Saturation
//
// Pack32 masks each half to 16 bits (truncation); Unpack32 clamps its
// arithmetic into the signed 16-bit range (saturation). These are deliberately
// distinct operations: encode is lossless for in-range input, while decode is
// protected against coded values no encoder produced.
//
// # Round-Trip
//
//	coded := pcm.Pack32(100, 50)   // (75 << 16) | 25
//	l, r := pcm.Unpack32(coded)    // 100, 50
package pcm
