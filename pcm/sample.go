// SPDX-License-Identifier: EPL-2.0

package pcm

// DecodeSample reads a signed little-endian integer spanning all of b.
// The width comes from len(b), so 16-bit (2 byte) and 32-bit (4 byte)
// samples share one path.
func DecodeSample(b []byte) int {
	var u uint64
	for i, by := range b {
		u |= uint64(by) << (8 * i)
	}

	// Shift the sign bit into position 63 and back to extend it.
	shift := 64 - 8*len(b)

	return int(int64(u<<shift) >> shift)
}

// EncodeSample writes v as a signed little-endian integer spanning all of
// dst, truncating to the destination width.
func EncodeSample(dst []byte, v int) {
	for i := range dst {
		dst[i] = byte(v >> (8 * i))
	}
}
