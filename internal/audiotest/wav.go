// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds small PCM WAV streams in memory for tests.
package audiotest

import (
	"bytes"
	"encoding/binary"
)

// WAV16 returns a complete in-memory WAV stream with the given 16-bit
// samples interleaved across channels.
func WAV16(sampleRate, channels int, samples []int16) []byte {
	payload := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(payload[i*2:], uint16(s))
	}

	return WAV(sampleRate, channels, 16, payload)
}

// WAV32 returns a complete in-memory WAV stream with the given raw 32-bit
// samples, as produced by mid/side encoding.
func WAV32(sampleRate, channels int, samples []uint32) []byte {
	payload := make([]byte, len(samples)*4)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(payload[i*4:], s)
	}

	return WAV(sampleRate, channels, 32, payload)
}

// WAV returns a complete in-memory WAV stream around an arbitrary payload.
func WAV(sampleRate, channels, bitsPerSample int, payload []byte) []byte {
	byteRate := sampleRate * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8

	buf := new(bytes.Buffer)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+len(payload)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(len(payload)))
	buf.Write(payload)

	return buf.Bytes()
}

// Samples16 decodes the payload of a WAV stream built by this package (or
// written by the converters) back into int16 samples, skipping the header.
func Samples16(stream []byte) []int16 {
	payload := stream[44:]
	samples := make([]int16, len(payload)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(payload[i*2:]))
	}

	return samples
}

// Samples32 decodes the payload of a 32-bit WAV stream into raw coded
// samples, skipping the header.
func Samples32(stream []byte) []uint32 {
	payload := stream[44:]
	samples := make([]uint32, len(payload)/4)
	for i := range samples {
		samples[i] = binary.LittleEndian.Uint32(payload[i*4:])
	}

	return samples
}
