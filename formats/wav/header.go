package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// HeaderSize is the length of the canonical PCM WAV header in bytes.
const HeaderSize = 44

// pcmFormatCode is the audio-format code for uncompressed linear PCM.
const pcmFormatCode = 1

// Header holds the fields of a canonical 44-byte PCM WAV header.
//
// A Header is constructed by ReadHeader when parsing a stream, or implicitly
// from explicit parameters by WriteHeader; it is never mutated afterwards.
type Header struct {
	NumChannels   int
	SampleRate    int
	ByteRate      int
	BlockAlign    int
	BitsPerSample int
	DataSize      int
}

// BytesPerSample returns the byte width of a single per-channel sample.
func (h Header) BytesPerSample() int {
	return h.BitsPerSample / 8
}

// FrameSize returns the byte length of one frame (one sample per channel).
func (h Header) FrameSize() int {
	return h.NumChannels * h.BytesPerSample()
}

// ReadHeader consumes exactly the canonical 44-byte header from r and returns
// its fields. On success the read position is at the first payload byte; the
// payload itself is not read.
//
// Only the canonical layout is accepted: RIFF/WAVE markers, a 16-byte "fmt "
// chunk declaring linear PCM, and a "data" chunk immediately after. Channel
// count and bit depth are parsed but not validated here; callers with
// stricter requirements check the returned fields themselves.
func ReadHeader(r io.Reader) (Header, error) {
	header := make([]byte, HeaderSize)

	if _, err := io.ReadFull(r, header); err != nil {
		return Header{}, fmt.Errorf("reading WAV header: %w", err)
	}

	if !bytes.Equal(header[:4], []byte("RIFF")) || !bytes.Equal(header[8:12], []byte("WAVE")) {
		return Header{}, ErrNotWavFile
	}

	if !bytes.Equal(header[12:16], []byte("fmt ")) {
		return Header{}, ErrUnsupportedWavLayout
	}

	if binary.LittleEndian.Uint32(header[16:20]) != 16 {
		// Extended or compressed fmt chunks carry extra fields; only the
		// 16-byte PCM chunk is supported.
		return Header{}, ErrUnsupportedWavLayout
	}

	if binary.LittleEndian.Uint16(header[20:22]) != pcmFormatCode {
		return Header{}, ErrNotPCM
	}

	if !bytes.Equal(header[36:40], []byte("data")) {
		return Header{}, ErrUnsupportedWavChunks
	}

	return Header{
		NumChannels:   int(binary.LittleEndian.Uint16(header[22:24])),
		SampleRate:    int(binary.LittleEndian.Uint32(header[24:28])),
		ByteRate:      int(binary.LittleEndian.Uint32(header[28:32])),
		BlockAlign:    int(binary.LittleEndian.Uint16(header[32:34])),
		BitsPerSample: int(binary.LittleEndian.Uint16(header[34:36])),
		DataSize:      int(binary.LittleEndian.Uint32(header[40:44])),
	}, nil
}

// WriteHeader emits a complete, self-consistent canonical PCM header to w.
// Byte rate and block alignment are derived from the arguments; the payload
// itself is written by the caller afterward.
//
// Argument ranges are not validated; the caller guarantees numChannels is 1
// or 2 and bitsPerSample is 16 or 32.
func WriteHeader(w io.Writer, numChannels, sampleRate, bitsPerSample, dataSize int) error {
	byteRate := sampleRate * numChannels * bitsPerSample / 8
	blockAlign := numChannels * bitsPerSample / 8
	riffSize := 36 + dataSize

	header := make([]byte, HeaderSize)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(riffSize))
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], pcmFormatCode)
	binary.LittleEndian.PutUint16(header[22:24], uint16(numChannels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], uint16(bitsPerSample))

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataSize))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing WAV header: %w", err)
	}

	return nil
}
