package stereowav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/stereowav/formats/wav"
	"github.com/ik5/stereowav/pcm"
)

// StereoToMono reads a stereo PCM WAV stream from in and writes a mono WAV
// stream to out, reducing each frame with the given channel mode. Sample rate
// and bit depth carry over unchanged; both 16- and 32-bit PCM are handled.
//
// Fails with pcm.ErrInvalidChannelMode before anything is read when the mode
// is unknown, with ErrNotStereo when the input has other than two channels,
// and with ErrUnsupportedFormat for any bit depth other than 16 or 32.
// Nothing is written to out until the whole payload has been transformed.
func StereoToMono(in io.Reader, out io.Writer, mode pcm.ChannelMode) error {
	switch mode {
	case pcm.Left, pcm.Right, pcm.Mid, pcm.Side:
	default:
		return pcm.ErrInvalidChannelMode
	}

	hdr, err := wav.ReadHeader(in)
	if err != nil {
		return fmt.Errorf("reading stereo input: %w", err)
	}

	if hdr.NumChannels != 2 {
		return ErrNotStereo
	}

	// A degenerate depth would make the frame size zero
	if hdr.BitsPerSample != 16 && hdr.BitsPerSample != 32 {
		return ErrUnsupportedFormat
	}

	payload, err := readPayload(in, hdr.DataSize)
	if err != nil {
		return err
	}

	size := hdr.BytesPerSample()
	frameSize := 2 * size
	frames := len(payload) / frameSize

	mono := make([]byte, frames*size)
	for f := 0; f < frames; f++ {
		off := f * frameSize
		left := pcm.DecodeSample(payload[off : off+size])
		right := pcm.DecodeSample(payload[off+size : off+frameSize])

		v, err := pcm.Combine(left, right, mode)
		if err != nil {
			return err
		}

		pcm.EncodeSample(mono[f*size:(f+1)*size], v)
	}

	return writeStream(out, 1, hdr.SampleRate, hdr.BitsPerSample, mono)
}

// MonoToStereo interleaves two mono PCM WAV streams into one stereo stream,
// left frame first within each stereo frame.
//
// Both inputs must be mono and agree on sample rate, bit depth and payload
// length; a disagreement fails with ErrHeaderMismatch wrapped with the name
// of the differing field. A shared bit depth other than 16 or 32 fails with
// ErrUnsupportedFormat.
func MonoToStereo(leftIn, rightIn io.Reader, out io.Writer) error {
	leftHdr, err := wav.ReadHeader(leftIn)
	if err != nil {
		return fmt.Errorf("reading left input: %w", err)
	}

	rightHdr, err := wav.ReadHeader(rightIn)
	if err != nil {
		return fmt.Errorf("reading right input: %w", err)
	}

	if leftHdr.NumChannels != 1 || rightHdr.NumChannels != 1 {
		return ErrNotMono
	}

	if leftHdr.SampleRate != rightHdr.SampleRate {
		return fmt.Errorf("sample rate: %w", ErrHeaderMismatch)
	}

	if leftHdr.BitsPerSample != rightHdr.BitsPerSample {
		return fmt.Errorf("bits per sample: %w", ErrHeaderMismatch)
	}

	if leftHdr.DataSize != rightHdr.DataSize {
		return fmt.Errorf("data size: %w", ErrHeaderMismatch)
	}

	if leftHdr.BitsPerSample != 16 && leftHdr.BitsPerSample != 32 {
		return ErrUnsupportedFormat
	}

	left, err := readPayload(leftIn, leftHdr.DataSize)
	if err != nil {
		return err
	}

	right, err := readPayload(rightIn, rightHdr.DataSize)
	if err != nil {
		return err
	}

	size := leftHdr.BytesPerSample()
	frames := len(left) / size

	stereo := make([]byte, frames*2*size)
	for f := 0; f < frames; f++ {
		copy(stereo[f*2*size:], left[f*size:(f+1)*size])
		copy(stereo[f*2*size+size:], right[f*size:(f+1)*size])
	}

	return writeStream(out, 2, leftHdr.SampleRate, leftHdr.BitsPerSample, stereo)
}

// EncodeMidSide reads a 16-bit stereo PCM WAV stream from in and writes a
// 32-bit mono WAV stream to out, packing each stereo frame into one coded
// sample with pcm.Pack32.
//
// Fails with ErrNotStereo for a non-stereo input and ErrUnsupportedFormat
// for any bit depth other than 16.
func EncodeMidSide(in io.Reader, out io.Writer) error {
	hdr, err := wav.ReadHeader(in)
	if err != nil {
		return fmt.Errorf("reading stereo input: %w", err)
	}

	if hdr.NumChannels != 2 {
		return ErrNotStereo
	}

	if hdr.BitsPerSample != 16 {
		return ErrUnsupportedFormat
	}

	payload, err := readPayload(in, hdr.DataSize)
	if err != nil {
		return err
	}

	frames := len(payload) / 4

	coded := make([]byte, frames*4)
	for f := 0; f < frames; f++ {
		off := f * 4
		left := int16(binary.LittleEndian.Uint16(payload[off : off+2]))
		right := int16(binary.LittleEndian.Uint16(payload[off+2 : off+4]))

		binary.LittleEndian.PutUint32(coded[off:off+4], pcm.Pack32(left, right))
	}

	return writeStream(out, 1, hdr.SampleRate, 32, coded)
}

// DecodeMidSide reads a 32-bit mono WAV stream produced by EncodeMidSide and
// writes the reconstructed 16-bit stereo WAV stream to out, unpacking each
// coded sample with pcm.Unpack32.
//
// Fails with ErrNotMono for a non-mono input and ErrUnsupportedFormat for
// any bit depth other than 32.
func DecodeMidSide(in io.Reader, out io.Writer) error {
	hdr, err := wav.ReadHeader(in)
	if err != nil {
		return fmt.Errorf("reading coded input: %w", err)
	}

	if hdr.NumChannels != 1 {
		return ErrNotMono
	}

	if hdr.BitsPerSample != 32 {
		return ErrUnsupportedFormat
	}

	payload, err := readPayload(in, hdr.DataSize)
	if err != nil {
		return err
	}

	frames := len(payload) / 4

	stereo := make([]byte, frames*4)
	for f := 0; f < frames; f++ {
		off := f * 4
		left, right := pcm.Unpack32(binary.LittleEndian.Uint32(payload[off : off+4]))

		binary.LittleEndian.PutUint16(stereo[off:off+2], uint16(left))
		binary.LittleEndian.PutUint16(stereo[off+2:off+4], uint16(right))
	}

	return writeStream(out, 2, hdr.SampleRate, 16, stereo)
}

// readPayload reads exactly size payload bytes following a header.
func readPayload(r io.Reader, size int) ([]byte, error) {
	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("reading payload: %w", err)
	}

	return payload, nil
}

// writeStream emits a header followed by its payload. Nothing reaches out
// before the transform finished, so a failed conversion never leaves a
// partial file that parses as valid.
func writeStream(out io.Writer, channels, sampleRate, bitsPerSample int, payload []byte) error {
	if err := wav.WriteHeader(out, channels, sampleRate, bitsPerSample, len(payload)); err != nil {
		return err
	}

	if _, err := out.Write(payload); err != nil {
		return fmt.Errorf("writing payload: %w", err)
	}

	return nil
}
