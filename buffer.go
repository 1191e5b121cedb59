// SPDX-License-Identifier: EPL-2.0

package stereowav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/stereowav/formats/wav"
)

// DecodeBuffer reads a complete PCM WAV stream and returns its samples as a
// go-audio IntBuffer, so converter output can feed straight into go-audio
// based pipelines.
func DecodeBuffer(r io.Reader) (*goaudio.IntBuffer, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, wav.ErrNotWavFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding wav payload: %w", err)
	}

	return buf, nil
}

// EncodeBuffer writes a go-audio IntBuffer as a PCM WAV stream with the given
// bit depth. The go-audio encoder seeks back to patch chunk sizes, hence the
// io.WriteSeeker requirement.
func EncodeBuffer(ws io.WriteSeeker, buf *goaudio.IntBuffer, bitsPerSample int) error {
	enc := gowav.NewEncoder(ws, buf.Format.SampleRate, bitsPerSample, buf.Format.NumChannels, 1)

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding wav payload: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing wav encoder: %w", err)
	}

	return nil
}
