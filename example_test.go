// SPDX-License-Identifier: EPL-2.0

package stereowav_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/stereowav"
	"github.com/ik5/stereowav/formats/wav"
	"github.com/ik5/stereowav/pcm"
)

// buildStereo16 assembles a small in-memory stereo WAV stream.
func buildStereo16(sampleRate int, samples []int16) []byte {
	buf := new(bytes.Buffer)
	payload := make([]byte, len(samples)*2)
	for i, s := range samples {
		payload[i*2] = byte(s)
		payload[i*2+1] = byte(s >> 8)
	}
	wav.WriteHeader(buf, 2, sampleRate, 16, len(payload))
	buf.Write(payload)
	return buf.Bytes()
}

// Example_downmix demonstrates the common case: reducing a stereo stream to
// mono with the mid (half-sum) mode.
func Example_downmix() {
	stereo := buildStereo16(8000, []int16{100, 50, 200, 100})

	mono := new(bytes.Buffer)
	if err := stereowav.StereoToMono(bytes.NewReader(stereo), mono, pcm.Mid); err != nil {
		fmt.Printf("convert error: %v\n", err)
		return
	}

	hdr, err := wav.ReadHeader(mono)
	if err != nil {
		fmt.Printf("read error: %v\n", err)
		return
	}

	fmt.Printf("%d channel(s), %d bytes of mono audio\n", hdr.NumChannels, hdr.DataSize)
	// Output: 1 channel(s), 4 bytes of mono audio
}

// Example_midSideRoundTrip codes a stereo stream into 32-bit mid/side form
// and reconstructs it.
func Example_midSideRoundTrip() {
	stereo := buildStereo16(44100, []int16{100, 50})

	coded := new(bytes.Buffer)
	if err := stereowav.EncodeMidSide(bytes.NewReader(stereo), coded); err != nil {
		fmt.Printf("encode error: %v\n", err)
		return
	}

	decoded := new(bytes.Buffer)
	if err := stereowav.DecodeMidSide(coded, decoded); err != nil {
		fmt.Printf("decode error: %v\n", err)
		return
	}

	fmt.Printf("round trip exact: %v\n", bytes.Equal(decoded.Bytes(), stereo))
	// Output: round trip exact: true
}

// Example_mismatch shows how header mismatches between two mono inputs
// surface.
func Example_mismatch() {
	left := new(bytes.Buffer)
	wav.WriteHeader(left, 1, 8000, 16, 2)
	left.Write([]byte{0x01, 0x00})

	right := new(bytes.Buffer)
	wav.WriteHeader(right, 1, 16000, 16, 2)
	right.Write([]byte{0x02, 0x00})

	err := stereowav.MonoToStereo(left, right, new(bytes.Buffer))
	fmt.Println(errors.Is(err, stereowav.ErrHeaderMismatch))
	fmt.Println(err)
	// Output:
	// true
	// sample rate: mono inputs do not match
}
