// SPDX-License-Identifier: EPL-2.0

// Package stereowav converts between stereo and mono PCM WAV streams,
// including a 32-bit mid/side joint coding of a stereo pair.
//
// Four converters make up the public surface. Each takes opened byte streams,
// validates the input header, transforms the whole payload in memory, and
// writes a complete header plus payload to the output:
//
//   - StereoToMono reduces a stereo stream to mono using a channel mode
//     (left, right, mid, side).
//   - MonoToStereo interleaves two matching mono streams into one stereo
//     stream.
//   - EncodeMidSide packs a 16-bit stereo stream into a 32-bit mono stream
//     carrying half-sum and half-difference per frame.
//   - DecodeMidSide reconstructs the 16-bit stereo stream from its coded
//     form.
//
// # Quick Start
//
//	in, _ := os.Open("stereo.wav")
//	out, _ := os.Create("mono.wav")
//	if err := stereowav.StereoToMono(in, out, pcm.Mid); err != nil {
//	    // handle error
//	}
//
// # Splitting and Merging Channels
//
// A stereo file split into its two channels merges back losslessly:
//
//	stereowav.StereoToMono(in, leftOut, pcm.Left)
//	stereowav.StereoToMono(in2, rightOut, pcm.Right)
//	stereowav.MonoToStereo(leftIn, rightIn, merged)
//
// # Mid/Side Coding
//
// EncodeMidSide stores the half-sum of each stereo pair in the high 16 bits
// of a 32-bit sample and the half-difference in the low 16 bits. For in-range
// input the pair round-trips through DecodeMidSide exactly; decoding clamps
// its arithmetic into the 16-bit range so corrupted coded streams saturate
// instead of wrapping. See the pcm package for the per-sample semantics.
//
// # Errors
//
// Converter preconditions are checked against the input header before any
// payload is read, and nothing is written to the output on failure:
//
//	err := stereowav.MonoToStereo(left, right, out)
//	if errors.Is(err, stereowav.ErrHeaderMismatch) {
//	    // the message names the differing field
//	}
//
// Malformed containers surface the sentinel errors of formats/wav.
//
// # go-audio Interop
//
// DecodeBuffer and EncodeBuffer bridge stereowav streams to go-audio
// IntBuffers for callers already working with that ecosystem.
//
// # Subpackages
//
//   - formats/wav: canonical 44-byte PCM header codec
//   - pcm: per-sample arithmetic (channel modes, Pack32/Unpack32)
//   - utils: floor division and 16-bit saturation helpers
package stereowav
