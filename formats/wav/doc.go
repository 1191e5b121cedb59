// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes the canonical PCM WAV container header.
//
// Only the fixed 44-byte layout is handled: a RIFF/WAVE marker, a 16-byte
// "fmt " chunk declaring uncompressed linear PCM, and a "data" chunk holding
// the raw sample payload. Every multi-byte field is little-endian. Files with
// extra chunks, extended format blocks or compressed encodings are rejected.
//
// # Reading
//
//	hdr, err := wav.ReadHeader(file)
//	if err != nil {
//	    // ErrNotWavFile, ErrUnsupportedWavLayout, ErrNotPCM or
//	    // ErrUnsupportedWavChunks
//	}
//	payload := make([]byte, hdr.DataSize)
//	io.ReadFull(file, payload)
//
// ReadHeader consumes exactly the header bytes, leaving the stream positioned
// at the payload. Channel count and bit depth are reported as-is; validating
// them against an operation's requirements is the caller's job, so a 24-bit
// or 8-channel file parses structurally and is rejected later by whoever
// needed 16-bit stereo.
//
// # Writing
//
//	wav.WriteHeader(out, 1, 44100, 16, len(payload))
//	out.Write(payload)
//
// WriteHeader derives byte rate and block alignment from its arguments and
// produces a header any standard player accepts.
package wav
