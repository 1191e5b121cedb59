package wav

import (
	"errors"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrNotWavFile, "not a WAV file"},
		{ErrUnsupportedWavLayout, "unsupported WAV layout"},
		{ErrNotPCM, "not linear PCM"},
		{ErrUnsupportedWavChunks, "unsupported WAV chunks"},
	}

	for _, tt := range tests {
		if tt.err == nil {
			t.Fatal("sentinel error is nil")
		}

		if tt.err.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{ErrNotWavFile, ErrUnsupportedWavLayout, ErrNotPCM, ErrUnsupportedWavChunks}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v matches unrelated sentinel %v", a, b)
			}
		}
	}
}
