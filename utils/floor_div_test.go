// SPDX-License-Identifier: EPL-2.0

package utils

import "testing"

func TestFloorDiv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    int
		b    int
		want int
	}{
		{
			name: "positive exact",
			a:    150,
			b:    2,
			want: 75,
		},
		{
			name: "positive with remainder truncates down",
			a:    151,
			b:    2,
			want: 75,
		},
		{
			name: "negative exact",
			a:    -150,
			b:    2,
			want: -75,
		},
		{
			name: "negative with remainder rounds toward negative infinity",
			a:    -151,
			b:    2,
			want: -76, // truncating division would give -75
		},
		{
			name: "minus one halved",
			a:    -1,
			b:    2,
			want: -1,
		},
		{
			name: "zero",
			a:    0,
			b:    2,
			want: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FloorDiv(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("FloorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFloorDiv_MatchesPythonFloorDivision(t *testing.T) {
	t.Parallel()

	// Spot-check against known floor-division results for halving,
	// the only divisor used by the sample transforms.
	cases := map[int]int{
		5:  2,
		-5: -3,
		7:  3,
		-7: -4,
		1:  0,
		-1: -1,
	}

	for a, want := range cases {
		if got := FloorDiv(a, 2); got != want {
			t.Errorf("FloorDiv(%d, 2) = %d, want %d", a, got, want)
		}
	}
}
