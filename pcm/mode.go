package pcm

import "github.com/ik5/stereowav/utils"

// ChannelMode selects how a stereo sample pair collapses into one mono sample.
type ChannelMode int

const (
	// Left keeps only the left channel.
	Left ChannelMode = iota
	// Right keeps only the right channel.
	Right
	// Mid is the half-sum (L+R)/2, the conventional stereo downmix.
	Mid
	// Side is the half-difference (L-R)/2.
	Side
)

func (m ChannelMode) String() string {
	switch m {
	case Left:
		return "left"
	case Right:
		return "right"
	case Mid:
		return "mid"
	case Side:
		return "side"
	default:
		return "unknown"
	}
}

// Combine reduces a stereo sample pair to a single mono sample according to
// mode. Halving uses floor division, so negative sums round toward negative
// infinity rather than toward zero; truncating here would introduce a
// sign-dependent bias audible on negative samples.
//
// left and right carry the decoded sample values; the caller chooses the
// sample width, so both 16-bit and 32-bit PCM pass through unchanged.
func Combine(left, right int, mode ChannelMode) (int, error) {
	switch mode {
	case Left:
		return left, nil
	case Right:
		return right, nil
	case Mid:
		return utils.FloorDiv(left+right, 2), nil
	case Side:
		return utils.FloorDiv(left-right, 2), nil
	default:
		return 0, ErrInvalidChannelMode
	}
}
