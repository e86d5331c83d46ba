package game

import "fmt"

// Channel is an audio volume channel.
type Channel string

const (
	ChannelMusic Channel = "music"
	ChannelSFX   Channel = "sfx"
)

// MaxVolume is the top of the 0..10 volume scale.
const MaxVolume = 10

// DefaultVolume is used when no volume is configured.
const DefaultVolume = 5

// Volumes holds both channel levels on the 0..MaxVolume scale.
type Volumes struct {
	Music int `json:"music"`
	SFX   int `json:"sfx"`
}

// ClampVolume limits v to 0..MaxVolume.
func ClampVolume(v int) int {
	return max(0, min(MaxVolume, v))
}

// ParseChannel maps a channel name to a Channel.
func ParseChannel(s string) (Channel, error) {
	switch s {
	case "music", "musik":
		return ChannelMusic, nil
	case "sfx":
		return ChannelSFX, nil
	default:
		return "", fmt.Errorf("unknown volume channel %q", s)
	}
}

// Get returns the level of ch.
func (v Volumes) Get(ch Channel) int {
	if ch == ChannelSFX {
		return v.SFX
	}
	return v.Music
}

// With returns a copy with ch set to the clamped level.
func (v Volumes) With(ch Channel, level int) Volumes {
	level = ClampVolume(level)
	switch ch {
	case ChannelSFX:
		v.SFX = level
	case ChannelMusic:
		v.Music = level
	}
	return v
}
