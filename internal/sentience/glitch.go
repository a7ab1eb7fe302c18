package sentience

import "time"

// EffectKind is a visual reality glitch. The engine only picks one; drawing
// it is the presentation layer's job.
type EffectKind int

const (
	EffectColorInversion EffectKind = iota
	EffectStatic
	EffectFragmentation
	EffectScreenTear
)

func (k EffectKind) String() string {
	switch k {
	case EffectColorInversion:
		return "color_inversion"
	case EffectStatic:
		return "static"
	case EffectFragmentation:
		return "fragmentation"
	case EffectScreenTear:
		return "screen_tear"
	default:
		return "unknown"
	}
}

// GlitchEffect is an effect kind and how long it lasts.
type GlitchEffect struct {
	Kind     EffectKind
	Duration time.Duration
}

// glitchEffects is cycled by glitch count.
var glitchEffects = [...]GlitchEffect{
	{Kind: EffectColorInversion, Duration: 300 * time.Millisecond},
	{Kind: EffectStatic, Duration: 400 * time.Millisecond},
	{Kind: EffectFragmentation, Duration: 500 * time.Millisecond},
	{Kind: EffectScreenTear, Duration: 250 * time.Millisecond},
}
