package audio

import "github.com/lixenwraith/space-blaster/constants"

// AudioConfig holds mixer levels and device settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 to 1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns balanced per-effect levels
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.6,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundShot:    0.35,
			SoundHit:     0.6,
			SoundPowerUp: 0.5,
			SoundFanfare: 0.5,
		},
	}
}

// NewAudioConfig returns defaults adjusted by the user's mute flag and master volume
func NewAudioConfig(mute bool, masterVolume float64) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = !mute
	cfg.MasterVolume = clampVolume(masterVolume)
	return cfg
}

func clampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
