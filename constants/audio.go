package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// SpeakerBufferDuration is the speaker buffer length
	SpeakerBufferDuration = 100 * time.Millisecond
)

// Shot Sound Timing
const (
	ShotSoundDuration = 90 * time.Millisecond
	ShotSoundAttack   = 3 * time.Millisecond
	ShotSoundRelease  = 60 * time.Millisecond
)

// Hit Sound Timing
const (
	HitSoundDuration = 250 * time.Millisecond
	HitSoundAttack   = 2 * time.Millisecond
	HitSoundRelease  = 200 * time.Millisecond
)

// Power-up Sound Timing
const (
	PowerUpNote1Duration = 70 * time.Millisecond
	PowerUpNote2Duration = 220 * time.Millisecond
	PowerUpSoundAttack   = 5 * time.Millisecond
	PowerUpNote1Release  = 30 * time.Millisecond
	PowerUpNote2Release  = 160 * time.Millisecond
)

// Round Over Fanfare Timing
const (
	FanfareNoteDuration = 180 * time.Millisecond
	FanfareAttack       = 10 * time.Millisecond
	FanfareRelease      = 120 * time.Millisecond
)
