package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/space-blaster/constants"
	"github.com/lixenwraith/space-blaster/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// noiseSeed keeps noise-based effects reproducible
const noiseSeed = 0x5eed

// oscillator generates raw audio waves, optionally sweeping frequency linearly
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *vmath.FastRand
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freq to endFreq over duration
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      vmath.NewFastRand(noiseSeed),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.endFreq != o.freq && o.duration > 0 {
			freq += (o.endFreq - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s; sustain fills whatever duration attack and release leave
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s at linear gain vol; zero or less is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func effectGain(cfg *AudioConfig, st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// CreateShotSound generates a short descending zap
func CreateShotSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	zap := NewSweep(1400, 380, constants.ShotSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(zap, constants.ShotSoundDuration, constants.ShotSoundAttack, constants.ShotSoundRelease, rate)

	return newVolume(shaped, effectGain(cfg, SoundShot))
}

// CreateHitSound generates a noise burst over a low thump
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, constants.HitSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.HitSoundDuration, constants.HitSoundAttack, constants.HitSoundRelease, rate)

	thump := NewSweep(140, 45, constants.HitSoundDuration, WaveSine, rate)
	thumpShaped := NewEnvelope(thump, constants.HitSoundDuration, constants.HitSoundAttack, constants.HitSoundRelease, rate)

	// Mix never reports drained on its own
	mixed := beep.Take(rate.N(constants.HitSoundDuration), beep.Mix(
		newVolume(noiseShaped, 0.55),
		newVolume(thumpShaped, 0.45),
	))
	return newVolume(mixed, effectGain(cfg, SoundHit))
}

// CreatePowerUpSound generates a rising two-note chime
func CreatePowerUpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// C6
	n1 := NewOscillator(1046.50, constants.PowerUpNote1Duration, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, constants.PowerUpNote1Duration, constants.PowerUpSoundAttack, constants.PowerUpNote1Release, rate)

	// G6
	n2 := NewOscillator(1567.98, constants.PowerUpNote2Duration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, constants.PowerUpNote2Duration, constants.PowerUpSoundAttack, constants.PowerUpNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), effectGain(cfg, SoundPowerUp))
}

// CreateFanfare generates a major arpeggio for the end of a round
func CreateFanfare(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := []float64{523.25, 659.25, 783.99, 1046.50}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := NewOscillator(f, constants.FanfareNoteDuration, WaveSaw, rate)
		parts = append(parts, NewEnvelope(osc, constants.FanfareNoteDuration, constants.FanfareAttack, constants.FanfareRelease, rate))
	}

	return newVolume(beep.Seq(parts...), effectGain(cfg, SoundFanfare))
}

// GetSoundEffect returns a fresh streamer for soundType, nil when unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundShot:
		return CreateShotSound(cfg)
	case SoundHit:
		return CreateHitSound(cfg)
	case SoundPowerUp:
		return CreatePowerUpSound(cfg)
	case SoundFanfare:
		return CreateFanfare(cfg)
	default:
		return nil
	}
}
