package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundShot    SoundType = iota // Projectile fired
	SoundHit                      // Ship struck
	SoundPowerUp                  // Power-up collected
	SoundFanfare                  // Round over
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundShot:    "shot",
	SoundHit:     "hit",
	SoundPowerUp: "powerup",
	SoundFanfare: "fanfare",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// Player plays sound effects; implementations must be safe to call when audio is unavailable
type Player interface {
	Play(st SoundType) bool
}
