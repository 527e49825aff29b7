// Package config resolves runtime settings from defaults, a .env file,
// SPACE_BLASTER_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/lixenwraith/space-blaster/constants"
	"github.com/lixenwraith/space-blaster/core"
	"github.com/lixenwraith/space-blaster/vmath"
)

// EnvPrefix namespaces every environment variable the game reads
const EnvPrefix = "SPACE_BLASTER_"

// DefaultEnvFile is read from the working directory when present
const DefaultEnvFile = ".env"

// Flag names
const (
	FlagDifficulty   = "difficulty"
	FlagTickRate     = "tick-rate"
	FlagSeed         = "seed"
	FlagDebug        = "debug"
	FlagMute         = "mute"
	FlagMasterVolume = "volume"
	FlagStartMode    = "mode"
	FlagEnvFile      = "env-file"
)

// Config holds all user-tunable settings
type Config struct {
	Difficulty   string
	TickRate     int
	Seed         int64 // Zero picks a time-based seed
	Debug        bool  // File logging and the status line
	Mute         bool
	MasterVolume float64
	StartMode    string // Empty opens the menu
	EnvFile      string
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Difficulty:   constants.DefaultDifficulty.Name,
		TickRate:     constants.DefaultTickRate,
		MasterVolume: 0.6,
		EnvFile:      DefaultEnvFile,
	}
}

// Flags returns the CLI flags, each also bound to its environment variable
func Flags() []cli.Flag {
	d := Default()
	return []cli.Flag{
		cli.StringFlag{Name: FlagDifficulty, Value: d.Difficulty, Usage: "AI difficulty preset (easy, hard)", EnvVar: EnvPrefix + "DIFFICULTY"},
		cli.IntFlag{Name: FlagTickRate, Value: d.TickRate, Usage: "Simulation ticks per second", EnvVar: EnvPrefix + "TICK_RATE"},
		cli.Int64Flag{Name: FlagSeed, Value: d.Seed, Usage: "Random seed; 0 uses the clock", EnvVar: EnvPrefix + "SEED"},
		cli.BoolFlag{Name: FlagDebug, Usage: "Enable debug logging and the status line", EnvVar: EnvPrefix + "DEBUG"},
		cli.BoolFlag{Name: FlagMute, Usage: "Disable sound", EnvVar: EnvPrefix + "MUTE"},
		cli.Float64Flag{Name: FlagMasterVolume, Value: d.MasterVolume, Usage: "Master volume from 0 to 1", EnvVar: EnvPrefix + "VOLUME"},
		cli.StringFlag{Name: FlagStartMode, Usage: "Skip the menu and start a round (ai, pvp)", EnvVar: EnvPrefix + "MODE"},
		cli.StringFlag{Name: FlagEnvFile, Value: d.EnvFile, Usage: "Dotenv file loaded before flags are parsed", EnvVar: EnvPrefix + "ENV_FILE"},
	}
}

// FromCLI builds a validated Config from parsed flags
func FromCLI(c *cli.Context) (Config, error) {
	cfg := Config{
		Difficulty:   c.String(FlagDifficulty),
		TickRate:     c.Int(FlagTickRate),
		Seed:         c.Int64(FlagSeed),
		Debug:        c.Bool(FlagDebug),
		Mute:         c.Bool(FlagMute),
		MasterVolume: c.Float64(FlagMasterVolume),
		StartMode:    c.String(FlagStartMode),
		EnvFile:      c.String(FlagEnvFile),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	if _, ok := constants.LookupDifficulty(c.Difficulty); !ok {
		return errors.Errorf("unknown difficulty %q", c.Difficulty)
	}
	if c.TickRate < constants.MinTickRate || c.TickRate > constants.MaxTickRate {
		return errors.Errorf("tick rate %d outside [%d, %d]", c.TickRate, constants.MinTickRate, constants.MaxTickRate)
	}
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return errors.Errorf("volume %.2f outside [0, 1]", c.MasterVolume)
	}
	if c.StartMode != "" {
		if _, ok := core.ParseMode(c.StartMode); !ok {
			return errors.Errorf("unknown start mode %q", c.StartMode)
		}
	}
	return nil
}

// DifficultyPreset returns the resolved preset, falling back to the default
func (c Config) DifficultyPreset() constants.DifficultyPreset {
	if p, ok := constants.LookupDifficulty(c.Difficulty); ok {
		return p
	}
	return constants.DefaultDifficulty
}

// Mode returns the start mode; false means show the menu
func (c Config) Mode() (core.Mode, bool) {
	if c.StartMode == "" {
		return core.ModeAI, false
	}
	return core.ParseMode(c.StartMode)
}

// TickInterval converts the tick rate to a scheduler period
func (c Config) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return constants.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.TickRate)
}

// ResolvedSeed returns Seed, or a clock-derived value when Seed is zero
func (c Config) ResolvedSeed() uint64 {
	if c.Seed != 0 {
		return uint64(c.Seed)
	}
	return vmath.SeedFromTime()
}

// EnvFilePath returns the dotenv path named by an --env-file argument, then
// the environment, else the default
// The file is loaded before cli parses flags, so args are scanned directly
func EnvFilePath(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if name == FlagEnvFile {
			if i+1 < len(args) && args[i+1] != "" {
				return args[i+1]
			}
			break
		}
		if v, ok := strings.CutPrefix(name, FlagEnvFile+"="); ok && v != "" {
			return v
		}
	}
	if p := os.Getenv(EnvPrefix + "ENV_FILE"); p != "" {
		return p
	}
	return DefaultEnvFile
}

// LoadEnvFile loads path into the process environment without overriding
// variables that are already set; a missing file is not an error
func LoadEnvFile(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false, nil
	}
	if err := godotenv.Load(path); err != nil {
		return false, errors.Wrapf(err, "loading env file %s", path)
	}
	return true, nil
}
