package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Garsondee/Tank-Arena/internal/game"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. TANKS_GAME_OPPONENTCOUNT.
const EnvPrefix = "TANKS"

// Settings is the full runtime configuration of a frontend.
type Settings struct {
	Game game.Config `mapstructure:"game"`

	LogLevel string `mapstructure:"logLevel"`
	LogFile  string `mapstructure:"logFile"`

	// Seed of the match RNG. Zero picks one from the clock.
	Seed int64 `mapstructure:"seed"`
	// Sound enables audio cues in the terminal frontend.
	Sound bool `mapstructure:"sound"`
	// Autopilot hands the player to the hunter policy holding at this
	// standoff distance. Zero keeps manual control.
	Autopilot float64 `mapstructure:"autopilot"`
	// FrameRate is the terminal frontend refresh rate in frames per second.
	FrameRate int `mapstructure:"frameRate"`
}

// setDefaults registers every key so that env overrides reach Unmarshal.
func setDefaults(v *viper.Viper) {
	d := game.DefaultConfig()

	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")
	v.SetDefault("seed", 0)
	v.SetDefault("sound", true)
	v.SetDefault("autopilot", 0.0)
	v.SetDefault("frameRate", 60)

	v.SetDefault("game.width", d.Width)
	v.SetDefault("game.height", d.Height)
	v.SetDefault("game.tankSize", d.TankSize)
	v.SetDefault("game.maxHP", d.MaxHP)
	v.SetDefault("game.defaultPower", d.DefaultPower)
	v.SetDefault("game.maxPower", d.MaxPower)
	v.SetDefault("game.defaultSpeed", d.DefaultSpeed)
	v.SetDefault("game.maxSpeed", d.MaxSpeed)
	v.SetDefault("game.enemyPower", d.EnemyPower)
	v.SetDefault("game.enemySpeed", d.EnemySpeed)
	v.SetDefault("game.enemyShootChance", d.EnemyShootChance)
	v.SetDefault("game.opponentCount", d.OpponentCount)
	v.SetDefault("game.policyInterval", d.PolicyInterval)
	v.SetDefault("game.reloadTicks", d.ReloadTicks)
	v.SetDefault("game.projectileSpeed", d.ProjectileSpeed)
	v.SetDefault("game.pickupSpawnChance", d.PickupSpawnChance)
	v.SetDefault("game.pickupPower", d.PickupPower)
	v.SetDefault("game.pickupSpeed", d.PickupSpeed)
	v.SetDefault("game.playerX", d.PlayerX)
	v.SetDefault("game.playerY", d.PlayerY)
}

// Load builds Settings from defaults, an optional config file and TANKS_*
// environment variables, in increasing priority. With an empty path a file
// named tanks.{json,yaml,toml} in the working directory is used if present.
func Load(path string) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("tanks")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Settings{}, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}
	if err := s.Game.Validate(); err != nil {
		return Settings{}, err
	}
	if s.FrameRate <= 0 {
		return Settings{}, fmt.Errorf("%w: frame rate %d must be positive", game.ErrInvalidConfig, s.FrameRate)
	}
	return s, nil
}
