package game

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid arena config")

// Config holds every tunable of a match. Chances are probabilities in [0,1]
// drawn once per tick (pickups) or once per eligible policy tick (opponent fire).
type Config struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`

	TankSize float64 `mapstructure:"tankSize"` // collision radius of every combatant
	MaxHP    int     `mapstructure:"maxHP"`

	DefaultPower int     `mapstructure:"defaultPower"`
	MaxPower     int     `mapstructure:"maxPower"`
	DefaultSpeed float64 `mapstructure:"defaultSpeed"`
	MaxSpeed     float64 `mapstructure:"maxSpeed"`

	EnemyPower       int     `mapstructure:"enemyPower"`
	EnemySpeed       float64 `mapstructure:"enemySpeed"`
	EnemyShootChance float64 `mapstructure:"enemyShootChance"`
	OpponentCount    int     `mapstructure:"opponentCount"`
	PolicyInterval   int     `mapstructure:"policyInterval"` // ticks between opponent decisions

	ReloadTicks     int     `mapstructure:"reloadTicks"`
	ProjectileSpeed float64 `mapstructure:"projectileSpeed"`

	PickupSpawnChance float64 `mapstructure:"pickupSpawnChance"`
	PickupPower       int     `mapstructure:"pickupPower"`
	PickupSpeed       float64 `mapstructure:"pickupSpeed"`

	PlayerX float64 `mapstructure:"playerX"`
	PlayerY float64 `mapstructure:"playerY"`
}

// DefaultConfig returns the classic 700x700 three-opponent match.
func DefaultConfig() Config {
	return Config{
		Width:             700,
		Height:            700,
		TankSize:          20,
		MaxHP:             100,
		DefaultPower:      30,
		MaxPower:          50,
		DefaultSpeed:      3,
		MaxSpeed:          10,
		EnemyPower:        10,
		EnemySpeed:        3,
		EnemyShootChance:  0.003,
		OpponentCount:     3,
		PolicyInterval:    2,
		ReloadTicks:       200,
		ProjectileSpeed:   10,
		PickupSpawnChance: 0.01,
		PickupPower:       5,
		PickupSpeed:       1,
		PlayerX:           100,
		PlayerY:           100,
	}
}

// Validate reports settings the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: arena %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.TankSize <= 0:
		return fmt.Errorf("%w: tank size %.1f must be positive", ErrInvalidConfig, c.TankSize)
	case c.MaxHP <= 0:
		return fmt.Errorf("%w: max hp %d must be positive", ErrInvalidConfig, c.MaxHP)
	case c.OpponentCount < 0:
		return fmt.Errorf("%w: opponent count %d is negative", ErrInvalidConfig, c.OpponentCount)
	case c.ReloadTicks < 0 || c.PolicyInterval < 0:
		return fmt.Errorf("%w: tick intervals must not be negative", ErrInvalidConfig)
	case c.ProjectileSpeed <= 0:
		return fmt.Errorf("%w: projectile speed %.1f must be positive", ErrInvalidConfig, c.ProjectileSpeed)
	case c.DefaultPower > c.MaxPower || c.EnemyPower > c.MaxPower:
		return fmt.Errorf("%w: starting power exceeds cap %d", ErrInvalidConfig, c.MaxPower)
	case c.DefaultSpeed > c.MaxSpeed || c.EnemySpeed > c.MaxSpeed:
		return fmt.Errorf("%w: starting speed exceeds cap %.1f", ErrInvalidConfig, c.MaxSpeed)
	}
	for name, p := range map[string]float64{
		"enemyShootChance":  c.EnemyShootChance,
		"pickupSpawnChance": c.PickupSpawnChance,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: %s %.4f outside [0,1]", ErrInvalidConfig, name, p)
		}
	}
	return nil
}

// PlayerStats returns the starting stat block of the player.
func (c Config) PlayerStats() Stats {
	return Stats{
		Size:        c.TankSize,
		Speed:       c.DefaultSpeed,
		MaxSpeed:    c.MaxSpeed,
		MaxHP:       c.MaxHP,
		Power:       c.DefaultPower,
		MaxPower:    c.MaxPower,
		ReloadTicks: c.ReloadTicks,
	}
}

// OpponentStats returns the starting stat block of an opponent.
func (c Config) OpponentStats() Stats {
	s := c.PlayerStats()
	s.Speed = c.EnemySpeed
	s.Power = c.EnemyPower
	return s
}
