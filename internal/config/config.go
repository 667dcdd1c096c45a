// Package config provides YAML-based demo configuration loading, difficulty
// management and config file watching.
package config

import (
	"github.com/vovakirdan/arcade-demos/internal/sim"
)

// AreaConfig is the size of a play area centered on the world origin.
type AreaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayArea returns the area as simulation bounds.
func (a AreaConfig) PlayArea() sim.PlayArea {
	return sim.CenteredArea(a.Width, a.Height)
}

// RoundConfig limits how long a round lasts. Zero seconds means no limit.
type RoundConfig struct {
	Seconds float64 `yaml:"seconds"`
}

// Ticks converts the round length to simulation ticks at the given rate.
func (r RoundConfig) Ticks(tickRate int) int {
	if r.Seconds <= 0 || tickRate <= 0 {
		return 0
	}
	return int(r.Seconds * float64(tickRate))
}

// ShooterConfig contains all configuration for the shooter demo.
type ShooterConfig struct {
	Area       AreaConfig       `yaml:"area"`
	Player     ShooterPlayer    `yaml:"player"`
	Bullet     ShooterBullet    `yaml:"bullet"`
	Enemy      ShooterEnemy     `yaml:"enemy"`
	Round      RoundConfig      `yaml:"round"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ShooterPlayer defines the player ship.
type ShooterPlayer struct {
	HalfSize     float64 `yaml:"half_size"`
	Speed        float64 `yaml:"speed"`
	Padding      float64 `yaml:"padding"`
	FloorGap     float64 `yaml:"floor_gap"`     // distance from the bottom edge at spawn
	FireCooldown int     `yaml:"fire_cooldown"` // ticks between shots
}

// ShooterBullet defines projectiles.
type ShooterBullet struct {
	HalfSize float64 `yaml:"half_size"`
	Speed    float64 `yaml:"speed"`
}

// ShooterEnemy defines the bouncing target.
type ShooterEnemy struct {
	HalfSize   float64 `yaml:"half_size"`
	Speed      float64 `yaml:"speed"`
	TopGap     float64 `yaml:"top_gap"`
	WallInset  float64 `yaml:"wall_inset"`
	DirectionX float64 `yaml:"direction_x"`
	DirectionY float64 `yaml:"direction_y"`
}

// ClickConfig contains all configuration for the click demo.
type ClickConfig struct {
	Area      AreaConfig  `yaml:"area"`
	Balls     ClickBalls  `yaml:"balls"`
	HitMargin float64     `yaml:"hit_margin"`
	Round     RoundConfig `yaml:"round"`
}

// ClickBalls defines the bouncing balls.
type ClickBalls struct {
	Count    int     `yaml:"count"`
	HalfSize float64 `yaml:"half_size"`
	Speed    float64 `yaml:"speed"`
}

// CatchConfig contains all configuration for the catch demo.
type CatchConfig struct {
	Area       AreaConfig       `yaml:"area"`
	Player     CatchPlayer      `yaml:"player"`
	Items      CatchItems       `yaml:"items"`
	Gameplay   CatchGameplay    `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CatchPlayer defines the catcher.
type CatchPlayer struct {
	HalfSize float64 `yaml:"half_size"`
	Speed    float64 `yaml:"speed"`
	Padding  float64 `yaml:"padding"`
}

// CatchItems defines falling items.
type CatchItems struct {
	HalfSize      float64 `yaml:"half_size"`
	FallSpeed     float64 `yaml:"fall_speed"`
	SpawnInterval float64 `yaml:"spawn_interval"` // seconds
}

// CatchGameplay defines lives.
type CatchGameplay struct {
	Lives int `yaml:"lives"`
}

// RunJumpConfig contains all configuration for the run-and-jump demo.
type RunJumpConfig struct {
	Area     AreaConfig     `yaml:"area"`
	TileSize float64        `yaml:"tile_size"`
	Map      string         `yaml:"map"` // JSON tile map path; empty uses the built-in map
	Player   RunJumpPlayer  `yaml:"player"`
	Physics  RunJumpPhysics `yaml:"physics"`
}

// RunJumpPlayer defines the runner.
type RunJumpPlayer struct {
	HalfSize  float64 `yaml:"half_size"`
	Speed     float64 `yaml:"speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
}

// RunJumpPhysics defines vertical motion.
type RunJumpPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// MazeConfig contains the maze levels.
type MazeConfig struct {
	MoveDelay int         `yaml:"move_delay"` // ticks between repeated moves
	Levels    []MazeLevel `yaml:"levels"`
}

// MazeLevel is one grid level. Rows use '#' for walls, 'P' for the player
// start, 'G' for the goal and anything else for floor.
type MazeLevel struct {
	Name string   `yaml:"name"`
	Grid []string `yaml:"grid"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction of a spawn interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies a difficulty config based on a preset. An empty
// preset leaves it untouched.
func ApplyPreset(cfg *DifficultyConfig, preset DifficultyPreset) {
	switch {
	case preset == "":
	case IsFixedPreset(preset):
		cfg.Enabled = false
	default:
		cfg.Enabled = true
		cfg.InitialLevel = InitialLevelForPreset(preset)
	}
}
