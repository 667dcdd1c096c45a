package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

//go:embed defaults/click.yaml
var defaultClickYAML []byte

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

//go:embed defaults/runjump.yaml
var defaultRunJumpYAML []byte

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultShooterConfig returns the default shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Area: AreaConfig{Width: 700, Height: 700},
		Player: ShooterPlayer{
			HalfSize:     7.5,
			Speed:        200,
			Padding:      20,
			FloorGap:     40,
			FireCooldown: 10,
		},
		Bullet: ShooterBullet{
			HalfSize: 2,
			Speed:    400,
		},
		Enemy: ShooterEnemy{
			HalfSize:   7.5,
			Speed:      100,
			TopGap:     40,
			WallInset:  10,
			DirectionX: -0.5,
		},
		Round: RoundConfig{Seconds: 60},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{SpeedMultiplier: 2.0},
		},
	}
}

// DefaultClickConfig returns the default click configuration.
func DefaultClickConfig() ClickConfig {
	return ClickConfig{
		Area: AreaConfig{Width: 900, Height: 600},
		Balls: ClickBalls{
			Count:    30,
			HalfSize: 25,
			Speed:    400,
		},
		HitMargin: 10,
		Round:     RoundConfig{Seconds: 90},
	}
}

// DefaultCatchConfig returns the default catch configuration.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		Area: AreaConfig{Width: 800, Height: 600},
		Player: CatchPlayer{
			HalfSize: 12.5,
			Speed:    300,
		},
		Items: CatchItems{
			HalfSize:      10,
			FallSpeed:     120,
			SpawnInterval: 1.2,
		},
		Gameplay: CatchGameplay{Lives: 3},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.5,
				IntervalReduction: 0.6,
			},
		},
	}
}

// DefaultRunJumpConfig returns the default run-and-jump configuration.
func DefaultRunJumpConfig() RunJumpConfig {
	return RunJumpConfig{
		Area:     AreaConfig{Width: 800, Height: 600},
		TileSize: 40,
		Player: RunJumpPlayer{
			HalfSize:  12.5,
			Speed:     200,
			JumpSpeed: 480,
		},
		Physics: RunJumpPhysics{
			Gravity:      1200,
			MaxFallSpeed: 700,
		},
	}
}

// DefaultMazeConfig returns a single-level maze used when the embedded
// levels cannot be parsed.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		MoveDelay: 10,
		Levels: []MazeLevel{{
			Name: "Corridor",
			Grid: []string{
				"#######",
				"#P...G#",
				"#######",
			},
		}},
	}
}
