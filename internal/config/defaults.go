package config

import (
	_ "embed"
)

//go:embed defaults/arcade.yaml
var defaultArcadeYAML []byte

// Default returns the built-in arcade configuration. It mirrors
// defaults/arcade.yaml and serves as the last-resort fallback when even
// the embedded YAML fails to parse.
func Default() ArcadeConfig {
	return ArcadeConfig{
		T2048: T2048Config{
			WinValue:      2048,
			SpawnFourProb: 0.10,
		},
		Snake: SnakeConfig{
			GridWidth:  28,
			GridHeight: 16,
			MoveEvery:  9,
			FoodPoints: 10,
		},
		Breakout: BreakoutConfig{
			Physics: BreakoutPhysics{
				BallSpeed:    300, // 0.3 cells per tick
				PaddleSpeed:  500, // 0.5 cells per tick
				MaxBallSpeed: 900, // 0.9 cells per tick max
				SpeedStep:    30,  // Add 0.03 per cleared level
			},
			Paddle: BreakoutPaddle{
				Width: 8,
			},
			Gameplay: BreakoutGameplay{
				Lives:       3,
				BrickPoints: 10,
				LevelBonus:  250,
			},
		},
		Connect4: Connect4Config{
			ThinkTicks:   30,
			CenterWeight: 3,
			WinPoints:    100,
			TiePoints:    25,
			PiecePoints:  5,
		},
		Memory: MemoryConfig{
			Pairs:         8,
			FlipBackTicks: 45,
			TimeLimitSecs: 90,
		},
		Simon: SimonConfig{
			LitTicks: 36,
			GapTicks: 12,
		},
		Mole: MoleConfig{
			SessionSecs:     30,
			SpawnEveryTicks: 45,
			SpawnProb:       0.7,
			MinActiveTicks:  60,
			MaxActiveTicks:  150,
		},
		Invaders: InvadersConfig{
			Lives:    3,
			MaxShots: 3,
			BombProb: 0.15,
		},
		Wallet: WalletConfig{
			Demo:        true,
			DemoBalance: 250,
			TimeoutSecs: 5,
		},
	}
}
