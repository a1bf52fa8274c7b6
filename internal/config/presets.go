package config

// ApplyPreset adjusts gameplay knobs for a named difficulty. Normal
// leaves the configuration untouched; easy and hard trade lives, timers
// and speeds in both directions.
func ApplyPreset(cfg *ArcadeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Snake.MoveEvery = 12
		cfg.Breakout.Gameplay.Lives = 5
		cfg.Breakout.Paddle.Width = 10
		cfg.Breakout.Physics.BallSpeed = 250
		cfg.Memory.TimeLimitSecs = 120
		cfg.Simon.LitTicks = 48
		cfg.Simon.GapTicks = 16
		cfg.Mole.SessionSecs = 45
		cfg.Invaders.Lives = 5
	case DifficultyHard:
		cfg.Snake.MoveEvery = 6
		cfg.Breakout.Gameplay.Lives = 2
		cfg.Breakout.Paddle.Width = 6
		cfg.Breakout.Physics.BallSpeed = 400
		cfg.Memory.TimeLimitSecs = 60
		cfg.Simon.LitTicks = 24
		cfg.Simon.GapTicks = 8
		cfg.Mole.SessionSecs = 20
		cfg.Invaders.Lives = 2
	}
}
