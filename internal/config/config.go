// Package config provides YAML-based game configuration loading,
// difficulty presets and wallet credential resolution for the arcade
// platform.
package config

// ArcadeConfig is the root configuration: one section per game plus the
// wallet connection. All games read their tuning from here so a single
// arcade.yaml drives the whole cabinet.
type ArcadeConfig struct {
	T2048    T2048Config    `yaml:"2048"`
	Snake    SnakeConfig    `yaml:"snake"`
	Breakout BreakoutConfig `yaml:"breakout"`
	Connect4 Connect4Config `yaml:"connect4"`
	Memory   MemoryConfig   `yaml:"memory"`
	Simon    SimonConfig    `yaml:"simon"`
	Mole     MoleConfig     `yaml:"mole"`
	Invaders InvadersConfig `yaml:"invaders"`
	Wallet   WalletConfig   `yaml:"wallet"`
}

// T2048Config contains tuning for the 2048 board game.
type T2048Config struct {
	WinValue      int     `yaml:"win_value"`       // Tile value that triggers victory
	SpawnFourProb float64 `yaml:"spawn_four_prob"` // Probability a spawned tile is a 4
}

// SnakeConfig contains tuning for Snake.
type SnakeConfig struct {
	GridWidth  int `yaml:"grid_width"`
	GridHeight int `yaml:"grid_height"`
	MoveEvery  int `yaml:"move_every_ticks"` // Simulation ticks between snake steps
	FoodPoints int `yaml:"food_points"`
}

// BreakoutConfig contains all configuration for Breakout.
type BreakoutConfig struct {
	Physics  BreakoutPhysics  `yaml:"physics"`
	Paddle   BreakoutPaddle   `yaml:"paddle"`
	Gameplay BreakoutGameplay `yaml:"gameplay"`
}

// BreakoutPhysics defines fixed-point physics parameters, in
// milli-cells per tick.
type BreakoutPhysics struct {
	BallSpeed    int `yaml:"ball_speed"`
	PaddleSpeed  int `yaml:"paddle_speed"`
	MaxBallSpeed int `yaml:"max_ball_speed"`
	SpeedStep    int `yaml:"speed_step"` // Added to ball speed per cleared level
}

// BreakoutPaddle defines paddle parameters.
type BreakoutPaddle struct {
	Width int `yaml:"width"`
}

// BreakoutGameplay defines scoring and lives.
type BreakoutGameplay struct {
	Lives       int `yaml:"lives"`
	BrickPoints int `yaml:"brick_points"`
	LevelBonus  int `yaml:"level_bonus"`
}

// Connect4Config contains tuning for Connect Four.
type Connect4Config struct {
	ThinkTicks   int `yaml:"think_ticks"`   // AI pause before it drops a disc
	CenterWeight int `yaml:"center_weight"` // Extra weight for the center column in AI fallback
	WinPoints    int `yaml:"win_points"`
	TiePoints    int `yaml:"tie_points"`
	PiecePoints  int `yaml:"piece_points"` // Per placed player disc
}

// MemoryConfig contains tuning for Memory Match.
type MemoryConfig struct {
	Pairs         int `yaml:"pairs"`
	FlipBackTicks int `yaml:"flip_back_ticks"` // Mismatch reveal duration
	TimeLimitSecs int `yaml:"time_limit_secs"`
}

// SimonConfig contains tuning for Simon Says playback timing.
type SimonConfig struct {
	LitTicks int `yaml:"lit_ticks"` // How long each pad stays lit during playback
	GapTicks int `yaml:"gap_ticks"` // Dark gap between pads
}

// MoleConfig contains tuning for Whack-a-Mole.
type MoleConfig struct {
	SessionSecs     int     `yaml:"session_secs"`
	SpawnEveryTicks int     `yaml:"spawn_every_ticks"`
	SpawnProb       float64 `yaml:"spawn_prob"`
	MinActiveTicks  int     `yaml:"min_active_ticks"` // Shortest mole lifetime
	MaxActiveTicks  int     `yaml:"max_active_ticks"` // Longest mole lifetime
}

// InvadersConfig contains tuning for Space Invaders.
type InvadersConfig struct {
	Lives    int     `yaml:"lives"`
	MaxShots int     `yaml:"max_shots"` // Player shots in flight at once
	BombProb float64 `yaml:"bomb_prob"` // Chance per formation step that an enemy bombs
}

// WalletConfig describes how the arcade reaches the Pocket Bounty wallet.
// With Demo set, awards go to an in-memory wallet instead of the API.
// Environment variables POCKET_BOUNTY_API_URL, POCKET_BOUNTY_API_TOKEN
// and POCKET_BOUNTY_DEMO override the file values.
type WalletConfig struct {
	Demo        bool   `yaml:"demo"`
	DemoBalance int    `yaml:"demo_balance"`
	APIURL      string `yaml:"api_url"`
	Token       string `yaml:"token"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset, defaulting to normal.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy:
		return DifficultyEasy
	case DifficultyHard:
		return DifficultyHard
	default:
		return DifficultyNormal
	}
}
