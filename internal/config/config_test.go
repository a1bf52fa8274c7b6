package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	def := Default()

	if def.T2048.WinValue != 2048 {
		t.Errorf("Default 2048 win value = %d, expected 2048", def.T2048.WinValue)
	}
	if def.Snake.GridWidth != 28 || def.Snake.GridHeight != 16 {
		t.Errorf("Default snake grid = %dx%d, expected 28x16", def.Snake.GridWidth, def.Snake.GridHeight)
	}
	if def.Memory.Pairs != 8 {
		t.Errorf("Default memory pairs = %d, expected 8", def.Memory.Pairs)
	}
	if def.Mole.SpawnProb != 0.7 {
		t.Errorf("Default mole spawn prob = %v, expected 0.7", def.Mole.SpawnProb)
	}
	if !def.Wallet.Demo {
		t.Error("Default wallet mode should be demo")
	}
}

func TestEmbeddedYAMLParses(t *testing.T) {
	// The embedded defaults must stay in sync with the hardcoded ones.
	cfg := ArcadeConfig{}
	if err := yaml.Unmarshal(defaultArcadeYAML, &cfg); err != nil {
		t.Fatalf("embedded arcade.yaml does not parse: %v", err)
	}
	def := Default()
	if cfg.T2048.WinValue != def.T2048.WinValue {
		t.Errorf("embedded win_value = %d, hardcoded = %d", cfg.T2048.WinValue, def.T2048.WinValue)
	}
	if cfg.Breakout.Physics.BallSpeed != def.Breakout.Physics.BallSpeed {
		t.Errorf("embedded ball_speed = %d, hardcoded = %d", cfg.Breakout.Physics.BallSpeed, def.Breakout.Physics.BallSpeed)
	}
	if cfg.Invaders.BombProb != def.Invaders.BombProb {
		t.Errorf("embedded bomb_prob = %v, hardcoded = %v", cfg.Invaders.BombProb, def.Invaders.BombProb)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arcade.yaml")

	yaml := `
"2048":
  win_value: 1024
breakout:
  gameplay:
    lives: 7
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error: %v", path, err)
	}

	if cfg.T2048.WinValue != 1024 {
		t.Errorf("win_value = %d, expected 1024", cfg.T2048.WinValue)
	}
	if cfg.Breakout.Gameplay.Lives != 7 {
		t.Errorf("breakout lives = %d, expected 7", cfg.Breakout.Gameplay.Lives)
	}

	// Keys absent from the file keep their defaults
	if cfg.Snake.MoveEvery != 9 {
		t.Errorf("snake move_every_ticks = %d, expected default 9", cfg.Snake.MoveEvery)
	}
	if cfg.Memory.FlipBackTicks != 45 {
		t.Errorf("memory flip_back_ticks = %d, expected default 45", cfg.Memory.FlipBackTicks)
	}
}

func TestLoadBadCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Explicit missing config path should return an error")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("snake: [not a map"), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Unparseable config should return an error")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset        DifficultyPreset
		breakoutLives int
		memorySecs    int
	}{
		{DifficultyEasy, 5, 120},
		{DifficultyNormal, 3, 90},
		{DifficultyHard, 2, 60},
	}

	for _, tt := range tests {
		cfg := Default()
		ApplyPreset(&cfg, tt.preset)
		if cfg.Breakout.Gameplay.Lives != tt.breakoutLives {
			t.Errorf("%s: breakout lives = %d, expected %d", tt.preset, cfg.Breakout.Gameplay.Lives, tt.breakoutLives)
		}
		if cfg.Memory.TimeLimitSecs != tt.memorySecs {
			t.Errorf("%s: memory time limit = %d, expected %d", tt.preset, cfg.Memory.TimeLimitSecs, tt.memorySecs)
		}
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
	}{
		{"easy", DifficultyEasy},
		{"normal", DifficultyNormal},
		{"hard", DifficultyHard},
		{"", DifficultyNormal},
		{"nightmare", DifficultyNormal},
	}

	for _, tt := range tests {
		if got := ParsePreset(tt.in); got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestWalletEnvOverride(t *testing.T) {
	t.Setenv("POCKET_BOUNTY_API_URL", "https://pocketbounty.example")
	t.Setenv("POCKET_BOUNTY_API_TOKEN", "tok123")

	w := WalletConfig{Demo: true, DemoBalance: 100}
	applyWalletEnv(&w)

	if w.APIURL != "https://pocketbounty.example" {
		t.Errorf("APIURL = %q, expected env value", w.APIURL)
	}
	if w.Token != "tok123" {
		t.Errorf("Token = %q, expected env value", w.Token)
	}
	if w.Demo {
		t.Error("Setting an API URL via env should switch demo off")
	}

	// Explicit demo flag wins over the implied live mode
	t.Setenv("POCKET_BOUNTY_DEMO", "true")
	applyWalletEnv(&w)
	if !w.Demo {
		t.Error("POCKET_BOUNTY_DEMO=true should force demo mode")
	}
}
