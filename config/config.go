package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement, pixels per second
	WalkSpeed float64 `yaml:"walk_speed"`
	RunSpeed  float64 `yaml:"run_speed"`
	JumpSpeed float64 `yaml:"jump_speed"` // negative is up
	Gravity   float64 `yaml:"gravity"`

	// Combat
	Health            int     `yaml:"health"`
	AttackDamage      int     `yaml:"attack_damage"`
	AttackDamageFrame int     `yaml:"attack_damage_frame"`
	AttackWidth       int     `yaml:"attack_width"`
	AttackHeight      int     `yaml:"attack_height"`
	HazardCooldown    float64 `yaml:"hazard_cooldown"` // seconds between fire damage ticks

	// Seconds from death until the level reports game over
	DeathDelay float64 `yaml:"death_delay"`

	// Dimensions
	FrameWidth      int `yaml:"frame_width"`
	FrameHeight     int `yaml:"frame_height"`
	CollisionWidth  int `yaml:"collision_width"`
	CollisionHeight int `yaml:"collision_height"`
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name           string  `yaml:"name"`
	Health         int     `yaml:"health"`
	WalkSpeed      float64 `yaml:"walk_speed"`
	Gravity        float64 `yaml:"gravity"`
	AggroRange     float64 `yaml:"aggro_range"`
	AttackRange    float64 `yaml:"attack_range"`
	AttackCooldown float64 `yaml:"attack_cooldown"` // seconds

	// Combat
	Damage       int `yaml:"damage"`
	DamageFrame  int `yaml:"damage_frame"`
	AttackWidth  int `yaml:"attack_width"`
	AttackHeight int `yaml:"attack_height"`

	// Dimensions
	FrameWidth      int `yaml:"frame_width"`
	FrameHeight     int `yaml:"frame_height"`
	CollisionWidth  int `yaml:"collision_width"`
	CollisionHeight int `yaml:"collision_height"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	// Variants in selection order
	Variants []string                   `yaml:"variants"`
	Types    map[string]EnemyTypeConfig `yaml:"types"`
}

// FireTypeConfig contains configuration for specific fire obstacle types
type FireTypeConfig struct {
	Damage      int     `yaml:"damage"`
	FrameWidth  int     `yaml:"frame_width"`
	FrameHeight int     `yaml:"frame_height"`
	Scale       float64 `yaml:"scale"` // sprite scale
	// Damage region relative to the scaled sprite, bottom-anchored
	HitboxScaleW float64 `yaml:"hitbox_scale_w"`
	HitboxScaleH float64 `yaml:"hitbox_scale_h"`
}

// FireConfig contains fire obstacle configuration
type FireConfig struct {
	DefaultType string                    `yaml:"default_type"`
	Types       map[string]FireTypeConfig `yaml:"types"`
}

// LevelConfig covers the level sequence and the tick clock.
type LevelConfig struct {
	Count        int      `yaml:"count"`
	Dir          string   `yaml:"dir"`
	Types        []string `yaml:"types"` // music key per level, index = level-1
	CellSize     int      `yaml:"cell_size"`
	MaxFrameDT   float64  `yaml:"max_frame_dt"`
	SubStepDT    float64  `yaml:"sub_step_dt"`
	DefaultSpawn [2]int   `yaml:"default_spawn"`
}

// TypeOf returns the level type for level n (1-based).
func (l LevelConfig) TypeOf(n int) string {
	if n >= 1 && n <= len(l.Types) {
		return l.Types[n-1]
	}
	return "hell"
}

// CorruptionConfig drives the per-level corruption meter.
type CorruptionConfig struct {
	Max   int   `yaml:"max"`
	Rates []int `yaml:"rates"` // units per second, index = level-1
	Tier  int   `yaml:"tier"`  // HUD bar step
}

// RateFor returns the corruption rate for level n (1-based).
func (c CorruptionConfig) RateFor(n int) int {
	if n >= 1 && n <= len(c.Rates) {
		return c.Rates[n-1]
	}
	return 1
}

// ScreenConfig contains transition, cutscene and HUD timings.
type ScreenConfig struct {
	StartFrames      int     `yaml:"start_frames"`
	StartFrameDelay  float64 `yaml:"start_frame_delay"`
	FadeDuration     float64 `yaml:"fade_duration"`
	FadeHold         float64 `yaml:"fade_hold"`
	CutsceneText     string  `yaml:"cutscene_text"`
	CutsceneTypeRate float64 `yaml:"cutscene_type_rate"` // characters per second
	CutsceneFrameDT  float64 `yaml:"cutscene_frame_dt"`
	CutsceneHold     float64 `yaml:"cutscene_hold"`
	HealthTier       int     `yaml:"health_tier"`
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipLevel     bool `yaml:"skip_level"` // TAB advances to the next level
	DrawHitboxes  bool `yaml:"draw_hitboxes"`
	StartingLevel int  `yaml:"starting_level"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Fire FireConfig
var Level LevelConfig
var Corruption CorruptionConfig
var Screen ScreenConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Purple    = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkRed   = color.RGBA{R: 32, G: 1, B: 1, A: 255}
	SolidGray = color.RGBA{R: 70, G: 60, B: 60, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Player = PlayerConfig{
		WalkSpeed: 100,
		RunSpeed:  180,
		JumpSpeed: -270,
		Gravity:   800,

		Health:            100,
		AttackDamage:      10,
		AttackDamageFrame: 3,
		AttackWidth:       30,
		AttackHeight:      32,
		HazardCooldown:    1.0,

		DeathDelay: 2.0,

		FrameWidth:      48,
		FrameHeight:     64,
		CollisionWidth:  24,
		CollisionHeight: 48,
	}

	base := EnemyTypeConfig{
		Health:         30,
		WalkSpeed:      120,
		Gravity:        800,
		AggroRange:     224,
		AttackRange:    25,
		AttackCooldown: 1.5,

		Damage:       10,
		DamageFrame:  4,
		AttackWidth:  24,
		AttackHeight: 32,

		FrameWidth:      48,
		FrameHeight:     64,
		CollisionWidth:  24,
		CollisionHeight: 48,
	}
	male := base
	male.Name = "male"
	female := base
	female.Name = "female"
	twisted := base
	twisted.Name = "twisted"
	twisted.Health = 50
	twisted.Damage = 15

	Enemy = EnemyConfig{
		Variants: []string{"male", "female", "twisted"},
		Types: map[string]EnemyTypeConfig{
			"male":    male,
			"female":  female,
			"twisted": twisted,
		},
	}

	fire := func(damage int) FireTypeConfig {
		return FireTypeConfig{
			Damage:       damage,
			FrameWidth:   32,
			FrameHeight:  48,
			Scale:        1.5,
			HitboxScaleW: 0.5,
			HitboxScaleH: 0.6,
		}
	}
	Fire = FireConfig{
		DefaultType: "d_fire",
		Types: map[string]FireTypeConfig{
			"d_fire": fire(10),
			"r_fire": fire(15),
			"b_fire": fire(20),
		},
	}

	Level = LevelConfig{
		Count: 9,
		Dir:   "map",
		Types: []string{
			"hell", "hell", "hell",
			"purgatory", "purgatory", "purgatory",
			"abyss", "abyss", "abyss",
		},
		CellSize:     32,
		MaxFrameDT:   0.3,
		SubStepDT:    0.03,
		DefaultSpawn: [2]int{100, 100},
	}

	Corruption = CorruptionConfig{
		Max:   100,
		Rates: []int{1, 1, 1, 2, 2, 2, 3, 3, 3},
		Tier:  5,
	}

	Screen = ScreenConfig{
		StartFrames:      5,
		StartFrameDelay:  0.07,
		FadeDuration:     2.1,
		FadeHold:         2.0,
		CutsceneText:     "Your soul left your body at the Devil's mere sight.",
		CutsceneTypeRate: 19,
		CutsceneFrameDT:  0.16,
		CutsceneHold:     5.0,
		HealthTier:       10,
	}

	Debug = DebugConfig{
		StartingLevel: 1,
	}
}
