package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Player
	SoundPlayerAttack1
	SoundPlayerAttack2
	SoundPlayerAttack3
	SoundPlayerHurt
	SoundPlayerDeath1
	SoundPlayerDeath2
	SoundJump
	// Enemy
	SoundEnemyAttack1
	SoundEnemyAttack2
	SoundEnemyHurt
	SoundEnemyDeath1
	SoundEnemyDeath2
	SoundEnemyDeath3
	// Level
	SoundBurn
	SoundTeleport
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int     `yaml:"sample_rate"`
	MusicVol   float64 `yaml:"music_volume"`
	SFXVol     float64 `yaml:"sfx_volume"`
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths map[SoundID]string `yaml:"-"`

	// One variant is picked per attack or death.
	AttackVariants map[string][]SoundID `yaml:"-"`
	DeathVariants  map[string][]SoundID `yaml:"-"`
	Hurt           map[string]SoundID   `yaml:"-"`

	StartMusic      string            `yaml:"start_music"`
	TransitionMusic string            `yaml:"transition_music"`
	DeathMusic      string            `yaml:"death_music"`
	FinalMusic      string            `yaml:"final_music"`
	LevelMusic      map[string]string `yaml:"level_music"` // keyed by level type
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		MusicVol:   0.5,
		SFXVol:     1.0,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundPlayerAttack1: "audio/sfx/player_attack1.wav",
			SoundPlayerAttack2: "audio/sfx/player_attack2.wav",
			SoundPlayerAttack3: "audio/sfx/player_attack3.wav",
			SoundPlayerHurt:    "audio/sfx/player_hurt.wav",
			SoundPlayerDeath1:  "audio/sfx/player_death1.wav",
			SoundPlayerDeath2:  "audio/sfx/player_death2.wav",
			SoundJump:          "audio/sfx/jump.wav",
			SoundEnemyAttack1:  "audio/sfx/enemy_attack1.wav",
			SoundEnemyAttack2:  "audio/sfx/enemy_attack2.wav",
			SoundEnemyHurt:     "audio/sfx/enemy_hurt.wav",
			SoundEnemyDeath1:   "audio/sfx/enemy_death1.wav",
			SoundEnemyDeath2:   "audio/sfx/enemy_death2.wav",
			SoundEnemyDeath3:   "audio/sfx/enemy_death3.wav",
			SoundBurn:          "audio/sfx/burn.wav",
			SoundTeleport:      "audio/sfx/teleport.wav",
		},
		AttackVariants: map[string][]SoundID{
			AnimPlayer: {SoundPlayerAttack1, SoundPlayerAttack2, SoundPlayerAttack3},
			AnimEnemy:  {SoundEnemyAttack1, SoundEnemyAttack2},
		},
		DeathVariants: map[string][]SoundID{
			AnimPlayer: {SoundPlayerDeath1, SoundPlayerDeath2},
			AnimEnemy:  {SoundEnemyDeath1, SoundEnemyDeath2, SoundEnemyDeath3},
		},
		Hurt: map[string]SoundID{
			AnimPlayer: SoundPlayerHurt,
			AnimEnemy:  SoundEnemyHurt,
		},
		StartMusic:      "audio/music/Start.wav",
		TransitionMusic: "audio/music/Transition.wav",
		DeathMusic:      "audio/music/Death.wav",
		FinalMusic:      "audio/music/Final.wav",
		LevelMusic: map[string]string{
			"hell":      "audio/music/hell.wav",
			"purgatory": "audio/music/purgatory.wav",
			"abyss":     "audio/music/abyss.wav",
		},
	}
}
