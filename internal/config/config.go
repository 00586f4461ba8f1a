// Package config handles configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Player   PlayerConfig   `yaml:"player"`
	Camera   CameraConfig   `yaml:"camera"`
	Scenery  SceneryConfig  `yaml:"scenery"`
	Loop     LoopConfig     `yaml:"loop"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FPSLimit   int     `yaml:"fps_limit"`
	FOV        float32 `yaml:"fov"` // Vertical, degrees
	Sky        string  `yaml:"sky"` // "#rrggbb", also the fog colour
	FogNear    float32 `yaml:"fog_near"`
	FogFar     float32 `yaml:"fog_far"`
	ShowHUD    bool    `yaml:"show_hud"`
}

// TerrainConfig selects and tunes the height field.
type TerrainConfig struct {
	Preset    string `yaml:"preset"` // summit, rolling, highlands, flat
	Seed      uint64 `yaml:"seed"`
	Noise     string `yaml:"noise"` // none, hash, sinhash, unseeded
	Segments  int    `yaml:"segments"`
	Collision string `yaml:"collision"` // mesh (default) or analytic
}

// PlayerConfig holds controller tuning.
type PlayerConfig struct {
	Spawn       [3]float32     `yaml:"spawn"`
	Speed       float32        `yaml:"speed"`
	JumpSpeed   float32        `yaml:"jump_speed"`
	Gravity     float32        `yaml:"gravity"`
	Clearance   float32        `yaml:"clearance"`
	Horizontal  string         `yaml:"horizontal"` // snap or decay
	DecayFactor float32        `yaml:"decay_factor"`
	MaxStep     float32        `yaml:"max_step"`
	Basis       string         `yaml:"basis"` // camera or fixed
	FixedYaw    float32        `yaml:"fixed_yaw"`
	Obstacles   []SphereConfig `yaml:"obstacles"`
}

// SphereConfig describes a solid sphere the player cannot enter.
type SphereConfig struct {
	Center [3]float32 `yaml:"center"`
	Radius float32    `yaml:"radius"`
}

// CameraConfig holds camera rig settings.
type CameraConfig struct {
	Mode             string     `yaml:"mode"` // first_person, chase, orbit
	Sensitivity      float32    `yaml:"sensitivity"`
	EyeHeight        float32    `yaml:"eye_height"`
	ChaseOffset      [3]float32 `yaml:"chase_offset"`
	ChaseLerp        float32    `yaml:"chase_lerp"`
	ChaseSensitivity float32    `yaml:"chase_sensitivity"`
	LookHeight       float32    `yaml:"look_height"`
}

// SceneryConfig holds prop counts.
type SceneryConfig struct {
	Rocks  int     `yaml:"rocks"`
	Trees  int     `yaml:"trees"`
	Clouds int     `yaml:"clouds"`
	Spread float32 `yaml:"spread"` // Props are placed within ±Spread of the origin
	Avatar bool    `yaml:"avatar"` // Draw the player body
}

// LoopConfig controls time stepping.
type LoopConfig struct {
	// FixedStep > 0 advances the simulation in fixed increments, 0 uses frame time.
	FixedStep   float32 `yaml:"fixed_step"`
	MaxSubsteps int     `yaml:"max_substeps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			FOV:        75,
			Sky:        "#87ceeb",
			FogNear:    60,
			FogFar:     220,
			ShowHUD:    true,
		},
		Terrain: TerrainConfig{
			Preset:    "summit",
			Seed:      1,
			Noise:     "hash",
			Segments:  100,
			Collision: "mesh",
		},
		Player: PlayerConfig{
			Spawn:       [3]float32{0, 10, 0},
			Speed:       10,
			JumpSpeed:   15,
			Gravity:     -30,
			Clearance:   1,
			Horizontal:  "snap",
			DecayFactor: 0.9,
			MaxStep:     0.1,
			Basis:       "camera",
			FixedYaw:    3.1415927,
		},
		Camera: CameraConfig{
			Mode:             "first_person",
			Sensitivity:      0.002,
			EyeHeight:        1,
			ChaseOffset:      [3]float32{0, 4, 10},
			ChaseLerp:        0.08,
			ChaseSensitivity: 0.005,
			LookHeight:       0,
		},
		Scenery: SceneryConfig{
			Rocks:  40,
			Trees:  60,
			Clouds: 12,
			Spread: 90,
			Avatar: true,
		},
		Loop: LoopConfig{
			FixedStep:   0,
			MaxSubsteps: 5,
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}
