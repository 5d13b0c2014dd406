package config

// Config holds general game configuration
type Config struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	TPS    int     `yaml:"tps"`
	Scale  float64 `yaml:"scale"` // level pixels -> world units
}

// Rect is a hitbox relative to an entity's position.
type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed          float64 `yaml:"speed"`
	Health         int     `yaml:"health"`
	JumpForce      float64 `yaml:"jump_force"`
	MaxJumps       int     `yaml:"max_jumps"`
	FallResetY     float64 `yaml:"fall_reset_y"`
	LaunchRecovery float64 `yaml:"launch_recovery"` // seconds before returning to idle after a spit
	FlashSegment   float64 `yaml:"flash_segment"`   // seconds per opacity segment of the damage flash
	Hitbox         Rect    `yaml:"hitbox"`
}

// InhaleConfig contains the inhale zone and its visual cue
type InhaleConfig struct {
	Zone          Rect    `yaml:"zone"` // X is mirrored when facing left
	EffectOffsetX float64 `yaml:"effect_offset_x"`
	EffectOffsetY float64 `yaml:"effect_offset_y"`
	EffectWidth   float64 `yaml:"effect_width"`
	EffectHeight  float64 `yaml:"effect_height"`
	PullSpeed     float64 `yaml:"pull_speed"`
}

// ProjectileConfig contains shooting star configuration
type ProjectileConfig struct {
	Speed             float64 `yaml:"speed"`
	OffsetX           float64 `yaml:"offset_x"`
	OffsetY           float64 `yaml:"offset_y"`
	Lifetime          float64 `yaml:"lifetime"`
	OffscreenDistance float64 `yaml:"offscreen_distance"`
	Hitbox            Rect    `yaml:"hitbox"`
}

// ExplosionParams parameterizes one particle burst.
type ExplosionParams struct {
	Count  int     `yaml:"count"` // particle pairs
	Radius float64 `yaml:"radius"`
	Size   float64 `yaml:"size"`
}

// ExplosionConfig contains particle explosion configuration
type ExplosionConfig struct {
	ParticleLifetime float64         `yaml:"particle_lifetime"`
	ParticleSize     float64         `yaml:"particle_size"`
	StaggerStep      float64         `yaml:"stagger_step"` // max spawn delay is Count*StaggerStep
	MinGrowth        float64         `yaml:"min_growth"`
	MaxGrowth        float64         `yaml:"max_growth"`
	Impact           ExplosionParams `yaml:"impact"`    // shooting star hitting level geometry
	EnemyHit         ExplosionParams `yaml:"enemy_hit"` // shooting star hitting an enemy
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name         string  `yaml:"name"`
	Speed        float64 `yaml:"speed"`
	JumpForce    float64 `yaml:"jump_force"`
	IdleDelay    float64 `yaml:"idle_delay"`
	WalkDuration float64 `yaml:"walk_duration"`
	Hitbox       Rect    `yaml:"hitbox"`
}

// BirdConfig contains configuration for the flying enemy and its spawner
type BirdConfig struct {
	Name            string    `yaml:"name"`
	Speeds          []float64 `yaml:"speeds"`
	SpawnInterval   float64   `yaml:"spawn_interval"`
	DespawnDistance float64   `yaml:"despawn_distance"`
	Hitbox          Rect      `yaml:"hitbox"`
}

// EnemyConfig contains enemy configuration
type EnemyConfig struct {
	Flame EnemyTypeConfig `yaml:"flame"`
	Guy   EnemyTypeConfig `yaml:"guy"`
	Bird  BirdConfig      `yaml:"bird"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	CellSize     int     `yaml:"cell_size"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	Scale          float64 `yaml:"scale"`
	ThresholdX     float64 `yaml:"threshold_x"` // follow while the player is left of level origin + ThresholdX
	LeadX          float64 `yaml:"lead_x"`
	FixedY         float64 `yaml:"fixed_y"`
	ShakeIntensity float64 `yaml:"shake_intensity"`
	ShakeDuration  float64 `yaml:"shake_duration"` // seconds
}

// LevelConfig lists the level scenes in play order
type LevelConfig struct {
	Dir    string   `yaml:"dir"`
	Scenes []string `yaml:"scenes"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay  bool `yaml:"overlay"`
	Hitboxes bool `yaml:"hitboxes"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Inhale InhaleConfig
var Projectile ProjectileConfig
var Explosion ExplosionConfig
var Enemy EnemyConfig
var Physics PhysicsConfig
var Camera CameraConfig
var Levels LevelConfig
var Debug DebugConfig

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every configuration instance to its built-in defaults.
func Reset() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
		Scale:  4,
	}

	Physics = PhysicsConfig{
		Gravity:      2100,
		MaxFallSpeed: 1600,
		CellSize:     32,
	}

	Player = PlayerConfig{
		Speed:          300,
		Health:         3,
		JumpForce:      640,
		MaxJumps:       10,
		FallResetY:     2000,
		LaunchRecovery: 1,
		FlashSegment:   0.05,
		Hitbox:         Rect{X: 16, Y: 23.6, W: 32, H: 40},
	}

	Inhale = InhaleConfig{
		Zone:          Rect{X: 56, Y: 32, W: 80, H: 16},
		EffectOffsetX: 60,
		EffectOffsetY: 0,
		EffectWidth:   64,
		EffectHeight:  64,
		PullSpeed:     800,
	}

	Projectile = ProjectileConfig{
		Speed:             800,
		OffsetX:           80,
		OffsetY:           5,
		Lifetime:          3,
		OffscreenDistance: 400,
		Hitbox:            Rect{X: 20, Y: 16, W: 24, H: 24},
	}

	Explosion = ExplosionConfig{
		ParticleLifetime: 0.1,
		ParticleSize:     4,
		StaggerStep:      0.1,
		MinGrowth:        1,
		MaxGrowth:        12,
		Impact:           ExplosionParams{Count: 2, Radius: 10, Size: 12},
		EnemyHit:         ExplosionParams{Count: 8, Radius: 100, Size: 40},
	}

	Enemy = EnemyConfig{
		Flame: EnemyTypeConfig{
			Name:      "Flame",
			JumpForce: 1000,
			IdleDelay: 1,
			Hitbox:    Rect{X: 16, Y: 24, W: 32, H: 40},
		},
		Guy: EnemyTypeConfig{
			Name:         "Guy",
			Speed:        100,
			IdleDelay:    1,
			WalkDuration: 2,
			Hitbox:       Rect{X: 8, Y: 15.6, W: 48, H: 48},
		},
		Bird: BirdConfig{
			Name:            "Bird",
			Speeds:          []float64{100, 200, 300},
			SpawnInterval:   10,
			DespawnDistance: 400,
			Hitbox:          Rect{X: 16, Y: 24, W: 32, H: 40},
		},
	}

	Camera = CameraConfig{
		Scale:          0.7,
		ThresholdX:     432,
		LeadX:          500,
		FixedY:         850,
		ShakeIntensity: 70,
		ShakeDuration:  0.5,
	}

	Levels = LevelConfig{
		Dir:    "levels",
		Scenes: []string{"level1", "level2"},
	}

	Debug = DebugConfig{}
}

// FirstScene returns the scene a reset goes back to.
func FirstScene() string {
	return Levels.Scenes[0]
}

// NextScene returns the scene after name, wrapping around to the first one.
func NextScene(name string) string {
	for i, s := range Levels.Scenes {
		if s == name {
			return Levels.Scenes[(i+1)%len(Levels.Scenes)]
		}
	}
	return FirstScene()
}

// FrameDelta is the fixed simulation step in seconds.
func FrameDelta() float64 {
	return 1 / float64(C.TPS)
}
