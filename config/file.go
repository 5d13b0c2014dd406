package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// overrides mirrors the global instances so a YAML document only replaces the
// fields it names.
type overrides struct {
	Screen     *Config           `yaml:"screen"`
	Player     *PlayerConfig     `yaml:"player"`
	Inhale     *InhaleConfig     `yaml:"inhale"`
	Projectile *ProjectileConfig `yaml:"projectile"`
	Explosion  *ExplosionConfig  `yaml:"explosion"`
	Enemy      *EnemyConfig      `yaml:"enemy"`
	Physics    *PhysicsConfig    `yaml:"physics"`
	Camera     *CameraConfig     `yaml:"camera"`
	Levels     *LevelConfig      `yaml:"levels"`
	Debug      *DebugConfig      `yaml:"debug"`
}

// LoadFile overlays the YAML file at path onto the current configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Parse(data); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	log.Printf("Loaded config overrides from %s", path)
	return nil
}

// Parse overlays a YAML document onto the current configuration.
func Parse(data []byte) error {
	doc := overrides{
		Screen:     C,
		Player:     &Player,
		Inhale:     &Inhale,
		Projectile: &Projectile,
		Explosion:  &Explosion,
		Enemy:      &Enemy,
		Physics:    &Physics,
		Camera:     &Camera,
		Levels:     &Levels,
		Debug:      &Debug,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	return validate()
}

func validate() error {
	switch {
	case C.TPS <= 0:
		return errors.New("screen.tps must be positive")
	case len(Levels.Scenes) == 0:
		return errors.New("levels.scenes must not be empty")
	case len(Enemy.Bird.Speeds) == 0:
		return errors.New("enemy.bird.speeds must not be empty")
	case Player.Health < 0:
		return errors.New("player.health must not be negative")
	}
	return nil
}
