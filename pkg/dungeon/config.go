package dungeon

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Ошибки конфигурации генератора. Проверяются до начала генерации,
// ни одна комната не создается на невалидных параметрах.
var (
	ErrInvalidSize       = errors.New("width and height must be at least 3")
	ErrInvalidDifficulty = errors.New("difficulty must be at least 1")
	ErrInvalidDensity    = errors.New("density must be within [0, 1]")

	// ErrTooFewRooms - отдельная ошибка размещения входа/выхода.
	ErrTooFewRooms = errors.New("not enough rooms to place entrance and exit")
)

// Config - параметры генерации подземелья.
type Config struct {
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	Difficulty      int     `yaml:"difficulty"`
	MonsterDensity  float64 `yaml:"monster_density"`
	TreasureDensity float64 `yaml:"treasure_density"`
}

// DefaultConfig - параметры по умолчанию для новой партии.
func DefaultConfig() Config {
	return Config{
		Width:           8,
		Height:          8,
		Difficulty:      2,
		MonsterDensity:  0.35,
		TreasureDensity: 0.30,
	}
}

// Validate проверяет диапазоны параметров.
func (c Config) Validate() error {
	if c.Width < 3 || c.Height < 3 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.Difficulty < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDifficulty, c.Difficulty)
	}
	if c.MonsterDensity < 0 || c.MonsterDensity > 1 {
		return fmt.Errorf("%w: monster density %f", ErrInvalidDensity, c.MonsterDensity)
	}
	if c.TreasureDensity < 0 || c.TreasureDensity > 1 {
		return fmt.Errorf("%w: treasure density %f", ErrInvalidDensity, c.TreasureDensity)
	}
	return nil
}

// LoadConfig читает параметры генерации из YAML файла.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read generation config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse generation config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
