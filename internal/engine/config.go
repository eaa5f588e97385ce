package engine

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config - конфигурация движка из переменных окружения.
type Config struct {
	// Port HTTP порт сервера.
	Port string `env:"CRAWL_PORT" envDefault:"8080"`

	// Seed зерно генерации. 0 означает "случайное для каждой сессии".
	Seed int64 `env:"CRAWL_SEED" envDefault:"0"`

	// SaveDir каталог для файлов повторов.
	SaveDir string `env:"CRAWL_SAVE_DIR" envDefault:"./saves"`

	// GenConfigPath путь к YAML конфигу генерации (опционально).
	GenConfigPath string `env:"CRAWL_GEN_CONFIG" envDefault:""`
}

// LoadConfig читает конфигурацию движка из окружения.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse engine config: %w", err)
	}
	return cfg, nil
}
