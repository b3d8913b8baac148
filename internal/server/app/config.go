package app

import (
	"math/rand/v2"

	"github.com/maynagashev/go-rangerand/pkg/random"
)

type Config struct {
	Addr string
	// Зерно генератора, 0 - без фиксированного зерна.
	Seed uint64
	// Максимальное количество значений в одном ответе.
	MaxCount int
	// Параметры базы данных
	Database DatabaseConfig
}

type DatabaseConfig struct {
	DSN            string
	MigrationsPath string
}

func NewConfig(flags *Flags) *Config {
	return &Config{
		Addr:     flags.Server.Addr,
		Seed:     flags.Server.Seed,
		MaxCount: flags.Server.MaxCount,
		Database: DatabaseConfig{
			DSN:            flags.Database.DSN,
			MigrationsPath: flags.Database.MigrationsPath,
		},
	}
}

// IsDatabaseEnabled возвращает true, если переданы параметры подключения к БД.
func (cfg *Config) IsDatabaseEnabled() bool {
	return cfg.Database.DSN != ""
}

// IsSeeded возвращает true, если задано зерно генератора.
func (cfg *Config) IsSeeded() bool {
	return cfg.Seed != 0
}

// GetMaxCount возвращает максимальное количество значений в ответе, не меньше 1.
func (cfg *Config) GetMaxCount() int {
	if cfg.MaxCount < 1 {
		return 1
	}
	return cfg.MaxCount
}

// NewSource возвращает общий источник случайных чисел для сервера.
// Без зерна возвращается nil, и диапазоны используют глобальный генератор.
func (cfg *Config) NewSource() rand.Source {
	if !cfg.IsSeeded() {
		return nil
	}
	return random.NewSeededSource(cfg.Seed)
}
