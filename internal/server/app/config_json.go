// Package app реализует основную логику работы HTTP-сервера.
package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// JSONConfig представляет структуру конфигурационного файла сервера в формате JSON или YAML.
type JSONConfig struct {
	Address        string `json:"address"         yaml:"address"`         // Адрес и порт сервера
	Seed           uint64 `json:"seed"            yaml:"seed"`            // Зерно генератора
	MaxCount       int    `json:"max_count"       yaml:"max_count"`       // Максимальное количество значений в ответе
	DatabaseDSN    string `json:"database_dsn"    yaml:"database_dsn"`    // Строка подключения к базе данных
	MigrationsPath string `json:"migrations_path" yaml:"migrations_path"` // Путь к директории с миграциями
}

// LoadJSONConfig загружает конфигурацию из файла. Файлы .yaml и .yml читаются как YAML,
// остальные как JSON. Возвращает nil, если файл не указан.
func LoadJSONConfig(filePath string) (*JSONConfig, error) {
	if filePath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	unmarshal := json.Unmarshal
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	}

	var config JSONConfig
	if err := unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// ApplyJSONConfig применяет настройки из JSON-конфигурации к флагам.
// Настройки из JSON имеют более низкий приоритет, чем флаги командной строки и переменные окружения.
func ApplyJSONConfig(flags *Flags, jsonConfig *JSONConfig) error {
	if jsonConfig == nil {
		return nil
	}

	// Применяем настройки только если соответствующие флаги остались со значениями по умолчанию

	if flags.Server.Addr == defaultServerAddr && jsonConfig.Address != "" {
		flags.Server.Addr = jsonConfig.Address
	}

	if flags.Server.Seed == 0 && jsonConfig.Seed != 0 {
		flags.Server.Seed = jsonConfig.Seed
	}

	if flags.Server.MaxCount == defaultMaxCount && jsonConfig.MaxCount != 0 {
		if jsonConfig.MaxCount < 0 {
			return fmt.Errorf("invalid max_count in config: %d", jsonConfig.MaxCount)
		}
		flags.Server.MaxCount = jsonConfig.MaxCount
	}

	if flags.Database.DSN == "" && jsonConfig.DatabaseDSN != "" {
		flags.Database.DSN = jsonConfig.DatabaseDSN
	}

	if flags.Database.MigrationsPath == defaultMigrationsPath && jsonConfig.MigrationsPath != "" {
		flags.Database.MigrationsPath = jsonConfig.MigrationsPath
	}

	return nil
}
