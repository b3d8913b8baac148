package migration

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	// Подключение драйвера для работы с PostgreSQL.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	// Подключение драйвера файловой системы, для чтения миграций из файлов.
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Up применяет миграции к базе данных.
func Up(path, dsn string) error {
	slog.Info("Запуск миграций...", "path", path)
	return apply(path, dsn, (*migrate.Migrate).Up)
}

// Down откатывает все миграции.
func Down(path, dsn string) error {
	slog.Info("Откат миграций...", "path", path)
	return apply(path, dsn, (*migrate.Migrate).Down)
}

func apply(path, dsn string, step func(*migrate.Migrate) error) error {
	m, err := migrate.New("file://"+path, dsn)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}
	defer func() {
		_, _ = m.Close()
	}()

	if err = step(m); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("Нет новых миграций для применения.")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	slog.Info("Миграции применены.")
	return nil
}
