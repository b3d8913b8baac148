// HTTP-сервер генератора случайных значений из диапазонов.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/maynagashev/go-rangerand/internal/server/app"
	"github.com/maynagashev/go-rangerand/internal/server/router"
	"github.com/maynagashev/go-rangerand/internal/server/storage"
	"github.com/maynagashev/go-rangerand/internal/server/storage/memory"
	"github.com/maynagashev/go-rangerand/internal/server/storage/pgstorage"
)

// Глобальные переменные для информации о сборке.
//
//nolint:gochecknoglobals // Эти переменные необходимы для информации о версии и задаются при сборке
var (
	BuildVersion = "N/A"
	BuildDate    = "N/A"
	BuildCommit  = "N/A"
)

func printVersion(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Build version:", BuildVersion)
	_, _ = fmt.Fprintln(w, "Build date:", BuildDate)
	_, _ = fmt.Fprintln(w, "Build commit:", BuildCommit)
}

func main() {
	printVersion(os.Stdout)

	log, err := initLogger()
	if err != nil {
		panic(err)
	}

	err = run(log, app.NewConfig(app.MustParseFlags()))
	if err != nil {
		log.Error("server stopped with error", zap.Error(err))
	}
	_ = log.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(log *zap.Logger, cfg *app.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := initStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			log.Error("failed to close storage", zap.Error(closeErr))
		}
	}()

	server := app.New(cfg)
	return server.Run(ctx, log, router.New(cfg, st, log))
}

// initStorage выбирает хранилище: PostgreSQL при заданном DSN, иначе память.
func initStorage(ctx context.Context, cfg *app.Config, log *zap.Logger) (storage.Repository, error) {
	if cfg.IsDatabaseEnabled() {
		log.Info("using postgres storage")
		return pgstorage.New(ctx, cfg, log)
	}
	log.Info("using memory storage")
	return memory.New(log), nil
}

func initLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	return cfg.Build()
}
