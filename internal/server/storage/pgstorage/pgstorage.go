package pgstorage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/maynagashev/go-rangerand/internal/contracts/ranges"
	"github.com/maynagashev/go-rangerand/internal/server/app"
	"github.com/maynagashev/go-rangerand/internal/server/storage"
	"github.com/maynagashev/go-rangerand/internal/server/storage/pgstorage/migration"
	"github.com/maynagashev/go-rangerand/pkg/random"
)

const maxRetries = 3

// PgxPoolInterface - подмножество методов pgxpool.Pool, используемое хранилищем.
type PgxPoolInterface interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Close()
}

type PgStorage struct {
	conn PgxPoolInterface
	log  *zap.Logger
	// Пауза перед повторной попыткой: 1, 3, 5 секунд.
	backoff func(attempt int) time.Duration
}

// New создает новое подключение к базе данных, накатывает миграции и возвращает экземпляр хранилища.
func New(ctx context.Context, config *app.Config, log *zap.Logger) (*PgStorage, error) {
	log.Debug("connecting to database", zap.String("dsn", config.Database.DSN))
	conn, err := pgxpool.New(ctx, config.Database.DSN)
	if err != nil {
		log.Error("unable to connect to database", zap.Error(err))
		return nil, err
	}

	// Автоматически накатываем миграции при создании экземпляра хранилища.
	if err = migration.Up(config.Database.MigrationsPath, config.Database.DSN); err != nil {
		conn.Close()
		return nil, err
	}

	return NewWithPool(conn, log), nil
}

// NewWithPool создает хранилище поверх готового пула соединений.
func NewWithPool(conn PgxPoolInterface, log *zap.Logger) *PgStorage {
	return &PgStorage{
		conn: conn,
		log:  log,
		backoff: func(attempt int) time.Duration {
			return time.Duration(attempt*2-1) * time.Second
		},
	}
}

func (p *PgStorage) Close() error {
	p.conn.Close()
	return nil
}

func (p *PgStorage) PutRange(ctx context.Context, name string, r random.Range) error {
	if name == "" {
		return storage.ErrEmptyName
	}
	q := `INSERT INTO ranges (name, min, max, step, usfpp) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name) DO UPDATE SET min = EXCLUDED.min, max = EXCLUDED.max,
		step = EXCLUDED.step, usfpp = EXCLUDED.usfpp`

	return p.withRetry(ctx, "put range", func() error {
		_, err := p.conn.Exec(ctx, q, name, r.Min(), r.Max(), r.Step(), r.StrictPrecision())
		return err
	})
}

func (p *PgStorage) GetRange(ctx context.Context, name string) (random.Range, error) {
	q := `SELECT min, max, step, usfpp FROM ranges WHERE name = $1`

	var result random.Range
	err := p.withRetry(ctx, "get range", func() error {
		var lo, hi, step float64
		var usfpp bool
		if err := p.conn.QueryRow(ctx, q, name).Scan(&lo, &hi, &step, &usfpp); err != nil {
			return err
		}
		result = random.New(lo, hi, random.WithStep(step), random.WithStrictPrecision(usfpp))
		return nil
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return random.Range{}, fmt.Errorf("%w: %s", storage.ErrNotFound, name)
	}
	return result, err
}

func (p *PgStorage) DeleteRange(ctx context.Context, name string) error {
	var tag pgconn.CommandTag
	err := p.withRetry(ctx, "delete range", func() error {
		var err error
		tag, err = p.conn.Exec(ctx, `DELETE FROM ranges WHERE name = $1`, name)
		return err
	})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, name)
	}
	return nil
}

func (p *PgStorage) ListRanges(ctx context.Context) ([]ranges.NamedRange, error) {
	var items []ranges.NamedRange
	err := p.withRetry(ctx, "list ranges", func() error {
		rows, err := p.conn.Query(ctx, `SELECT name, min, max, step, usfpp FROM ranges ORDER BY name`)
		if err != nil {
			return err
		}
		defer rows.Close()

		items = items[:0]
		for rows.Next() {
			var name string
			var lo, hi, step float64
			var usfpp bool
			if err = rows.Scan(&name, &lo, &hi, &step, &usfpp); err != nil {
				return err
			}
			items = append(items, ranges.NamedRange{
				Name:  name,
				Range: random.New(lo, hi, random.WithStep(step), random.WithStrictPrecision(usfpp)),
			})
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []ranges.NamedRange{}
	}
	return items, nil
}

func (p *PgStorage) Count(ctx context.Context) int {
	var count int
	err := p.conn.QueryRow(ctx, `SELECT count(*) FROM ranges`).Scan(&count)
	if err != nil {
		p.log.Error("failed to count ranges", zap.Error(err))
	}
	return count
}

// withRetry выполняет запрос, повторяя его при ошибках соединения не более maxRetries раз.
func (p *PgStorage) withRetry(ctx context.Context, op string, fn func() error) error {
	var err error
	for i := 0; i <= maxRetries; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.backoff(i)):
			}
		}

		err = fn()
		if err == nil {
			return nil
		}

		// Проверяем, является ли ошибка retriable
		var pgErr *pgconn.PgError
		if !errors.As(err, &pgErr) || !isRetriableError(pgErr) {
			break
		}
		p.log.Warn("retriable database error", zap.String("op", op), zap.Int("attempt", i+1), zap.Error(err))
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		p.log.Error("database operation failed", zap.String("op", op), zap.Error(err))
	}
	return err
}

func isRetriableError(err *pgconn.PgError) bool {
	switch err.Code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection,
		pgerrcode.AdminShutdown:
		return true
	default:
		return false
	}
}
