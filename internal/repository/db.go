package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/shelter_dispatch_system/internal/apperr"
	"github.com/shenikar/shelter_dispatch_system/internal/service"
)

// pgUniqueViolation - код ошибки PostgreSQL при нарушении уникальности
const pgUniqueViolation = "23505"

// DB - подмножество pgxpool.Pool, которым пользуется репозиторий
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Repository struct {
	db    DB
	zones ZoneCache
}

// NewRepository создает репозиторий; при redisClient == nil список зон не кэшируется
func NewRepository(db DB, redisClient *redis.Client, zoneTTL time.Duration) service.Repository {
	var cache ZoneCache
	if redisClient != nil {
		cache = NewRedisZoneCache(redisClient, zoneTTL)
	}
	return newRepository(db, cache)
}

func newRepository(db DB, cache ZoneCache) *Repository {
	return &Repository{db: db, zones: cache}
}

// notFoundOr превращает pgx.ErrNoRows в NotFound, остальные ошибки - в Persistence
func notFoundOr(err error, what string, id int64) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(fmt.Sprintf("%s with id %d not found", what, id))
	}
	return apperr.Persistence(err, fmt.Sprintf("failed to get %s", what))
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// rollback откатывает транзакцию; после Commit вызов безвреден
func rollback(ctx context.Context, tx pgx.Tx) {
	_ = tx.Rollback(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// collect читает все строки выборки функцией scan
func collect[T any](rows pgx.Rows, scan func(rowScanner) (T, error), what string) ([]T, error) {
	defer rows.Close()
	out := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, apperr.Persistence(err, fmt.Sprintf("failed to scan %s row", what))
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence(err, fmt.Sprintf("error %s list iteration", what))
	}
	return out, nil
}
