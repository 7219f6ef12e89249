package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/password-vault/internal/config"
	"github.com/MKhiriev/password-vault/internal/logger"
)

// DB wraps *sql.DB together with the error classifier used to decide whether
// a failed operation is worth retrying.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator decides whether a failed database operation is
// transient (worth retrying) or permanent.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// NewConnectPostgres opens a PostgreSQL connection pool for the given DSN and
// verifies it with a ping. Transient ping failures are retried a few times
// before giving up.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	classifier := NewPostgresErrorClassifier()

	for attempt := 1; ; attempt++ {
		err = conn.PingContext(ctx)
		if err == nil {
			break
		}

		if attempt >= 3 || classifier.Classify(err) != Retryable {
			log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
			return nil, err
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("database ping failed, retrying")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * time.Second):
		}
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: classifier,
	}, nil
}

// postgresError extracts the PostgreSQL error code from a driver error, or
// returns an empty string for non-postgres errors.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
