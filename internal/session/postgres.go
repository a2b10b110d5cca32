package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/interview-prep/internal/logging"
	"github.com/jonathan/interview-prep/internal/types"
)

// insertSubmission computes expires_at on the database clock, the same clock Load compares against.
const insertSubmission = `
INSERT INTO interview_prep_sessions (id, payload, expires_at)
VALUES ($1, $2, NOW() + make_interval(secs => $3))`

const createSessionsTable = `
CREATE TABLE IF NOT EXISTS interview_prep_sessions (
	id         UUID PRIMARY KEY,
	payload    JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	expires_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS interview_prep_sessions_expires_at_idx
	ON interview_prep_sessions (expires_at);`

// PostgresStore keeps submissions in a table. Rows past expires_at are never returned
// and are purged on later writes.
type PostgresStore struct {
	pool *pgxpool.Pool
	ttl  time.Duration
	log  *logging.Logger
}

// NewPostgresStore connects to databaseURL and creates the sessions table if needed.
func NewPostgresStore(ctx context.Context, databaseURL string, ttl time.Duration, log *logging.Logger) (*PostgresStore, error) {
	if log == nil {
		log = logging.NewNop()
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, createSessionsTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create sessions table: %w", err)
	}

	return &PostgresStore{pool: pool, ttl: ttl, log: log}, nil
}

func (s *PostgresStore) Save(ctx context.Context, sub *types.Submission) (string, error) {
	data, err := encode(sub)
	if err != nil {
		return "", err
	}

	if _, err := s.PurgeExpired(ctx); err != nil {
		s.log.Warn("failed to purge expired sessions", "error", err)
	}

	id := uuid.New()
	_, err = s.pool.Exec(ctx, insertSubmission, id, data, s.ttl.Seconds())
	if err != nil {
		return "", fmt.Errorf("session: failed to insert submission: %w", err)
	}
	return id.String(), nil
}

func (s *PostgresStore) Load(ctx context.Context, token string) (*types.Submission, error) {
	id, err := uuid.Parse(token)
	if err != nil {
		return nil, ErrNotFound
	}

	var data []byte
	err = s.pool.QueryRow(ctx,
		`SELECT payload FROM interview_prep_sessions
		 WHERE id = $1 AND expires_at > NOW()`,
		id,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("session: failed to load submission: %w", err)
	}
	return decode(data)
}

// PurgeExpired deletes expired rows and returns how many were removed.
func (s *PostgresStore) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM interview_prep_sessions WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("session: failed to purge expired submissions: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
