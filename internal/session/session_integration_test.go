package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-prep/internal/logging"
)

func TestRedisStore_Integration(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("Skipping integration test: REDIS_ADDR not set")
	}

	store, err := NewRedisStore(context.Background(), addr, time.Minute)
	if err != nil {
		t.Skipf("Skipping integration test: failed to connect to Redis: %v", err)
	}
	defer store.Close()

	storeContract(t, store)

	_, err = store.Load(context.Background(), "missing-token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresStore_Integration(t *testing.T) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("Skipping integration test: DATABASE_URL not set")
	}

	ctx := context.Background()
	store, err := NewPostgresStore(ctx, databaseURL, time.Minute, logging.NewNop())
	if err != nil {
		t.Skipf("Skipping integration test: failed to connect to DB: %v", err)
	}
	defer store.Close()

	storeContract(t, store)

	_, err = store.Load(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Load(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrNotFound)

	expired, err := NewPostgresStore(ctx, databaseURL, -time.Minute, nil)
	require.NoError(t, err)
	defer expired.Close()

	token, err := expired.Save(ctx, sampleSubmission())
	require.NoError(t, err)
	_, err = store.Load(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)

	token, err = store.Save(ctx, sampleSubmission())
	require.NoError(t, err)
	var lifetime float64
	err = store.pool.QueryRow(ctx,
		`SELECT EXTRACT(EPOCH FROM expires_at - created_at)::float8
		 FROM interview_prep_sessions WHERE id = $1::uuid`, token,
	).Scan(&lifetime)
	require.NoError(t, err)
	assert.InDelta(t, time.Minute.Seconds(), lifetime, 1)

	purged, err := store.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, purged, int64(1))
}
