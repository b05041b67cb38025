package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/marketplace-api/internal/store"
	"github.com/MikeMC777/marketplace-api/internal/store/storetest"
)

func TestIsCode(t *testing.T) {
	err := &pgconn.PgError{Code: store.CodeUniqueViolation}
	assert.True(t, store.IsCode(err, store.CodeUniqueViolation))
	assert.False(t, store.IsCode(err, store.CodeForeignKeyViolation))
	assert.False(t, store.IsCode(errors.New("boom"), store.CodeUniqueViolation))
}

func TestMigrate_Idempotent(t *testing.T) {
	pool := storetest.Pool(t)

	require.NoError(t, store.Migrate(pool))

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM information_schema.tables WHERE table_name IN ('users','orders','order_items')`).Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMigrate_ReleasesConnection(t *testing.T) {
	pool := storetest.Pool(t)

	require.NoError(t, store.Migrate(pool))
	require.NoError(t, store.Migrate(pool))
	assert.Zero(t, pool.Stat().AcquiredConns())

	done := make(chan struct{})
	go func() {
		pool.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("pool.Close blocked after Migrate")
	}
}
