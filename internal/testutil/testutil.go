package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lingualearn/linguaflash/internal/db"
)

var testDBCounter atomic.Int64

// NewTestDB opens an in-memory SQLite database with all migrations applied.
// Each call gets its own named shared-cache database so the connection pool
// sees one store while parallel tests stay isolated.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared&_foreign_keys=on", testDBCounter.Add(1))
	database, err := db.Open(dsn)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = database.Close()
	})
	return database
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	t.Helper()
	require.NoError(t, closer.Close())
}
