package repo_test

import (
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/alefloresc/p2-systems-haniya-gloria/testutil"
)

// newTestTx returns a transaction that is rolled back when the test finishes.
// Repos accept it in place of the pool.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	return testutil.BeginTx(t)
}

func ptr[T any](v T) *T { return &v }
