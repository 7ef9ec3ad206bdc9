// Package testutil provides shared helpers for integration tests.
// Helpers in this package skip automatically when TEST_DATABASE_URL is not
// set, so unit tests can run without a running database.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/alefloresc/p2-systems-haniya-gloria/migrations"
)

// EnvDSN names the environment variable holding the test database DSN.
const EnvDSN = "TEST_DATABASE_URL"

// DSN returns the test database DSN, skipping the test if it is not set.
func DSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv(EnvDSN)
	if dsn == "" {
		t.Skip(EnvDSN + " not set; skipping integration test")
	}
	return dsn
}

// NewPool opens a *pgxpool.Pool on the test database.
// The pool is closed automatically when the test (and all its subtests) finish.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := pgxpool.New(context.Background(), DSN(t))
	if err != nil {
		t.Fatalf("testutil.NewPool: open pool: %v", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

// BeginTx opens a transaction on the test database and rolls it back when
// the test finishes, so nothing a test writes is ever visible to another.
func BeginTx(t *testing.T) pgx.Tx {
	t.Helper()

	tx, err := NewPool(t).Begin(context.Background())
	if err != nil {
		t.Fatalf("testutil.BeginTx: %v", err)
	}
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })
	return tx
}

// MigrateFromEnv applies all migrations to the test database once, for use
// in TestMain where no *testing.T exists. It does nothing when the DSN is
// not set and panics on failure.
func MigrateFromEnv() {
	dsn := os.Getenv(EnvDSN)
	if dsn == "" {
		return
	}
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		panic("testutil.MigrateFromEnv: parse dsn: " + err.Error())
	}
	db := stdlib.OpenDB(*cfg)
	defer db.Close()

	if _, err := migrations.Up(context.Background(), db); err != nil {
		panic("testutil.MigrateFromEnv: " + err.Error())
	}
}

// NewSchemaDB returns a *sql.DB whose search_path is a fresh schema of the
// given name. Migrations run through it touch nothing outside that schema,
// which lets a test move the schema up and down while other packages use the
// shared database. The schema is dropped when the test finishes.
func NewSchemaDB(t *testing.T, schema string) *sql.DB {
	t.Helper()

	cfg, err := pgx.ParseConfig(DSN(t))
	if err != nil {
		t.Fatalf("testutil.NewSchemaDB: parse dsn: %v", err)
	}

	admin := stdlib.OpenDB(*cfg)
	t.Cleanup(func() { admin.Close() })

	ident := pgx.Identifier{schema}.Sanitize()
	ctx := context.Background()
	if _, err := admin.ExecContext(ctx, fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", ident)); err != nil {
		t.Fatalf("testutil.NewSchemaDB: drop stale schema: %v", err)
	}
	if _, err := admin.ExecContext(ctx, "CREATE SCHEMA "+ident); err != nil {
		t.Fatalf("testutil.NewSchemaDB: create schema: %v", err)
	}

	scoped := cfg.Copy()
	if scoped.RuntimeParams == nil {
		scoped.RuntimeParams = map[string]string{}
	}
	scoped.RuntimeParams["search_path"] = schema
	db := stdlib.OpenDB(*scoped)

	// Cleanups run last-in first-out: db closes before the schema is dropped.
	t.Cleanup(func() {
		_, _ = admin.ExecContext(context.Background(), fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", ident))
	})
	t.Cleanup(func() { db.Close() })
	return db
}
