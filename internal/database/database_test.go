package database

import (
	"database/sql"
	"fmt"
	"os"
	"testing"
)

// testDSN builds the connection string for the integration tests.
// DATABASE_URL wins when set.
func testDSN() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		envOr("POSTGRES_USER", "inkpress"),
		envOr("POSTGRES_PASSWORD", "changeme"),
		envOr("POSTGRES_HOST", "localhost"),
		envOr("POSTGRES_PORT", "5432"),
		envOr("POSTGRES_DB", "inkpress"),
	)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB connects and migrates, skipping when PostgreSQL is unavailable.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Connect(testDSN())
	if err != nil {
		t.Skipf("postgres not available: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := testDB(t)

	// A second run has nothing to do and must not fail.
	if err := Migrate(db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}

	// The core tables exist.
	for _, table := range []string{"categories", "posts"} {
		var n int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db := testDB(t)

	if err := Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var before int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&before); err != nil {
		t.Fatalf("count categories: %v", err)
	}

	// Seeding again must not add rows.
	if err := Seed(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var after int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&after); err != nil {
		t.Fatalf("count categories: %v", err)
	}
	if after != before {
		t.Errorf("category count changed from %d to %d on reseed", before, after)
	}
}
