package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmx/dmxmoney/internal/database"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := database.EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return db
}

func mustCreateAccount(t *testing.T, db *sql.DB, id string) Account {
	t.Helper()
	a := Account{ID: id, Name: "Compte " + id, Type: "checking", InitialBalance: 0}
	a.Normalize()
	if err := NewAccountRepo(db).Create(context.Background(), a); err != nil {
		t.Fatalf("create account %s: %v", id, err)
	}
	return a
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
