package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Baseline DDL. Column names are quoted camelCase because that is what the
// shipped database files contain; renaming them would orphan every existing
// install.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS accounts (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	"type" TEXT NOT NULL,
	"initialBalance" REAL NOT NULL,
	color TEXT,
	icon TEXT
);

CREATE TABLE IF NOT EXISTS transactions (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	"accountId" TEXT NOT NULL,
	"type" TEXT NOT NULL,
	amount REAL NOT NULL,
	category TEXT NOT NULL,
	description TEXT,
	checked BOOLEAN DEFAULT 0,
	"isTransfer" BOOLEAN DEFAULT 0,
	"linkedTransactionId" TEXT,
	FOREIGN KEY("accountId") REFERENCES accounts(id)
);

CREATE TABLE IF NOT EXISTS categories (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	icon TEXT NOT NULL,
	color TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS scheduled_transactions (
	id TEXT PRIMARY KEY,
	description TEXT NOT NULL,
	amount REAL NOT NULL,
	"type" TEXT NOT NULL,
	frequency TEXT NOT NULL,
	"accountId" TEXT NOT NULL,
	"nextDate" TEXT NOT NULL,
	category TEXT NOT NULL,
	FOREIGN KEY("accountId") REFERENCES accounts(id)
);

CREATE TABLE IF NOT EXISTS settings (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	theme TEXT NOT NULL DEFAULT 'system',
	"primaryColor" TEXT NOT NULL DEFAULT '#6366f1',
	"displayStyle" TEXT NOT NULL DEFAULT 'modern',
	"windowPositionX" INTEGER,
	"windowPositionY" INTEGER,
	"windowSizeWidth" INTEGER,
	"windowSizeHeight" INTEGER,
	"componentSpacing" INTEGER NOT NULL DEFAULT 6,
	"componentPadding" INTEGER NOT NULL DEFAULT 6
);
`

// columnMigration is one additive schema step. There is no migration ledger:
// the live schema is the version marker, so each step probes the actual
// table before altering it. Steps only ever ADD columns with a usable
// default, never drop or rename, which keeps every old database readable.
type columnMigration struct {
	name   string
	table  string
	column string
	alter  string
}

// Ordered, append-only. New columns go at the end.
var columnMigrations = []columnMigration{
	{"settings-display-style", "settings", "displayStyle",
		`ALTER TABLE settings ADD COLUMN "displayStyle" TEXT NOT NULL DEFAULT 'modern'`},
	{"settings-component-spacing", "settings", "componentSpacing",
		`ALTER TABLE settings ADD COLUMN "componentSpacing" INTEGER NOT NULL DEFAULT 6`},
	{"settings-component-padding", "settings", "componentPadding",
		`ALTER TABLE settings ADD COLUMN "componentPadding" INTEGER NOT NULL DEFAULT 6`},
	{"settings-account-groups", "settings", "accountGroups",
		`ALTER TABLE settings ADD COLUMN "accountGroups" TEXT`},
	{"settings-custom-groups", "settings", "customGroups",
		`ALTER TABLE settings ADD COLUMN "customGroups" TEXT`},
	{"settings-custom-groups-order", "settings", "customGroupsOrder",
		`ALTER TABLE settings ADD COLUMN "customGroupsOrder" TEXT`},
	{"settings-accounts-order", "settings", "accountsOrder",
		`ALTER TABLE settings ADD COLUMN "accountsOrder" TEXT`},
	{"scheduled-to-account", "scheduled_transactions", "toAccountId",
		`ALTER TABLE scheduled_transactions ADD COLUMN "toAccountId" TEXT`},
	{"scheduled-include-in-forecast", "scheduled_transactions", "includeInForecast",
		`ALTER TABLE scheduled_transactions ADD COLUMN "includeInForecast" BOOLEAN DEFAULT 1`},
	{"scheduled-end-date", "scheduled_transactions", "endDate",
		`ALTER TABLE scheduled_transactions ADD COLUMN "endDate" TEXT`},
	{"settings-last-seen-version", "settings", "lastSeenVersion",
		`ALTER TABLE settings ADD COLUMN "lastSeenVersion" TEXT`},
}

// EnsureSchema brings the on-disk schema up to date. Safe to run on every
// start; a failure here is a startup-fatal condition for the caller. No
// other component may touch the database until this returns.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
		for _, m := range columnMigrations {
			exists, err := columnExists(ctx, tx, m.table, m.column)
			if err != nil {
				return fmt.Errorf("migration %s: probe column: %w", m.name, err)
			}
			if exists {
				continue
			}
			logrus.WithFields(logrus.Fields{"migration": m.name, "table": m.table}).
				Info("applying additive schema migration")
			if _, err := tx.ExecContext(ctx, m.alter); err != nil {
				return fmt.Errorf("migration %s: %w", m.name, err)
			}
		}
		return nil
	})
}

func columnExists(ctx context.Context, tx *sql.Tx, table, column string) (bool, error) {
	var n int
	query := fmt.Sprintf(`SELECT count(*) FROM pragma_table_info('%s') WHERE name = ?`, table)
	if err := tx.QueryRowContext(ctx, query, column).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}
