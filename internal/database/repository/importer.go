package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmx/dmxmoney/internal/database"
)

// ImportRepo replaces the full dataset from an exported snapshot.
type ImportRepo struct {
	db *sql.DB
}

func NewImportRepo(db *sql.DB) *ImportRepo {
	return &ImportRepo{db: db}
}

// ReplaceAll wipes the four entity tables and loads the snapshot in their
// place, all inside one transaction. Deletes run children-first so the FK
// on transactions never trips; inserts are strict, so a snapshot with
// duplicate ids rolls the whole import back and leaves the previous dataset
// untouched. Settings are not part of a snapshot and survive the import.
func (r *ImportRepo) ReplaceAll(ctx context.Context, snap Snapshot) error {
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, stmt := range []string{
			`DELETE FROM transactions`,
			`DELETE FROM scheduled_transactions`,
			`DELETE FROM accounts`,
			`DELETE FROM categories`,
		} {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("clear tables: %w", err)
			}
		}

		for _, a := range snap.Accounts {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO accounts (id, name, "type", "initialBalance", color, icon)
			VALUES (?, ?, ?, ?, ?, ?)`,
				a.ID, a.Name, a.Type, a.InitialBalance, a.Color, a.Icon); err != nil {
				return fmt.Errorf("import account %s: %w", a.ID, err)
			}
		}
		for _, c := range snap.Categories {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO categories (id, name, icon, color) VALUES (?, ?, ?, ?)`,
				c.ID, c.Name, c.Icon, c.Color); err != nil {
				return fmt.Errorf("import category %s: %w", c.ID, err)
			}
		}
		for _, t := range snap.Transactions {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO transactions (id, date, "accountId", "type", amount, category, description, checked, "isTransfer", "linkedTransactionId")
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				t.ID, t.Date, t.AccountID, t.Type, t.Amount, t.Category,
				t.Description, t.Checked, t.IsTransfer, t.LinkedTransactionID); err != nil {
				return fmt.Errorf("import transaction %s: %w", t.ID, err)
			}
		}
		for _, s := range snap.Scheduled {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO scheduled_transactions (id, description, amount, "type", frequency, "accountId", "nextDate", category, "toAccountId", "includeInForecast", "endDate")
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				s.ID, s.Description, s.Amount, s.Type, s.Frequency, s.AccountID,
				s.NextDate, s.Category, s.ToAccountID, s.IncludeInForecast, s.EndDate); err != nil {
				return fmt.Errorf("import scheduled %s: %w", s.ID, err)
			}
		}
		return nil
	})
	return database.ClassifyErr(err)
}
