package repository

import (
	"context"
	"database/sql"

	"github.com/dmx/dmxmoney/internal/database"
)

// AccountRepo handles accounts.
type AccountRepo struct {
	db *sql.DB
}

func NewAccountRepo(db *sql.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

// Create inserts an account. A duplicate id is silently a no-op so a retried
// create from the UI cannot fail or overwrite the stored row.
func (r *AccountRepo) Create(ctx context.Context, a Account) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT OR IGNORE INTO accounts (id, name, "type", "initialBalance", color, icon)
	VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.Name, a.Type, a.InitialBalance, a.Color, a.Icon)
	return database.ClassifyErr(err)
}

// Update is a full-row update keyed by id. An unknown id affects zero rows
// and is not an error.
func (r *AccountRepo) Update(ctx context.Context, a Account) error {
	_, err := r.db.ExecContext(ctx, `
	UPDATE accounts SET name = ?, "type" = ?, "initialBalance" = ?, color = ?, icon = ?
	WHERE id = ?`,
		a.Name, a.Type, a.InitialBalance, a.Color, a.Icon, a.ID)
	return database.ClassifyErr(err)
}

func (r *AccountRepo) List(ctx context.Context) ([]Account, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, "type", "initialBalance", color, icon FROM accounts`)
	if err != nil {
		return nil, database.ClassifyErr(err)
	}
	defer rows.Close()
	var out []Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// DeleteCascade removes the account together with every transaction and
// scheduled transaction referencing it, atomically. A missing id makes all
// three deletes affect zero rows, which still succeeds.
//
// toAccountId references on scheduled transfers are not cleaned here; that
// matches the shipped behavior (see DESIGN.md).
func (r *AccountRepo) DeleteCascade(ctx context.Context, id string) error {
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM transactions WHERE "accountId" = ?`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM scheduled_transactions WHERE "accountId" = ?`, id); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
		return err
	})
	return database.ClassifyErr(err)
}

func scanAccount(row scanner) (Account, error) {
	var a Account
	var color, icon sql.NullString
	if err := row.Scan(&a.ID, &a.Name, &a.Type, &a.InitialBalance, &color, &icon); err != nil {
		return Account{}, err
	}
	a.Color = color.String
	a.Icon = icon.String
	a.Normalize()
	return a, nil
}
