package repository

import (
	"context"
	"database/sql"

	"github.com/dmx/dmxmoney/internal/database"
)

// TransactionRepo handles transactions.
type TransactionRepo struct {
	db *sql.DB
}

func NewTransactionRepo(db *sql.DB) *TransactionRepo {
	return &TransactionRepo{db: db}
}

// Create is a strict insert: a duplicate id is an error, unlike accounts and
// categories. Transactions are expected to always be genuinely new.
func (r *TransactionRepo) Create(ctx context.Context, t Transaction) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO transactions (id, date, "accountId", "type", amount, category, description, checked, "isTransfer", "linkedTransactionId")
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Date, t.AccountID, t.Type, t.Amount, t.Category,
		t.Description, t.Checked, t.IsTransfer, t.LinkedTransactionID)
	return database.ClassifyErr(err)
}

func (r *TransactionRepo) Update(ctx context.Context, t Transaction) error {
	_, err := r.db.ExecContext(ctx, `
	UPDATE transactions SET date = ?, "accountId" = ?, "type" = ?, amount = ?, category = ?,
	 description = ?, checked = ?, "isTransfer" = ?, "linkedTransactionId" = ?
	WHERE id = ?`,
		t.Date, t.AccountID, t.Type, t.Amount, t.Category,
		t.Description, t.Checked, t.IsTransfer, t.LinkedTransactionID, t.ID)
	return database.ClassifyErr(err)
}

func (r *TransactionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	return database.ClassifyErr(err)
}

// List returns every transaction, newest date first.
func (r *TransactionRepo) List(ctx context.Context) ([]Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, date, "accountId", "type", amount, category, description, checked, "isTransfer", "linkedTransactionId"
	FROM transactions ORDER BY date DESC`)
	if err != nil {
		return nil, database.ClassifyErr(err)
	}
	defer rows.Close()
	var out []Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func scanTransaction(row scanner) (Transaction, error) {
	var t Transaction
	var desc, linked sql.NullString
	if err := row.Scan(&t.ID, &t.Date, &t.AccountID, &t.Type, &t.Amount, &t.Category,
		&desc, &t.Checked, &t.IsTransfer, &linked); err != nil {
		return Transaction{}, err
	}
	t.Description = strPtr(desc)
	t.LinkedTransactionID = strPtr(linked)
	return t, nil
}
