package repository

import (
	"context"
	"database/sql"

	"github.com/dmx/dmxmoney/internal/database"
)

// ScheduledRepo handles scheduled (recurring) transactions.
type ScheduledRepo struct {
	db *sql.DB
}

func NewScheduledRepo(db *sql.DB) *ScheduledRepo {
	return &ScheduledRepo{db: db}
}

// Create is a strict insert, same policy as transactions.
func (r *ScheduledRepo) Create(ctx context.Context, s ScheduledTransaction) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO scheduled_transactions (id, description, amount, "type", frequency, "accountId", "nextDate", category, "toAccountId", "includeInForecast", "endDate")
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Description, s.Amount, s.Type, s.Frequency, s.AccountID,
		s.NextDate, s.Category, s.ToAccountID, s.IncludeInForecast, s.EndDate)
	return database.ClassifyErr(err)
}

func (r *ScheduledRepo) Update(ctx context.Context, s ScheduledTransaction) error {
	_, err := r.db.ExecContext(ctx, `
	UPDATE scheduled_transactions SET description = ?, amount = ?, "type" = ?, frequency = ?,
	 "accountId" = ?, "nextDate" = ?, category = ?, "toAccountId" = ?, "includeInForecast" = ?, "endDate" = ?
	WHERE id = ?`,
		s.Description, s.Amount, s.Type, s.Frequency, s.AccountID,
		s.NextDate, s.Category, s.ToAccountID, s.IncludeInForecast, s.EndDate, s.ID)
	return database.ClassifyErr(err)
}

func (r *ScheduledRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM scheduled_transactions WHERE id = ?`, id)
	return database.ClassifyErr(err)
}

func (r *ScheduledRepo) List(ctx context.Context) ([]ScheduledTransaction, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, description, amount, "type", frequency, "accountId", "nextDate", category, "toAccountId", "includeInForecast", "endDate"
	FROM scheduled_transactions`)
	if err != nil {
		return nil, database.ClassifyErr(err)
	}
	defer rows.Close()
	var out []ScheduledTransaction
	for rows.Next() {
		s, err := scanScheduled(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanScheduled(row scanner) (ScheduledTransaction, error) {
	var s ScheduledTransaction
	var toAccount, endDate sql.NullString
	var include sql.NullBool
	if err := row.Scan(&s.ID, &s.Description, &s.Amount, &s.Type, &s.Frequency,
		&s.AccountID, &s.NextDate, &s.Category, &toAccount, &include, &endDate); err != nil {
		return ScheduledTransaction{}, err
	}
	s.ToAccountID = strPtr(toAccount)
	s.IncludeInForecast = boolPtr(include)
	s.EndDate = strPtr(endDate)
	return s, nil
}
