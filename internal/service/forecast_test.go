package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/dmx/dmxmoney/internal/database/repository"
)

func seedScheduled(t *testing.T, repo *repository.ScheduledRepo, items ...repository.ScheduledTransaction) {
	t.Helper()
	for _, sc := range items {
		require.NoError(t, repo.Create(context.Background(), sc), sc.ID)
	}
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestProjectMonthlyExpense(t *testing.T) {
	db := serviceTestDB(t)
	ctx := context.Background()
	accounts := repository.NewAccountRepo(db)
	scheduled := repository.NewScheduledRepo(db)
	require.NoError(t, accounts.Create(ctx, repository.Account{ID: "a1", Name: "Courant", Type: "checking"}))

	seedScheduled(t, scheduled, repository.ScheduledTransaction{
		ID: "s1", Description: "Loyer", Amount: 850, Type: "expense",
		Frequency: "monthly", AccountID: "a1", NextDate: "2025-03-01", Category: "rent",
	})

	svc := &ForecastService{Scheduled: scheduled}
	entries, err := svc.Project(ctx, day("2025-03-01"), 90)
	require.NoError(t, err)

	// 2025-03-01, 04-01, 05-01 fall inside the 90-day horizon
	require.Len(t, entries, 3)
	require.Equal(t, "2025-03-01", entries[0].Date)
	require.Equal(t, "2025-04-01", entries[1].Date)
	require.Equal(t, "2025-05-01", entries[2].Date)
	for _, e := range entries {
		require.Equal(t, "a1", e.AccountID)
		require.True(t, e.Amount.Equal(decimal.RequireFromString("-850")), "amount = %s", e.Amount)
	}
}

func TestProjectRespectsEndDate(t *testing.T) {
	db := serviceTestDB(t)
	ctx := context.Background()
	accounts := repository.NewAccountRepo(db)
	scheduled := repository.NewScheduledRepo(db)
	require.NoError(t, accounts.Create(ctx, repository.Account{ID: "a1", Name: "Courant", Type: "checking"}))

	end := "2025-03-15"
	seedScheduled(t, scheduled, repository.ScheduledTransaction{
		ID: "s1", Description: "Abonnement", Amount: 10, Type: "expense",
		Frequency: "weekly", AccountID: "a1", NextDate: "2025-03-01", Category: "subs", EndDate: &end,
	})

	entries, err := (&ForecastService{Scheduled: scheduled}).Project(ctx, day("2025-03-01"), 365)
	require.NoError(t, err)

	// 03-01, 03-08, 03-15; the 03-22 occurrence is past endDate
	require.Len(t, entries, 3)
	require.Equal(t, "2025-03-15", entries[len(entries)-1].Date)
}

func TestProjectSkipsExcludedRows(t *testing.T) {
	db := serviceTestDB(t)
	ctx := context.Background()
	accounts := repository.NewAccountRepo(db)
	scheduled := repository.NewScheduledRepo(db)
	require.NoError(t, accounts.Create(ctx, repository.Account{ID: "a1", Name: "Courant", Type: "checking"}))

	excluded := false
	seedScheduled(t, scheduled,
		repository.ScheduledTransaction{
			ID: "s1", Description: "Ignoré", Amount: 99, Type: "expense",
			Frequency: "daily", AccountID: "a1", NextDate: "2025-03-01", Category: "x", IncludeInForecast: &excluded,
		},
		repository.ScheduledTransaction{
			ID: "s2", Description: "Unique", Amount: 40, Type: "income",
			Frequency: "once", AccountID: "a1", NextDate: "2025-03-02", Category: "y",
		},
	)

	entries, err := (&ForecastService{Scheduled: scheduled}).Project(ctx, day("2025-03-01"), 30)
	require.NoError(t, err)

	// only the one-shot income: excluded row skipped, "once" fires once
	require.Len(t, entries, 1)
	require.Equal(t, "s2", entries[0].ScheduledID)
	require.True(t, entries[0].Amount.Equal(decimal.RequireFromString("40")))
}

func TestProjectTransferHasTwoLegs(t *testing.T) {
	db := serviceTestDB(t)
	ctx := context.Background()
	accounts := repository.NewAccountRepo(db)
	scheduled := repository.NewScheduledRepo(db)
	require.NoError(t, accounts.Create(ctx, repository.Account{ID: "a1", Name: "Courant", Type: "checking"}))
	require.NoError(t, accounts.Create(ctx, repository.Account{ID: "a2", Name: "Livret", Type: "savings"}))

	dst := "a2"
	seedScheduled(t, scheduled, repository.ScheduledTransaction{
		ID: "s1", Description: "Épargne", Amount: 200, Type: "transfer",
		Frequency: "once", AccountID: "a1", NextDate: "2025-03-02", Category: "transfert", ToAccountID: &dst,
	})

	entries, err := (&ForecastService{Scheduled: scheduled}).Project(ctx, day("2025-03-01"), 30)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// sorted by account id within the same date: debit leg first
	require.Equal(t, "a1", entries[0].AccountID)
	require.True(t, entries[0].Amount.Equal(decimal.RequireFromString("-200")))
	require.Equal(t, "a2", entries[1].AccountID)
	require.True(t, entries[1].Amount.Equal(decimal.RequireFromString("200")))
}

func TestProjectStartsNoEarlierThanFrom(t *testing.T) {
	db := serviceTestDB(t)
	ctx := context.Background()
	accounts := repository.NewAccountRepo(db)
	scheduled := repository.NewScheduledRepo(db)
	require.NoError(t, accounts.Create(ctx, repository.Account{ID: "a1", Name: "Courant", Type: "checking"}))

	// nextDate in the past: occurrences before `from` are dropped
	seedScheduled(t, scheduled, repository.ScheduledTransaction{
		ID: "s1", Description: "Loyer", Amount: 850, Type: "expense",
		Frequency: "monthly", AccountID: "a1", NextDate: "2025-01-01", Category: "rent",
	})

	entries, err := (&ForecastService{Scheduled: scheduled}).Project(ctx, day("2025-03-10"), 60)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	require.Equal(t, "2025-04-01", entries[0].Date)
}
