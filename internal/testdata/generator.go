// Package testdata builds small sample datasets for tests.
package testdata

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dmx/dmxmoney/internal/database/repository"
)

// Snapshot returns a self-consistent dataset: two accounts, a handful of
// categories, and transactions referencing them. IDs are fresh UUIDs per
// call, like the UI would assign.
func Snapshot() repository.Snapshot {
	checking := repository.Account{ID: uuid.NewString(), Name: "Compte courant", Type: "checking", InitialBalance: 1500, Color: "#3b82f6", Icon: "Wallet"}
	savings := repository.Account{ID: uuid.NewString(), Name: "Livret A", Type: "savings", InitialBalance: 8000, Color: "#22c55e", Icon: "PiggyBank"}

	groceries := repository.Category{ID: uuid.NewString(), Name: "Courses", Icon: "ShoppingCart", Color: "#f59e0b"}
	salary := repository.Category{ID: uuid.NewString(), Name: "Salaire", Icon: "Banknote", Color: "#22c55e"}
	rent := repository.Category{ID: uuid.NewString(), Name: "Loyer", Icon: "Home", Color: "#ef4444"}

	var txns []repository.Transaction
	for i, tc := range []struct {
		date     string
		kind     string
		amount   float64
		category string
	}{
		{"2025-01-05", "income", 2400, salary.ID},
		{"2025-01-06", "expense", 850, rent.ID},
		{"2025-01-09", "expense", 62.40, groceries.ID},
		{"2025-01-17", "expense", 48.15, groceries.ID},
		{"2025-02-05", "income", 2400, salary.ID},
	} {
		desc := fmt.Sprintf("opération %d", i+1)
		txns = append(txns, repository.Transaction{
			ID:          uuid.NewString(),
			Date:        tc.date,
			AccountID:   checking.ID,
			Type:        tc.kind,
			Amount:      tc.amount,
			Category:    tc.category,
			Description: &desc,
		})
	}

	include := true
	scheduled := []repository.ScheduledTransaction{
		{
			ID:                uuid.NewString(),
			Description:       "Loyer mensuel",
			Amount:            850,
			Type:              "expense",
			Frequency:         "monthly",
			AccountID:         checking.ID,
			NextDate:          "2025-03-01",
			Category:          rent.ID,
			IncludeInForecast: &include,
		},
		{
			ID:                uuid.NewString(),
			Description:       "Épargne automatique",
			Amount:            200,
			Type:              "transfer",
			Frequency:         "monthly",
			AccountID:         checking.ID,
			NextDate:          "2025-03-02",
			Category:          salary.ID,
			ToAccountID:       &savings.ID,
			IncludeInForecast: &include,
		},
	}

	return repository.Snapshot{
		Accounts:     []repository.Account{checking, savings},
		Transactions: txns,
		Categories:   []repository.Category{groceries, salary, rent},
		Scheduled:    scheduled,
	}
}
