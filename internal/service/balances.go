// Package service holds the derived-data computations the desktop shell
// asks for on top of the raw store: per-account balances and the scheduled
// transaction forecast.
package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dmx/dmxmoney/internal/database/repository"
)

// BalanceService computes per-account balances.
type BalanceService struct {
	Accounts     *repository.AccountRepo
	Transactions *repository.TransactionRepo
}

// AccountBalance is one account's current balance.
type AccountBalance struct {
	AccountID string          `json:"accountId"`
	Balance   decimal.Decimal `json:"balance"`
}

// Balances returns initialBalance plus the signed sum of each account's
// transactions. Amounts are stored positive; income adds, everything else
// (expense, transfer legs) subtracts. Exact decimal arithmetic so a long
// history does not drift.
func (s *BalanceService) Balances(ctx context.Context) ([]AccountBalance, error) {
	accounts, err := s.Accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	txns, err := s.Transactions.List(ctx)
	if err != nil {
		return nil, err
	}

	sums := make(map[string]decimal.Decimal, len(accounts))
	for _, t := range txns {
		amt := decimal.NewFromFloat(t.Amount)
		if t.Type != "income" {
			amt = amt.Neg()
		}
		sums[t.AccountID] = sums[t.AccountID].Add(amt)
	}

	out := make([]AccountBalance, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, AccountBalance{
			AccountID: a.ID,
			Balance:   decimal.NewFromFloat(a.InitialBalance).Add(sums[a.ID]),
		})
	}
	return out, nil
}
