package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmx/dmxmoney/internal/database/repository"
)

const dateLayout = "2006-01-02"

// ForecastService projects scheduled transactions over a horizon.
type ForecastService struct {
	Scheduled *repository.ScheduledRepo
}

// ForecastEntry is one projected occurrence of a scheduled transaction.
// Transfers produce two entries, a debit on the source account and a credit
// on the destination.
type ForecastEntry struct {
	Date        string          `json:"date"`
	AccountID   string          `json:"accountId"`
	Amount      decimal.Decimal `json:"amount"`
	ScheduledID string          `json:"scheduledId"`
	Description string          `json:"description"`
}

// Project expands every scheduled transaction into its occurrences from
// `from` (inclusive) through `days` days ahead, sorted by date. Rows with
// includeInForecast stored false are skipped; an unset flag counts as true.
// No occurrence is emitted past a row's endDate.
func (s *ForecastService) Project(ctx context.Context, from time.Time, days int) ([]ForecastEntry, error) {
	items, err := s.Scheduled.List(ctx)
	if err != nil {
		return nil, err
	}

	from = truncateDay(from)
	horizon := from.AddDate(0, 0, days)

	var out []ForecastEntry
	for _, item := range items {
		if item.IncludeInForecast != nil && !*item.IncludeInForecast {
			continue
		}
		next, err := time.Parse(dateLayout, item.NextDate)
		if err != nil {
			return nil, fmt.Errorf("scheduled %s: bad nextDate %q: %w", item.ID, item.NextDate, err)
		}
		var end *time.Time
		if item.EndDate != nil {
			e, err := time.Parse(dateLayout, *item.EndDate)
			if err != nil {
				return nil, fmt.Errorf("scheduled %s: bad endDate %q: %w", item.ID, *item.EndDate, err)
			}
			end = &e
		}

		amount := decimal.NewFromFloat(item.Amount)
		for !next.After(horizon) {
			if end != nil && next.After(*end) {
				break
			}
			if !next.Before(from) {
				out = append(out, occurrences(item, next, amount)...)
			}
			if item.Frequency == "once" {
				break
			}
			next = nextOccurrence(item.Frequency, next)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].AccountID < out[j].AccountID
	})
	return out, nil
}

func occurrences(item repository.ScheduledTransaction, date time.Time, amount decimal.Decimal) []ForecastEntry {
	day := date.Format(dateLayout)
	if item.Type == "transfer" && item.ToAccountID != nil {
		return []ForecastEntry{
			{Date: day, AccountID: item.AccountID, Amount: amount.Neg(), ScheduledID: item.ID, Description: item.Description},
			{Date: day, AccountID: *item.ToAccountID, Amount: amount, ScheduledID: item.ID, Description: item.Description},
		}
	}
	if item.Type != "income" {
		amount = amount.Neg()
	}
	return []ForecastEntry{
		{Date: day, AccountID: item.AccountID, Amount: amount, ScheduledID: item.ID, Description: item.Description},
	}
}

func nextOccurrence(frequency string, d time.Time) time.Time {
	switch frequency {
	case "daily":
		return d.AddDate(0, 0, 1)
	case "weekly":
		return d.AddDate(0, 0, 7)
	case "biweekly":
		return d.AddDate(0, 0, 14)
	case "bimonthly":
		return d.AddDate(0, 0, 15)
	case "fourweekly":
		return d.AddDate(0, 0, 28)
	case "monthly":
		return d.AddDate(0, 1, 0)
	case "bimestrial":
		return d.AddDate(0, 2, 0)
	case "quarterly":
		return d.AddDate(0, 3, 0)
	case "fourmonthly":
		return d.AddDate(0, 4, 0)
	case "semiannual":
		return d.AddDate(0, 6, 0)
	case "annual":
		return d.AddDate(1, 0, 0)
	case "biennial":
		return d.AddDate(2, 0, 0)
	default:
		return d.AddDate(0, 1, 0)
	}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
