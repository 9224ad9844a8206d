package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmx/dmxmoney/internal/database/repository"
	"github.com/dmx/dmxmoney/internal/service"
)

// Store bundles everything the operations reach into.
type Store struct {
	Accounts     *repository.AccountRepo
	Transactions *repository.TransactionRepo
	Categories   *repository.CategoryRepo
	Scheduled    *repository.ScheduledRepo
	Settings     *repository.SettingsRepo
	Import       *repository.ImportRepo
	Balances     *service.BalanceService
	Forecast     *service.ForecastService
}

type idParams struct {
	ID string `json:"id"`
}

type forecastParams struct {
	Days int `json:"days"`
}

const defaultForecastDays = 365

func decode[T any](params json.RawMessage) (T, error) {
	var v T
	if len(params) == 0 {
		return v, fmt.Errorf("missing payload")
	}
	if err := json.Unmarshal(params, &v); err != nil {
		return v, fmt.Errorf("invalid payload: %w", err)
	}
	return v, nil
}

// RegisterStore wires every store operation into the server. Operation
// names and payload shapes are the contract with the desktop shell.
func RegisterStore(s *Server, st Store) {
	// accounts
	s.Register("list_accounts", func(ctx context.Context, _ json.RawMessage) (any, error) {
		accounts, err := st.Accounts.List(ctx)
		if err != nil {
			return nil, opError(err, "récupération des comptes")
		}
		return accounts, nil
	})
	s.Register("create_account", func(ctx context.Context, params json.RawMessage) (any, error) {
		a, err := decode[repository.Account](params)
		if err != nil {
			return nil, err
		}
		a.Normalize()
		if err := st.Accounts.Create(ctx, a); err != nil {
			return nil, opError(err, "ajout du compte")
		}
		return nil, nil
	})
	s.Register("update_account", func(ctx context.Context, params json.RawMessage) (any, error) {
		a, err := decode[repository.Account](params)
		if err != nil {
			return nil, err
		}
		a.Normalize()
		if err := st.Accounts.Update(ctx, a); err != nil {
			return nil, opError(err, "mise à jour du compte")
		}
		return nil, nil
	})
	s.Register("delete_account", func(ctx context.Context, params json.RawMessage) (any, error) {
		p, err := decode[idParams](params)
		if err != nil {
			return nil, err
		}
		if err := st.Accounts.DeleteCascade(ctx, p.ID); err != nil {
			return nil, opError(err, "suppression du compte")
		}
		return nil, nil
	})

	// transactions
	s.Register("list_transactions", func(ctx context.Context, _ json.RawMessage) (any, error) {
		txns, err := st.Transactions.List(ctx)
		if err != nil {
			return nil, opError(err, "récupération des transactions")
		}
		return txns, nil
	})
	s.Register("create_transaction", func(ctx context.Context, params json.RawMessage) (any, error) {
		t, err := decode[repository.Transaction](params)
		if err != nil {
			return nil, err
		}
		if err := st.Transactions.Create(ctx, t); err != nil {
			return nil, opError(err, "ajout de transaction")
		}
		return nil, nil
	})
	s.Register("update_transaction", func(ctx context.Context, params json.RawMessage) (any, error) {
		t, err := decode[repository.Transaction](params)
		if err != nil {
			return nil, err
		}
		if err := st.Transactions.Update(ctx, t); err != nil {
			return nil, opError(err, "mise à jour de transaction")
		}
		return nil, nil
	})
	s.Register("delete_transaction", func(ctx context.Context, params json.RawMessage) (any, error) {
		p, err := decode[idParams](params)
		if err != nil {
			return nil, err
		}
		if err := st.Transactions.Delete(ctx, p.ID); err != nil {
			return nil, opError(err, "suppression de transaction")
		}
		return nil, nil
	})

	// categories
	s.Register("list_categories", func(ctx context.Context, _ json.RawMessage) (any, error) {
		cats, err := st.Categories.List(ctx)
		if err != nil {
			return nil, opError(err, "récupération des catégories")
		}
		return cats, nil
	})
	s.Register("create_category", func(ctx context.Context, params json.RawMessage) (any, error) {
		c, err := decode[repository.Category](params)
		if err != nil {
			return nil, err
		}
		if err := st.Categories.Create(ctx, c); err != nil {
			return nil, opError(err, "ajout de catégorie")
		}
		return nil, nil
	})
	s.Register("update_category", func(ctx context.Context, params json.RawMessage) (any, error) {
		c, err := decode[repository.Category](params)
		if err != nil {
			return nil, err
		}
		if err := st.Categories.Update(ctx, c); err != nil {
			return nil, opError(err, "mise à jour de catégorie")
		}
		return nil, nil
	})
	s.Register("delete_category", func(ctx context.Context, params json.RawMessage) (any, error) {
		p, err := decode[idParams](params)
		if err != nil {
			return nil, err
		}
		if err := st.Categories.Delete(ctx, p.ID); err != nil {
			return nil, opError(err, "suppression de catégorie")
		}
		return nil, nil
	})

	// scheduled transactions
	s.Register("list_scheduled", func(ctx context.Context, _ json.RawMessage) (any, error) {
		items, err := st.Scheduled.List(ctx)
		if err != nil {
			return nil, opError(err, "récupération des échéances")
		}
		return items, nil
	})
	s.Register("create_scheduled", func(ctx context.Context, params json.RawMessage) (any, error) {
		sc, err := decode[repository.ScheduledTransaction](params)
		if err != nil {
			return nil, err
		}
		if err := st.Scheduled.Create(ctx, sc); err != nil {
			return nil, opError(err, "ajout d'échéance")
		}
		return nil, nil
	})
	s.Register("update_scheduled", func(ctx context.Context, params json.RawMessage) (any, error) {
		sc, err := decode[repository.ScheduledTransaction](params)
		if err != nil {
			return nil, err
		}
		if err := st.Scheduled.Update(ctx, sc); err != nil {
			return nil, opError(err, "mise à jour d'échéance")
		}
		return nil, nil
	})
	s.Register("delete_scheduled", func(ctx context.Context, params json.RawMessage) (any, error) {
		p, err := decode[idParams](params)
		if err != nil {
			return nil, err
		}
		if err := st.Scheduled.Delete(ctx, p.ID); err != nil {
			return nil, opError(err, "suppression d'échéance")
		}
		return nil, nil
	})

	// bulk import
	s.Register("import_data", func(ctx context.Context, params json.RawMessage) (any, error) {
		snap, err := decode[repository.Snapshot](params)
		if err != nil {
			return nil, err
		}
		if err := st.Import.ReplaceAll(ctx, snap); err != nil {
			return nil, opError(err, "import des données")
		}
		return nil, nil
	})

	// settings
	s.Register("get_settings", func(ctx context.Context, _ json.RawMessage) (any, error) {
		settings, err := st.Settings.Get(ctx)
		if err != nil {
			return nil, opError(err, "récupération des paramètres")
		}
		return settings, nil
	})
	s.Register("save_settings", func(ctx context.Context, params json.RawMessage) (any, error) {
		settings, err := decode[repository.Settings](params)
		if err != nil {
			return nil, err
		}
		if err := st.Settings.Save(ctx, settings); err != nil {
			return nil, opError(err, "sauvegarde des paramètres")
		}
		return nil, nil
	})

	// derived data
	s.Register("get_balances", func(ctx context.Context, _ json.RawMessage) (any, error) {
		balances, err := st.Balances.Balances(ctx)
		if err != nil {
			return nil, opError(err, "calcul des soldes")
		}
		return balances, nil
	})
	s.Register("get_forecast", func(ctx context.Context, params json.RawMessage) (any, error) {
		days := defaultForecastDays
		if len(params) > 0 {
			p, err := decode[forecastParams](params)
			if err != nil {
				return nil, err
			}
			if p.Days > 0 {
				days = p.Days
			}
		}
		entries, err := st.Forecast.Project(ctx, time.Now(), days)
		if err != nil {
			return nil, opError(err, "calcul des prévisions")
		}
		return entries, nil
	})
}
