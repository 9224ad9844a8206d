package repository

import "database/sql"

// Fallbacks applied when the UI omits the cosmetic account fields.
const (
	defaultAccountColor = "#3b82f6"
	defaultAccountIcon  = "Wallet"
)

// Account represents an account row. IDs are caller-assigned (the UI
// generates them), never auto-incremented.
type Account struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	InitialBalance float64 `json:"initialBalance"`
	Color          string  `json:"color"`
	Icon           string  `json:"icon"`
}

// Normalize fills the cosmetic fields with the product fallbacks.
func (a *Account) Normalize() {
	if a.Color == "" {
		a.Color = defaultAccountColor
	}
	if a.Icon == "" {
		a.Icon = defaultAccountIcon
	}
}

// Transaction represents a transaction row. Amounts are stored positive;
// the sign comes from Type (income/expense). LinkedTransactionID pairs the
// two legs of a transfer and is advisory only, not a schema-level FK.
type Transaction struct {
	ID                  string  `json:"id"`
	Date                string  `json:"date"`
	AccountID           string  `json:"accountId"`
	Type                string  `json:"type"`
	Amount              float64 `json:"amount"`
	Category            string  `json:"category"`
	Description         *string `json:"description"`
	Checked             bool    `json:"checked"`
	IsTransfer          bool    `json:"isTransfer"`
	LinkedTransactionID *string `json:"linkedTransactionId"`
}

// Category represents a category row. Transactions reference categories by
// free-text tag, not by FK.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// ScheduledTransaction represents a recurring transaction template.
type ScheduledTransaction struct {
	ID                string  `json:"id"`
	Description       string  `json:"description"`
	Amount            float64 `json:"amount"`
	Type              string  `json:"type"`
	Frequency         string  `json:"frequency"`
	AccountID         string  `json:"accountId"`
	NextDate          string  `json:"nextDate"`
	Category          string  `json:"category"`
	ToAccountID       *string `json:"toAccountId"`
	IncludeInForecast *bool   `json:"includeInForecast"`
	EndDate           *string `json:"endDate"`
}

// WindowPosition is the persisted window placement.
type WindowPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// WindowSize is the persisted window dimensions.
type WindowSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Settings is the singleton application settings record. The group and
// order fields hold opaque JSON produced by the UI.
type Settings struct {
	Theme             string          `json:"theme"`
	PrimaryColor      string          `json:"primaryColor"`
	DisplayStyle      string          `json:"displayStyle"`
	WindowPosition    *WindowPosition `json:"windowPosition"`
	WindowSize        *WindowSize     `json:"windowSize"`
	AccountGroups     *string         `json:"accountGroups"`
	CustomGroups      *string         `json:"customGroups"`
	CustomGroupsOrder *string         `json:"customGroupsOrder"`
	AccountsOrder     *string         `json:"accountsOrder"`
	LastSeenVersion   *string         `json:"lastSeenVersion"`
	ComponentSpacing  int             `json:"componentSpacing"`
	ComponentPadding  int             `json:"componentPadding"`
}

// Snapshot is a full dataset as produced by the UI's export feature.
// Settings are deliberately not part of it.
type Snapshot struct {
	Accounts     []Account              `json:"accounts"`
	Transactions []Transaction          `json:"transactions"`
	Categories   []Category             `json:"categories"`
	Scheduled    []ScheduledTransaction `json:"scheduled"`
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func strPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func boolPtr(nb sql.NullBool) *bool {
	if !nb.Valid {
		return nil
	}
	return &nb.Bool
}
