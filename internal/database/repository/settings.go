package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmx/dmxmoney/internal/database"
)

// SettingsRepo handles the singleton settings row (id fixed to 1).
type SettingsRepo struct {
	db *sql.DB
}

func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// Get returns nil when settings have never been saved. Window placement is
// reconstructed only when both halves of a pair were stored; a lone x or
// width is treated as no placement at all.
func (r *SettingsRepo) Get(ctx context.Context) (*Settings, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT theme, "primaryColor", "displayStyle",
	       "windowPositionX", "windowPositionY", "windowSizeWidth", "windowSizeHeight",
	       "accountGroups", "customGroups", "customGroupsOrder", "accountsOrder",
	       "lastSeenVersion", "componentSpacing", "componentPadding"
	FROM settings WHERE id = 1`)

	var s Settings
	var posX, posY, sizeW, sizeH sql.NullInt64
	var groups, custom, customOrder, acctOrder, lastSeen sql.NullString
	err := row.Scan(&s.Theme, &s.PrimaryColor, &s.DisplayStyle,
		&posX, &posY, &sizeW, &sizeH,
		&groups, &custom, &customOrder, &acctOrder,
		&lastSeen, &s.ComponentSpacing, &s.ComponentPadding)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, database.ClassifyErr(err)
	}

	if posX.Valid && posY.Valid {
		s.WindowPosition = &WindowPosition{X: int(posX.Int64), Y: int(posY.Int64)}
	}
	if sizeW.Valid && sizeH.Valid {
		s.WindowSize = &WindowSize{Width: int(sizeW.Int64), Height: int(sizeH.Int64)}
	}
	s.AccountGroups = strPtr(groups)
	s.CustomGroups = strPtr(custom)
	s.CustomGroupsOrder = strPtr(customOrder)
	s.AccountsOrder = strPtr(acctOrder)
	s.LastSeenVersion = strPtr(lastSeen)
	return &s, nil
}

// Save upserts the singleton row in a single statement, so it is atomic
// even without an explicit transaction.
func (r *SettingsRepo) Save(ctx context.Context, s Settings) error {
	var posX, posY, sizeW, sizeH *int
	if s.WindowPosition != nil {
		posX, posY = &s.WindowPosition.X, &s.WindowPosition.Y
	}
	if s.WindowSize != nil {
		sizeW, sizeH = &s.WindowSize.Width, &s.WindowSize.Height
	}

	_, err := r.db.ExecContext(ctx, `
	INSERT INTO settings (id, theme, "primaryColor", "displayStyle",
	 "windowPositionX", "windowPositionY", "windowSizeWidth", "windowSizeHeight",
	 "accountGroups", "customGroups", "customGroupsOrder", "accountsOrder",
	 "lastSeenVersion", "componentSpacing", "componentPadding")
	VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 theme = excluded.theme,
	 "primaryColor" = excluded."primaryColor",
	 "displayStyle" = excluded."displayStyle",
	 "windowPositionX" = excluded."windowPositionX",
	 "windowPositionY" = excluded."windowPositionY",
	 "windowSizeWidth" = excluded."windowSizeWidth",
	 "windowSizeHeight" = excluded."windowSizeHeight",
	 "accountGroups" = excluded."accountGroups",
	 "customGroups" = excluded."customGroups",
	 "customGroupsOrder" = excluded."customGroupsOrder",
	 "accountsOrder" = excluded."accountsOrder",
	 "lastSeenVersion" = excluded."lastSeenVersion",
	 "componentSpacing" = excluded."componentSpacing",
	 "componentPadding" = excluded."componentPadding"`,
		s.Theme, s.PrimaryColor, s.DisplayStyle,
		posX, posY, sizeW, sizeH,
		s.AccountGroups, s.CustomGroups, s.CustomGroupsOrder, s.AccountsOrder,
		s.LastSeenVersion, s.ComponentSpacing, s.ComponentPadding)
	return database.ClassifyErr(err)
}
