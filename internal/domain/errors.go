package domain

import "errors"

var (
	ErrNoLeagues        = errors.New("no leagues available")
	ErrLeagueNotFound   = errors.New("league not found")
	ErrLineNotFound     = errors.New("basket line not found")
	ErrLastLine         = errors.New("the last basket line cannot be removed")
	ErrCurrencyNotFound = errors.New("currency not found in catalog")
	ErrExportNotFound   = errors.New("export not found")
	ErrExportsDisabled  = errors.New("export storage is disabled")
	ErrSessionNotReady  = errors.New("session is not ready")
)
