package adapters

import (
	"context"

	"poeconv/internal/domain"

	"github.com/google/uuid"
)

type CatalogSource interface {
	GetCurrencyPage(ctx context.Context, league string, page int) (domain.ListingPage, error)
}

type LeagueSource interface {
	GetLeagues(ctx context.Context) ([]domain.League, error)
}

type CatalogCache interface {
	Get(ctx context.Context, league string) (domain.Catalog, bool)
	Set(ctx context.Context, league string, catalog domain.Catalog)
	Del(ctx context.Context, league string)
}

type ExportRepository interface {
	Save(ctx context.Context, export domain.StoredExport) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.StoredExport, error)
}
