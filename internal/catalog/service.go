package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"poeconv/internal/adapters"
	"poeconv/internal/domain"
	"poeconv/internal/metrics"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

var (
	ErrMissingItems = errors.New("catalog payload has no item list")
	ErrEmptyCatalog = errors.New("catalog payload has no usable items")
)

const (
	defaultMaxPages = 1
	loadTimeout     = 30 * time.Second
)

// Result is a catalog fetch outcome. Err is the reason the fallback was used, nil otherwise.
type Result struct {
	Catalog domain.Catalog
	Err     error
}

func (r Result) Degraded() bool {
	return r.Catalog.Degraded
}

type Service struct {
	source   adapters.CatalogSource
	cache    adapters.CatalogCache
	maxPages int
	metrics  *metrics.Metrics
	group    singleflight.Group
}

// Fetch returns the catalog for league. It never fails: any error yields the fallback catalog.
// Successful catalogs are memoized per league; fallbacks are not.
func (s *Service) Fetch(ctx context.Context, league string) Result {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, league); ok {
			s.metrics.RecordCatalogFetch(metrics.OutcomeCacheHit)
			return Result{Catalog: cloneCatalog(cached)}
		}
	}

	v, err, _ := s.group.Do(league, func() (any, error) {
		// Shared by every caller joining this key, so it must not die with the first caller's context.
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		loaded, loadErr := s.load(loadCtx, league)
		if loadErr != nil {
			return nil, loadErr
		}
		if s.cache != nil {
			s.cache.Set(loadCtx, league, loaded)
		}
		return loaded, nil
	})
	if err != nil {
		logrus.WithError(err).WithField("league", league).Warn("Catalog fetch failed, serving fallback catalog")
		s.metrics.RecordCatalogFetch(metrics.OutcomeFallback)
		return Result{Catalog: Fallback(league), Err: err}
	}

	s.metrics.RecordCatalogFetch(metrics.OutcomeSuccess)
	return Result{Catalog: cloneCatalog(v.(domain.Catalog))}
}

// Invalidate drops the memoized catalog of a league.
func (s *Service) Invalidate(ctx context.Context, league string) {
	if s.cache != nil {
		s.cache.Del(ctx, league)
	}
}

func (s *Service) load(ctx context.Context, league string) (domain.Catalog, error) {
	first, err := s.source.GetCurrencyPage(ctx, league, 1)
	if err != nil {
		return domain.Catalog{}, err
	}
	if first.Items == nil {
		return domain.Catalog{}, fmt.Errorf("league %q page 1: %w", league, ErrMissingItems)
	}

	listings := first.Items
	lastPage := min(first.Pages, s.maxPages)
	for page := 2; page <= lastPage; page++ {
		next, pageErr := s.source.GetCurrencyPage(ctx, league, page)
		if pageErr != nil {
			return domain.Catalog{}, pageErr
		}
		if next.Items == nil {
			return domain.Catalog{}, fmt.Errorf("league %q page %d: %w", league, page, ErrMissingItems)
		}
		listings = append(listings, next.Items...)
	}

	items := NormalizeAll(listings)
	if len(items) == 0 {
		return domain.Catalog{}, fmt.Errorf("league %q: %w", league, ErrEmptyCatalog)
	}

	return domain.Catalog{
		League:      league,
		CurrentPage: first.CurrentPage,
		Pages:       first.Pages,
		Total:       first.Total,
		Items:       items,
	}, nil
}

func cloneCatalog(c domain.Catalog) domain.Catalog {
	c.Items = slices.Clone(c.Items)
	return c
}

func NewService(source adapters.CatalogSource, cache adapters.CatalogCache, maxPages int, m *metrics.Metrics) *Service {
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}
	return &Service{source: source, cache: cache, maxPages: maxPages, metrics: m}
}
