package calculator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"poeconv/internal/adapters"
	"poeconv/internal/basket"
	"poeconv/internal/catalog"
	"poeconv/internal/conversion"
	"poeconv/internal/domain"
	"poeconv/internal/league"
	"poeconv/internal/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const catalogLoadTimeout = 30 * time.Second

// CatalogFetcher is satisfied by *catalog.Service.
type CatalogFetcher interface {
	Fetch(ctx context.Context, league string) catalog.Result
	Invalidate(ctx context.Context, league string)
}

type Options struct {
	// ReferenceName picks the currency of the seeded basket row.
	ReferenceName string
	// TargetName picks the default conversion target while none is chosen.
	TargetName string
}

// Session is the single calculator instance of the process: league choice, catalog, basket and target.
// Network calls run without holding mu; a catalog is applied only if its league is still active.
type Session struct {
	leagues  *league.Registry
	catalogs CatalogFetcher
	exports  adapters.ExportRepository
	metrics  *metrics.Metrics
	opts     Options
	now      func() time.Time

	mu       sync.Mutex
	loadErr  error
	catalog  *domain.Catalog
	fetchErr error
	basket   *basket.Basket
	target   *domain.CurrencyItem
}

// Start loads the league list and the catalog of the default league.
// A league failure leaves the session in an error state, wrapping domain.ErrSessionNotReady, until Reload succeeds.
func (s *Session) Start(ctx context.Context) error {
	if _, err := s.leagues.Load(ctx); err != nil {
		s.metrics.RecordLeagueLoad(metrics.OutcomeError)
		err = fmt.Errorf("%w: %w", domain.ErrSessionNotReady, err)
		s.mu.Lock()
		s.loadErr = err
		s.mu.Unlock()
		return err
	}
	s.metrics.RecordLeagueLoad(metrics.OutcomeSuccess)

	s.mu.Lock()
	s.loadErr = nil
	s.mu.Unlock()

	active := s.leagues.Active()
	logrus.WithField("league", active).Info("Leagues loaded")
	s.loadCatalog(ctx, active)
	return nil
}

// Reload resets the basket and target, then starts over.
func (s *Session) Reload(ctx context.Context) error {
	if active := s.leagues.Active(); active != "" {
		s.catalogs.Invalidate(ctx, active)
	}

	s.mu.Lock()
	s.catalog = nil
	s.fetchErr = nil
	s.basket.Reset()
	s.target = nil
	s.mu.Unlock()

	return s.Start(ctx)
}

// SelectLeague switches the active league and refetches its catalog. Selecting the active league is a no-op.
func (s *Session) SelectLeague(ctx context.Context, key string) error {
	s.mu.Lock()
	if s.loadErr != nil {
		err := s.loadErr
		s.mu.Unlock()
		return err
	}
	prev := s.leagues.Active()
	changed, err := s.leagues.Select(key)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	logrus.WithFields(logrus.Fields{"from": prev, "to": key}).Info("League changed")
	s.catalogs.Invalidate(ctx, prev)
	s.loadCatalog(ctx, key)
	return nil
}

// RefreshCatalog drops the memoized catalog of the active league and fetches it again.
// applied is false when the league changed meanwhile or the fetch failed and the current catalog was kept.
func (s *Session) RefreshCatalog(ctx context.Context) (applied bool, err error) {
	key := s.leagues.Active()
	if key == "" {
		return false, domain.ErrSessionNotReady
	}
	s.catalogs.Invalidate(ctx, key)
	return s.loadCatalog(ctx, key), nil
}

// loadCatalog fetches outside the caller's cancellation: the result is session state, not a reply to one request.
func (s *Session) loadCatalog(ctx context.Context, key string) bool {
	fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), catalogLoadTimeout)
	defer cancel()
	res := s.catalogs.Fetch(fetchCtx, key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if active := s.leagues.Active(); active != key {
		s.metrics.RecordStaleDiscard()
		logrus.WithFields(logrus.Fields{"league": key, "active": active}).Info("Discarding catalog of inactive league")
		return false
	}
	// A failed refresh of the league already on screen keeps the good catalog and the basket bound to it.
	if res.Degraded() && s.catalog != nil && !s.catalog.Degraded && s.catalog.League == key {
		s.metrics.RecordDegradedKept()
		logrus.WithError(res.Err).WithField("league", key).Warn("Catalog refresh failed, keeping current catalog")
		return false
	}
	s.applyCatalog(res)
	return true
}

// applyCatalog must be called with mu held.
func (s *Session) applyCatalog(res catalog.Result) {
	c := res.Catalog
	s.catalog = &c
	s.fetchErr = res.Err

	s.basket.Rebind(s.catalog)
	if s.target != nil {
		s.target = s.catalog.Find(s.target.ID)
	}

	s.basket.Seed(s.catalog, s.opts.ReferenceName)
	if s.target == nil {
		s.target = basket.FindByName(s.catalog, s.opts.TargetName)
	}

	logrus.WithFields(logrus.Fields{
		"league":   c.League,
		"items":    len(c.Items),
		"degraded": c.Degraded,
	}).Info("Catalog applied")
}

func (s *Session) AddLine() (domain.LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.readyLocked(); err != nil {
		return domain.LineItem{}, err
	}
	return s.basket.AddLine(), nil
}

// RemoveLine deletes a row. The last remaining row is kept.
func (s *Session) RemoveLine(id domain.LineID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.basket.Line(id); !ok {
		return domain.ErrLineNotFound
	}
	if s.basket.Len() <= 1 {
		return domain.ErrLastLine
	}
	s.basket.RemoveLine(id)
	return nil
}

// SetLineCurrency points a row at a catalog item. An empty currencyID clears the selection.
func (s *Session) SetLineCurrency(id domain.LineID, currencyID string) (domain.LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.readyLocked(); err != nil {
		return domain.LineItem{}, err
	}

	var item *domain.CurrencyItem
	if currencyID != "" {
		if item = s.catalog.Find(currencyID); item == nil {
			return domain.LineItem{}, domain.ErrCurrencyNotFound
		}
	}
	if !s.basket.SetLineCurrency(id, item) {
		return domain.LineItem{}, domain.ErrLineNotFound
	}
	line, _ := s.basket.Line(id)
	return line, nil
}

// SetLineAmount stores text when it is a valid partial amount. accepted=false means the old text was kept.
func (s *Session) SetLineAmount(id domain.LineID, text string) (line domain.LineItem, accepted bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.basket.Line(id); !ok {
		return domain.LineItem{}, false, domain.ErrLineNotFound
	}
	accepted = s.basket.SetLineAmount(id, text)
	line, _ = s.basket.Line(id)
	return line, accepted, nil
}

// SetTarget chooses the conversion target. An empty currencyID clears it.
func (s *Session) SetTarget(currencyID string) (*domain.CurrencyItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.readyLocked(); err != nil {
		return nil, err
	}
	if currencyID == "" {
		s.target = nil
		return nil, nil
	}
	item := s.catalog.Find(currencyID)
	if item == nil {
		return nil, domain.ErrCurrencyNotFound
	}
	s.target = item
	return item, nil
}

// State snapshots the session and recomputes the converted value.
func (s *Session) State() (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		Leagues:      s.leagues.Leagues(),
		ActiveLeague: s.leagues.Active(),
		Lines:        s.basket.Lines(),
		Target:       s.target,
	}
	if err := s.readyLocked(); err != nil {
		return st, err
	}

	st.Degraded = s.catalog.Degraded
	if s.fetchErr != nil {
		st.CatalogError = s.fetchErr.Error()
	}
	st.Removable = len(st.Lines) > 1
	st.ConvertedValue = conversion.Convert(st.Lines, s.target)
	return st, nil
}

// Catalog lists catalog items whose name contains query, sorted by name.
func (s *Session) Catalog(query string) (CatalogView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.readyLocked(); err != nil {
		return CatalogView{}, err
	}
	return CatalogView{
		League:   s.catalog.League,
		Degraded: s.catalog.Degraded,
		Total:    len(s.catalog.Items),
		Items:    catalog.Search(s.catalog.Items, query),
	}, nil
}

// Quote converts a single amount between two catalog items.
func (s *Session) Quote(fromID, toID string, amount float64) (Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.readyLocked(); err != nil {
		return Quote{}, err
	}

	from := s.catalog.Find(fromID)
	to := s.catalog.Find(toID)
	if from == nil || to == nil {
		return Quote{}, domain.ErrCurrencyNotFound
	}

	s.metrics.RecordConversion()
	return Quote{
		From:   *from,
		To:     *to,
		Amount: amount,
		Rate:   conversion.ConvertCurrency(1, from, to),
		Value:  conversion.ConvertCurrency(amount, from, to),
	}, nil
}

// Export builds the downloadable document for the current basket.
func (s *Session) Export() (domain.ExportDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.readyLocked(); err != nil {
		return domain.ExportDocument{}, err
	}
	return buildExport(s.basket.Lines(), s.target), nil
}

// SaveExport stores the current export document.
func (s *Session) SaveExport(ctx context.Context) (domain.StoredExport, error) {
	if s.exports == nil {
		return domain.StoredExport{}, domain.ErrExportsDisabled
	}
	doc, err := s.Export()
	if err != nil {
		return domain.StoredExport{}, err
	}

	stored := domain.StoredExport{
		ID:        uuid.New(),
		League:    s.leagues.Active(),
		Document:  doc,
		CreatedAt: s.now().UTC(),
	}
	if err = s.exports.Save(ctx, stored); err != nil {
		return domain.StoredExport{}, err
	}
	s.metrics.RecordExport()
	return stored, nil
}

func (s *Session) GetExport(ctx context.Context, id uuid.UUID) (domain.StoredExport, error) {
	if s.exports == nil {
		return domain.StoredExport{}, domain.ErrExportsDisabled
	}
	return s.exports.GetByID(ctx, id)
}

// readyLocked must be called with mu held.
func (s *Session) readyLocked() error {
	if s.loadErr != nil {
		return s.loadErr
	}
	if s.catalog == nil {
		return domain.ErrSessionNotReady
	}
	return nil
}

// NewSession builds a session. exports may be nil, which disables stored exports.
func NewSession(leagues *league.Registry, catalogs CatalogFetcher, exports adapters.ExportRepository, m *metrics.Metrics, opts Options) *Session {
	return &Session{
		leagues:  leagues,
		catalogs: catalogs,
		exports:  exports,
		metrics:  m,
		opts:     opts,
		now:      time.Now,
		basket:   basket.New(),
	}
}
