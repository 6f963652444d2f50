package league

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"poeconv/internal/adapters"
	"poeconv/internal/domain"
)

// Registry holds the league list fetched at startup and the active league key.
type Registry struct {
	source        adapters.LeagueSource
	currentSeason string
	fallbackKey   string

	mu      sync.RWMutex
	leagues []domain.League
	active  string
}

// Load fetches the league list, replacing any previous one, and activates the default league.
// An empty list is an error; there is no league to invent.
func (r *Registry) Load(ctx context.Context) ([]domain.League, error) {
	leagues, err := r.source.GetLeagues(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load leagues: %w", err)
	}
	if len(leagues) == 0 {
		return nil, domain.ErrNoLeagues
	}

	def, _ := DefaultLeague(leagues, r.currentSeason, r.fallbackKey)

	r.mu.Lock()
	r.leagues = slices.Clone(leagues)
	r.active = def.ID
	r.mu.Unlock()

	return slices.Clone(leagues), nil
}

func (r *Registry) Leagues() []domain.League {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.leagues)
}

// Active returns the selected league key, empty before a successful Load.
func (r *Registry) Active() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

func (r *Registry) Find(key string) (domain.League, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx := slices.IndexFunc(r.leagues, func(l domain.League) bool { return l.ID == key })
	if idx < 0 {
		return domain.League{}, false
	}
	return r.leagues[idx], true
}

// Select makes key the active league. Selecting the active league again reports changed=false.
func (r *Registry) Select(key string) (changed bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !slices.ContainsFunc(r.leagues, func(l domain.League) bool { return l.ID == key }) {
		return false, domain.ErrLeagueNotFound
	}
	if r.active == key {
		return false, nil
	}
	r.active = key
	return true, nil
}

// DefaultLeague picks, in order: the league named currentSeason, the league keyed fallbackKey, the first league.
func DefaultLeague(leagues []domain.League, currentSeason, fallbackKey string) (domain.League, bool) {
	if len(leagues) == 0 {
		return domain.League{}, false
	}
	if currentSeason != "" {
		for _, l := range leagues {
			if l.Text == currentSeason {
				return l, true
			}
		}
	}
	if fallbackKey != "" {
		for _, l := range leagues {
			if l.ID == fallbackKey {
				return l, true
			}
		}
	}
	return leagues[0], true
}

func NewRegistry(source adapters.LeagueSource, currentSeason, fallbackKey string) *Registry {
	return &Registry{source: source, currentSeason: currentSeason, fallbackKey: fallbackKey}
}
