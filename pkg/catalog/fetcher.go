package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Sternrassler/pokeapi-catalog/pkg/client"
	"github.com/Sternrassler/pokeapi-catalog/pkg/logging"
	"github.com/Sternrassler/pokeapi-catalog/pkg/pagination"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// Prometheus metrics for catalog fetches.
var (
	fetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_fetches_total",
		Help: "Total catalog fetches by dimension and outcome",
	}, []string{"dimension", "outcome"})

	itemsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_items_dropped_total",
		Help: "Candidates dropped because their detail or species call failed",
	}, []string{"stage"}) // "detail", "species"

	fetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_fetch_duration_seconds",
		Help:    "Catalog fetch duration in seconds by dimension",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"dimension"})
)

// API is the subset of the PokeAPI client the fetcher uses.
type API interface {
	ListPokemon(ctx context.Context, offset, limit int) (*client.NamedResourceList, error)
	GetPokemon(ctx context.Context, idOrName string) (*client.Pokemon, error)
	GetSpeciesByURL(ctx context.Context, speciesURL string) (*client.Species, error)
	GetType(ctx context.Context, name string) (*client.Type, error)
	GetGeneration(ctx context.Context, idOrName string) (*client.Generation, error)
	GetHabitat(ctx context.Context, idOrName string) (*client.Habitat, error)
	GetAbility(ctx context.Context, name string) (*client.Ability, error)
}

// Config holds fetcher configuration.
type Config struct {
	// PageSize is the number of candidates fetched per page.
	PageSize int

	// MaxConcurrency caps in-flight candidates during fan-out. Zero means
	// no cap.
	MaxConcurrency int

	// NameIndexLimit is the size of the name index searched by
	// DimensionName.
	NameIndexLimit int

	// ItemTimeout bounds the detail and species calls of one candidate.
	// An item that runs past it is dropped. Zero disables the bound.
	ItemTimeout time.Duration
}

// DefaultConfig returns the default fetcher configuration.
func DefaultConfig() Config {
	return Config{
		PageSize:       20,
		MaxConcurrency: 0,
		NameIndexLimit: 2000,
	}
}

// Page is one fetched page.
type Page struct {
	Items []Item `json:"items"`
	// HasMore reports whether candidates remain beyond this page's window,
	// before post-filtering.
	HasMore bool `json:"has_more"`
}

func emptyPage() *Page {
	return &Page{Items: []Item{}}
}

// Fetcher resolves catalog pages against the upstream API.
type Fetcher struct {
	api     API
	config  Config
	details *pagination.BatchFetcher[client.NamedAPIResource, Item]
	logger  zerolog.Logger
}

// NewFetcher creates a fetcher. Non-positive sizes fall back to the
// defaults.
func NewFetcher(api API, cfg Config) *Fetcher {
	defaults := DefaultConfig()
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaults.PageSize
	}
	if cfg.NameIndexLimit <= 0 {
		cfg.NameIndexLimit = defaults.NameIndexLimit
	}

	f := &Fetcher{
		api:    api,
		config: cfg,
		logger: logging.NewLogger("catalog-fetcher"),
	}
	f.details = pagination.NewBatchFetcher(f.loadItem, pagination.Config{
		MaxConcurrency: cfg.MaxConcurrency,
		Timeout:        cfg.ItemTimeout,
	})
	return f
}

// Fetch resolves one page of dim/value under filters.
//
// Invalid filters return ErrInvalidFilter before any upstream call. A failed
// seed call returns an empty page and a *SeedFetchError. Failed detail or
// species calls drop their candidate only.
func (f *Fetcher) Fetch(ctx context.Context, dim Dimension, value string, filters FilterSet) (*Page, error) {
	start := time.Now()
	dimLabel := dim.String()
	defer func() {
		fetchDuration.WithLabelValues(dimLabel).Observe(time.Since(start).Seconds())
	}()

	if err := f.validate(dim, value, filters); err != nil {
		fetchesTotal.WithLabelValues(dimLabel, "invalid").Inc()
		return emptyPage(), err
	}

	page := filters.PageNumber()
	logger := f.logger.With().
		Str("dimension", dimLabel).
		Str("value", value).
		Int("page", page).
		Logger()

	items, candidates, hasMore, err := f.resolve(ctx, dim, value, filters, page)
	if ctx.Err() != nil {
		fetchesTotal.WithLabelValues(dimLabel, "canceled").Inc()
		return emptyPage(), ctx.Err()
	}
	if err != nil {
		fetchesTotal.WithLabelValues(dimLabel, "seed_error").Inc()
		logger.Warn().Err(err).Msg("Seed fetch failed, reporting empty page")
		return emptyPage(), &SeedFetchError{Dimension: dim, Value: value, Err: err}
	}
	if dropped := candidates - len(items); dropped > 0 {
		logger.Debug().Int("dropped", dropped).Int("candidates", candidates).Msg("Items dropped from page")
	}

	items = applyFilters(items, filters)
	sortItems(items, filters.Ordering)

	fetchesTotal.WithLabelValues(dimLabel, "ok").Inc()
	logger.Info().
		Int("candidates", candidates).
		Int("items", len(items)).
		Bool("has_more", hasMore).
		Dur("duration", time.Since(start)).
		Msg("Catalog page fetched")

	return &Page{Items: items, HasMore: hasMore}, nil
}

func (f *Fetcher) validate(dim Dimension, value string, filters FilterSet) error {
	if _, ok := dimensionNames[dim]; !ok {
		return fmt.Errorf("%w: unknown dimension %d", ErrInvalidFilter, int(dim))
	}
	if err := filters.Validate(); err != nil {
		return err
	}
	if _, ok := filters.NameID(); ok || !dim.usesValue() {
		return nil
	}
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: dimension %s requires a value", ErrInvalidFilter, dim)
	}
	if dim == DimensionRegion {
		if _, ok := GenerationName(value); !ok {
			return fmt.Errorf("%w: region %q", ErrInvalidFilter, value)
		}
	}
	return nil
}

// resolve seeds the page and enriches its candidates. The returned error
// is always a seed failure; enrichment failures only shrink items.
func (f *Fetcher) resolve(ctx context.Context, dim Dimension, value string, filters FilterSet, page int) ([]Item, int, bool, error) {
	if id, ok := filters.NameID(); ok {
		p, err := f.api.GetPokemon(ctx, strconv.Itoa(id))
		if client.IsNotFound(err) {
			return []Item{}, 0, false, nil
		}
		if err != nil {
			return nil, 0, false, err
		}
		item, err := f.withSpecies(ctx, p)
		if err != nil {
			f.logger.Debug().Err(err).Int("id", id).Msg("Lookup by id dropped")
			return []Item{}, 1, false, nil
		}
		return []Item{item}, 1, false, nil
	}

	candidates, hasMore, err := f.seed(ctx, dim, value, filters, page)
	if err != nil {
		return nil, 0, false, err
	}

	items, _ := pagination.Values(f.details.FetchAll(ctx, candidates))
	return items, len(candidates), hasMore, nil
}

// seed resolves the candidate window for a page and whether more
// candidates follow it.
func (f *Fetcher) seed(ctx context.Context, dim Dimension, value string, filters FilterSet, page int) ([]client.NamedAPIResource, bool, error) {
	offset, limit := pagination.Window(page, f.config.PageSize)

	if dim == DimensionNone {
		list, err := f.api.ListPokemon(ctx, offset, limit)
		if err != nil {
			return nil, false, err
		}
		return narrowByName(list.Results, filters.Name), list.HasNext(), nil
	}

	all, err := f.listCandidates(ctx, dim, value)
	if err != nil {
		return nil, false, err
	}
	all = narrowByName(all, filters.Name)

	window, hasMore := pagination.Slice(all, page, f.config.PageSize)
	return window, hasMore, nil
}

// listCandidates fetches the full candidate list of a category dimension.
func (f *Fetcher) listCandidates(ctx context.Context, dim Dimension, value string) ([]client.NamedAPIResource, error) {
	switch dim {
	case DimensionName:
		list, err := f.api.ListPokemon(ctx, 0, f.config.NameIndexLimit)
		if err != nil {
			return nil, err
		}
		return list.Results, nil

	case DimensionType:
		t, err := f.api.GetType(ctx, strings.ToLower(value))
		if err != nil {
			return nil, err
		}
		out := make([]client.NamedAPIResource, 0, len(t.Pokemon))
		for _, e := range t.Pokemon {
			out = append(out, e.Pokemon)
		}
		return out, nil

	case DimensionGeneration, DimensionRegion:
		g, err := f.api.GetGeneration(ctx, strings.ToLower(value))
		if err != nil {
			return nil, err
		}
		return g.PokemonSpecies, nil

	case DimensionHabitat:
		h, err := f.api.GetHabitat(ctx, strings.ToLower(value))
		if err != nil {
			return nil, err
		}
		return h.PokemonSpecies, nil

	case DimensionAbility:
		a, err := f.api.GetAbility(ctx, strings.ToLower(value))
		if err != nil {
			return nil, err
		}
		out := make([]client.NamedAPIResource, 0, len(a.Pokemon))
		for _, e := range a.Pokemon {
			out = append(out, e.Pokemon)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: unknown dimension %d", ErrInvalidFilter, int(dim))
}

// narrowByName keeps candidates whose name contains name, case-insensitively.
// Numeric names never narrow.
func narrowByName(candidates []client.NamedAPIResource, name string) []client.NamedAPIResource {
	if name == "" {
		return candidates
	}
	if _, numeric := (FilterSet{Name: name}).NameID(); numeric {
		return candidates
	}

	needle := strings.ToLower(name)
	out := candidates[:0:0]
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			out = append(out, c)
		}
	}
	return out
}

// loadItem fetches the detail and species payloads of one candidate.
func (f *Fetcher) loadItem(ctx context.Context, ref client.NamedAPIResource) (Item, error) {
	key := ref.Name
	if id := client.ResourceID(ref.URL); id > 0 {
		key = strconv.Itoa(id)
	}

	p, err := f.api.GetPokemon(ctx, key)
	if err != nil {
		if ctx.Err() == nil {
			itemsDropped.WithLabelValues("detail").Inc()
		}
		return Item{}, fmt.Errorf("detail %s: %w", key, err)
	}

	return f.withSpecies(ctx, p)
}

// withSpecies completes a detail payload with its species metadata.
func (f *Fetcher) withSpecies(ctx context.Context, p *client.Pokemon) (Item, error) {
	species, err := f.api.GetSpeciesByURL(ctx, p.Species.URL)
	if err != nil {
		if ctx.Err() == nil {
			itemsDropped.WithLabelValues("species").Inc()
		}
		return Item{}, fmt.Errorf("species of %s: %w", p.Name, err)
	}

	return NewItem(p, species), nil
}

// IsSeedFailure reports whether err came from a failed seed call.
func IsSeedFailure(err error) bool {
	return errors.Is(err, ErrSeedFetch)
}
