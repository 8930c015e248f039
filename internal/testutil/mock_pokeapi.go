// Package testutil provides testing utilities for the PokeAPI catalog.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// APIRoot is the path prefix the mock serves under, mirroring the public API.
const APIRoot = "/api/v2"

// HabitatNames is the upstream habitat table, indexed by id-1.
var HabitatNames = []string{
	"cave", "forest", "grassland", "mountain", "rare",
	"rough-terrain", "sea", "urban", "waters-edge",
}

var romanNumerals = []string{"i", "ii", "iii", "iv", "v", "vi", "vii", "viii", "ix"}

// GenerationName returns the upstream name of generation n (1-9).
func GenerationName(n int) string {
	if n < 1 || n > len(romanNumerals) {
		return ""
	}
	return "generation-" + romanNumerals[n-1]
}

// AbilityFixture is one ability slot of a fixture Pokémon.
type AbilityFixture struct {
	Name   string
	Hidden bool
}

// PokemonFixture describes one Pokémon served by the mock.
type PokemonFixture struct {
	ID int
	// Name is lowercase, as upstream.
	Name string
	// Height in decimeters.
	Height int
	// Weight in hectograms.
	Weight     int
	Types      []string
	Abilities  []AbilityFixture
	Generation int
	// Habitat name; empty serves a null habitat.
	Habitat    string
	NoArtwork  bool
	NoSprite   bool
	NoEvoChain bool
}

// MockPokeAPI is a configurable in-process PokeAPI for tests.
type MockPokeAPI struct {
	server *httptest.Server

	mu        sync.RWMutex
	pokemon   []PokemonFixture
	handlers  map[string]http.HandlerFunc
	failures  map[string]int
	delays    map[string]time.Duration
	requests  map[string]int
	totalReqs int
}

// NewMockPokeAPI starts a mock serving the given fixtures. With no
// fixtures, DefaultFixtures is used.
func NewMockPokeAPI(fixtures ...PokemonFixture) *MockPokeAPI {
	if len(fixtures) == 0 {
		fixtures = DefaultFixtures()
	}
	sorted := append([]PokemonFixture(nil), fixtures...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	m := &MockPokeAPI{
		pokemon:  sorted,
		handlers: make(map[string]http.HandlerFunc),
		failures: make(map[string]int),
		delays:   make(map[string]time.Duration),
		requests: make(map[string]int),
	}
	m.server = httptest.NewServer(http.HandlerFunc(m.serve))
	return m
}

// URL returns the mock server root (without the API prefix).
func (m *MockPokeAPI) URL() string {
	return m.server.URL
}

// BaseURL returns the API root to configure clients with.
func (m *MockPokeAPI) BaseURL() string {
	return m.server.URL + APIRoot
}

// Close shuts down the mock server.
func (m *MockPokeAPI) Close() {
	m.server.Close()
}

// SetHandler overrides the response for an exact API path such as
// "/pokemon/25".
func (m *MockPokeAPI) SetHandler(path string, handler http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[normalizePath(path)] = handler
}

// FailPath makes an API path respond with the given status.
func (m *MockPokeAPI) FailPath(path string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[normalizePath(path)] = status
}

// SetDelay delays responses for an API path.
func (m *MockPokeAPI) SetDelay(path string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delays[normalizePath(path)] = d
}

// RequestCount returns how many requests hit an API path.
func (m *MockPokeAPI) RequestCount(path string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.requests[normalizePath(path)]
}

// TotalRequests returns the number of requests served.
func (m *MockPokeAPI) TotalRequests() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalReqs
}

// Reset clears request counters.
func (m *MockPokeAPI) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = make(map[string]int)
	m.totalReqs = 0
}

func normalizePath(path string) string {
	path = strings.TrimPrefix(path, APIRoot)
	path = strings.TrimRight(path, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

func (m *MockPokeAPI) serve(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.URL.Path, APIRoot+"/") {
		http.NotFound(w, r)
		return
	}
	path := normalizePath(r.URL.Path)

	m.mu.Lock()
	m.requests[path]++
	m.totalReqs++
	handler := m.handlers[path]
	status := m.failures[path]
	delay := m.delays[path]
	m.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}

	if status != 0 {
		writeJSON(w, status, map[string]string{"error": http.StatusText(status)})
		return
	}
	if handler != nil {
		handler(w, r)
		return
	}

	base := "http://" + r.Host + APIRoot
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")

	switch {
	case len(segments) == 1 && segments[0] == "pokemon":
		m.serveListing(w, r, base)
	case len(segments) == 2 && segments[0] == "pokemon":
		m.servePokemon(w, segments[1], base)
	case len(segments) == 2 && segments[0] == "pokemon-species":
		m.serveSpecies(w, segments[1], base)
	case len(segments) == 2 && segments[0] == "type":
		m.serveType(w, segments[1], base)
	case len(segments) == 2 && segments[0] == "generation":
		m.serveGeneration(w, segments[1], base)
	case len(segments) == 2 && segments[0] == "pokemon-habitat":
		m.serveHabitat(w, segments[1], base)
	case len(segments) == 2 && segments[0] == "ability":
		m.serveAbility(w, segments[1], base)
	default:
		writeNotFound(w)
	}
}

func (m *MockPokeAPI) serveListing(w http.ResponseWriter, r *http.Request, base string) {
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	total := len(m.pokemon)
	results := []map[string]string{}
	for i := offset; i < total && i < offset+limit; i++ {
		p := m.pokemon[i]
		results = append(results, namedResource(p.Name, fmt.Sprintf("%s/pokemon/%d/", base, p.ID)))
	}

	var next, previous any
	if offset+limit < total {
		next = fmt.Sprintf("%s/pokemon?offset=%d&limit=%d", base, offset+limit, limit)
	}
	if offset > 0 {
		prev := offset - limit
		if prev < 0 {
			prev = 0
		}
		previous = fmt.Sprintf("%s/pokemon?offset=%d&limit=%d", base, prev, limit)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":    total,
		"next":     next,
		"previous": previous,
		"results":  results,
	})
}

func (m *MockPokeAPI) find(idOrName string) (PokemonFixture, bool) {
	id, err := strconv.Atoi(idOrName)
	for _, p := range m.pokemon {
		if (err == nil && p.ID == id) || p.Name == idOrName {
			return p, true
		}
	}
	return PokemonFixture{}, false
}

func (m *MockPokeAPI) servePokemon(w http.ResponseWriter, idOrName, base string) {
	p, ok := m.find(idOrName)
	if !ok {
		writeNotFound(w)
		return
	}

	types := make([]map[string]any, 0, len(p.Types))
	for i, t := range p.Types {
		types = append(types, map[string]any{
			"slot": i + 1,
			"type": namedResource(t, fmt.Sprintf("%s/type/%s/", base, t)),
		})
	}

	abilities := make([]map[string]any, 0, len(p.Abilities))
	for i, a := range p.Abilities {
		abilities = append(abilities, map[string]any{
			"is_hidden": a.Hidden,
			"slot":      i + 1,
			"ability":   namedResource(a.Name, fmt.Sprintf("%s/ability/%s/", base, a.Name)),
		})
	}

	stats := make([]map[string]any, 0, 6)
	for i, name := range []string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"} {
		stats = append(stats, map[string]any{
			"base_stat": StatValue(p.ID, i),
			"effort":    0,
			"stat":      namedResource(name, fmt.Sprintf("%s/stat/%d/", base, i+1)),
		})
	}

	var sprite, artwork any
	if !p.NoSprite {
		sprite = fmt.Sprintf("https://sprites.example/pokemon/%d.png", p.ID)
	}
	if !p.NoArtwork {
		artwork = fmt.Sprintf("https://sprites.example/pokemon/other/official-artwork/%d.png", p.ID)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":     p.ID,
		"name":   p.Name,
		"height": p.Height,
		"weight": p.Weight,
		"sprites": map[string]any{
			"front_default": sprite,
			"other": map[string]any{
				"official-artwork": map[string]any{"front_default": artwork},
			},
		},
		"types":     types,
		"abilities": abilities,
		"stats":     stats,
		"species":   namedResource(p.Name, fmt.Sprintf("%s/pokemon-species/%d/", base, p.ID)),
	})
}

func (m *MockPokeAPI) serveSpecies(w http.ResponseWriter, idOrName, base string) {
	p, ok := m.find(idOrName)
	if !ok {
		writeNotFound(w)
		return
	}

	var habitat, evo any
	if p.Habitat != "" {
		habitat = namedResource(p.Habitat, fmt.Sprintf("%s/pokemon-habitat/%d/", base, habitatID(p.Habitat)))
	}
	if !p.NoEvoChain {
		evo = map[string]string{"url": fmt.Sprintf("%s/evolution-chain/%d/", base, (p.ID+2)/3)}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":              p.ID,
		"name":            p.Name,
		"generation":      namedResource(GenerationName(p.Generation), fmt.Sprintf("%s/generation/%d/", base, p.Generation)),
		"habitat":         habitat,
		"evolution_chain": evo,
	})
}

func (m *MockPokeAPI) serveType(w http.ResponseWriter, name, base string) {
	var entries []map[string]any
	found := false
	for _, p := range m.pokemon {
		for i, t := range p.Types {
			if t == name {
				found = true
				entries = append(entries, map[string]any{
					"slot":    i + 1,
					"pokemon": namedResource(p.Name, fmt.Sprintf("%s/pokemon/%d/", base, p.ID)),
				})
			}
		}
	}
	if !found && !isKnownType(name) {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"name": name, "pokemon": nonNil(entries)})
}

func (m *MockPokeAPI) serveGeneration(w http.ResponseWriter, idOrName, base string) {
	gen, err := strconv.Atoi(idOrName)
	if err != nil {
		for i := range romanNumerals {
			if GenerationName(i+1) == idOrName {
				gen = i + 1
			}
		}
	}
	if GenerationName(gen) == "" {
		writeNotFound(w)
		return
	}

	var species []map[string]string
	for _, p := range m.pokemon {
		if p.Generation == gen {
			species = append(species, namedResource(p.Name, fmt.Sprintf("%s/pokemon-species/%d/", base, p.ID)))
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":              gen,
		"name":            GenerationName(gen),
		"pokemon_species": nonNil(species),
	})
}

func (m *MockPokeAPI) serveHabitat(w http.ResponseWriter, idOrName, base string) {
	name := idOrName
	if id, err := strconv.Atoi(idOrName); err == nil {
		if id < 1 || id > len(HabitatNames) {
			writeNotFound(w)
			return
		}
		name = HabitatNames[id-1]
	} else if habitatID(name) == 0 {
		writeNotFound(w)
		return
	}

	var species []map[string]string
	for _, p := range m.pokemon {
		if p.Habitat == name {
			species = append(species, namedResource(p.Name, fmt.Sprintf("%s/pokemon-species/%d/", base, p.ID)))
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":              habitatID(name),
		"name":            name,
		"pokemon_species": nonNil(species),
	})
}

func (m *MockPokeAPI) serveAbility(w http.ResponseWriter, name, base string) {
	var entries []map[string]any
	for _, p := range m.pokemon {
		for i, a := range p.Abilities {
			if a.Name == name {
				entries = append(entries, map[string]any{
					"is_hidden": a.Hidden,
					"slot":      i + 1,
					"pokemon":   namedResource(p.Name, fmt.Sprintf("%s/pokemon/%d/", base, p.ID)),
				})
			}
		}
	}
	if len(entries) == 0 {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"name": name, "pokemon": entries})
}

// StatValue is the deterministic base stat served for stat index i of a
// fixture.
func StatValue(id, i int) int {
	return 20 + (id*7+i*13)%100
}

func habitatID(name string) int {
	for i, h := range HabitatNames {
		if h == name {
			return i + 1
		}
	}
	return 0
}

var knownTypes = map[string]bool{
	"normal": true, "fire": true, "water": true, "electric": true, "grass": true,
	"ice": true, "fighting": true, "poison": true, "ground": true, "flying": true,
	"psychic": true, "bug": true, "rock": true, "ghost": true, "dragon": true,
	"dark": true, "steel": true, "fairy": true,
}

func isKnownType(name string) bool {
	return knownTypes[name]
}

func namedResource(name, url string) map[string]string {
	return map[string]string{"name": name, "url": url}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func writeNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte("Not Found"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
