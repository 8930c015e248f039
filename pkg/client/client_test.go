package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Sternrassler/pokeapi-catalog/internal/testutil"
	"github.com/Sternrassler/pokeapi-catalog/pkg/cache"
)

func newTestClient(t *testing.T, baseURL string, c cache.Cache) *Client {
	t.Helper()

	cfg := DefaultConfig("pokeapi-catalog-test/1.0")
	cfg.BaseURL = baseURL
	cfg.Cache = c

	client, err := New(cfg)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return client
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
		errorMsg    string
	}{
		{
			name:   "valid config",
			config: DefaultConfig("TestApp/1.0.0"),
		},
		{
			name:        "empty user agent",
			config:      Config{BaseURL: DefaultBaseURL},
			expectError: true,
			errorMsg:    "user-agent is required",
		},
		{
			name:        "relative base url",
			config:      Config{BaseURL: "api/v2", UserAgent: "TestApp/1.0.0"},
			expectError: true,
			errorMsg:    `invalid base url "api/v2"`,
		},
		{
			name:   "empty base url falls back to default",
			config: Config{UserAgent: "TestApp/1.0.0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.config)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error but got nil")
					return
				}
				if tt.errorMsg != "" && err.Error() != tt.errorMsg {
					t.Errorf("Error message = %q, want %q", err.Error(), tt.errorMsg)
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}
			if client == nil {
				t.Error("Client is nil")
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("TestApp/1.0.0")

	if cfg.UserAgent != "TestApp/1.0.0" {
		t.Errorf("UserAgent = %q, want %q", cfg.UserAgent, "TestApp/1.0.0")
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.Timeout <= 0 {
		t.Errorf("Timeout = %v, should be > 0", cfg.Timeout)
	}
	if cfg.Cache != nil {
		t.Error("Cache should be disabled by default")
	}
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		expected   ErrorClass
	}{
		{"client error 404", 404, ErrorClassClient},
		{"client error 400", 400, ErrorClassClient},
		{"rate limited 429", 429, ErrorClassRateLimit},
		{"server error 500", 500, ErrorClassServer},
		{"server error 503", 503, ErrorClassServer},
		{"success 200", 200, ""},
		{"not modified 304", 304, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyStatus(tt.statusCode); got != tt.expected {
				t.Errorf("classifyStatus(%d) = %q, want %q", tt.statusCode, got, tt.expected)
			}
		})
	}
}

func TestDo_UserAgentSet(t *testing.T) {
	userAgentReceived := ""
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgentReceived = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"test": "data"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)

	req, _ := http.NewRequest("GET", server.URL+"/test", nil)
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Do() failed: %v", err)
	}
	resp.Body.Close()

	if userAgentReceived != "pokeapi-catalog-test/1.0" {
		t.Errorf("User-Agent = %q, want %q", userAgentReceived, "pokeapi-catalog-test/1.0")
	}
}

func TestDo_CacheHitSkipsUpstream(t *testing.T) {
	mock := testutil.NewMockPokeAPI()
	defer mock.Close()

	mem, err := cache.NewMemoryCache(16, time.Minute)
	if err != nil {
		t.Fatalf("NewMemoryCache: %v", err)
	}
	client := newTestClient(t, mock.BaseURL(), mem)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		p, err := client.GetPokemon(ctx, "25")
		if err != nil {
			t.Fatalf("GetPokemon #%d: %v", i, err)
		}
		if p.Name != "pikachu" {
			t.Errorf("Name = %q, want pikachu", p.Name)
		}
	}

	if got := mock.RequestCount("/pokemon/25"); got != 1 {
		t.Errorf("upstream requests = %d, want 1", got)
	}
}

func TestDo_ErrorsAreNotCached(t *testing.T) {
	mock := testutil.NewMockPokeAPI()
	defer mock.Close()
	mock.FailPath("/pokemon/4", http.StatusInternalServerError)

	mem, _ := cache.NewMemoryCache(16, 0)
	client := newTestClient(t, mock.BaseURL(), mem)

	for i := 0; i < 2; i++ {
		if _, err := client.GetPokemon(context.Background(), "4"); err == nil {
			t.Fatal("expected error")
		}
	}
	if got := mock.RequestCount("/pokemon/4"); got != 2 {
		t.Errorf("upstream requests = %d, want 2", got)
	}
	if mem.Len() != 0 {
		t.Errorf("cache holds %d entries, want 0", mem.Len())
	}
}

func TestDo_NoRetry(t *testing.T) {
	mock := testutil.NewMockPokeAPI()
	defer mock.Close()
	mock.FailPath("/pokemon/7", http.StatusServiceUnavailable)

	client := newTestClient(t, mock.BaseURL(), nil)
	_, err := client.GetPokemon(context.Background(), "7")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.ErrorClass != ErrorClassServer {
		t.Errorf("ErrorClass = %q, want %q", apiErr.ErrorClass, ErrorClassServer)
	}
	if got := mock.RequestCount("/pokemon/7"); got != 1 {
		t.Errorf("upstream requests = %d, want exactly 1", got)
	}
}

func TestDo_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := newTestClient(t, baseURL, nil)
	_, err := client.Get(context.Background(), "/pokemon/1", nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.ErrorClass != ErrorClassNetwork {
		t.Errorf("ErrorClass = %q, want %q", apiErr.ErrorClass, ErrorClassNetwork)
	}
}

func TestGetJSON_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	var v map[string]any
	err := client.GetJSON(context.Background(), "/pokemon/1", nil, &v)

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.ErrorClass != ErrorClassDecode {
		t.Fatalf("expected decode APIError, got %v", err)
	}
}

func TestGetPokemon_NotFound(t *testing.T) {
	mock := testutil.NewMockPokeAPI()
	defer mock.Close()

	client := newTestClient(t, mock.BaseURL(), nil)
	_, err := client.GetPokemon(context.Background(), "9999")
	if !IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = false, want true", err)
	}
}

func TestListPokemon(t *testing.T) {
	mock := testutil.NewMockPokeAPI()
	defer mock.Close()

	client := newTestClient(t, mock.BaseURL(), nil)
	ctx := context.Background()

	first, err := client.ListPokemon(ctx, 0, 20)
	if err != nil {
		t.Fatalf("ListPokemon: %v", err)
	}
	if len(first.Results) != 20 {
		t.Errorf("len(Results) = %d, want 20", len(first.Results))
	}
	if !first.HasNext() {
		t.Error("first page should have a next page")
	}

	last, err := client.ListPokemon(ctx, 20, 20)
	if err != nil {
		t.Fatalf("ListPokemon: %v", err)
	}
	if last.HasNext() {
		t.Error("last page should not have a next page")
	}
	if len(last.Results) != last.Count-20 {
		t.Errorf("len(Results) = %d, want %d", len(last.Results), last.Count-20)
	}
}

func TestGetSpeciesByURL_FollowsLink(t *testing.T) {
	mock := testutil.NewMockPokeAPI()
	defer mock.Close()

	client := newTestClient(t, mock.BaseURL(), nil)
	ctx := context.Background()

	p, err := client.GetPokemon(ctx, "pikachu")
	if err != nil {
		t.Fatalf("GetPokemon: %v", err)
	}
	s, err := client.GetSpeciesByURL(ctx, p.Species.URL)
	if err != nil {
		t.Fatalf("GetSpeciesByURL: %v", err)
	}
	if s.Generation.Name != "generation-i" {
		t.Errorf("Generation = %q, want generation-i", s.Generation.Name)
	}
	if s.Habitat == nil || s.Habitat.Name != "forest" {
		t.Errorf("Habitat = %+v, want forest", s.Habitat)
	}
}

func TestLinkEndpoint(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:9999/api/v2", nil)

	tests := []struct {
		name    string
		link    string
		want    string
		wantErr bool
	}{
		{"same host", "http://127.0.0.1:9999/api/v2/pokemon-species/25/", "/pokemon-species/25/", false},
		{"public host rebased", "https://pokeapi.co/api/v2/pokemon-species/1/", "/pokemon-species/1/", false},
		{"relative path", "/pokemon-species/4/", "/pokemon-species/4/", false},
		{"foreign absolute url", "https://example.com/other/thing", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := client.linkEndpoint(tt.link)
			if (err != nil) != tt.wantErr {
				t.Fatalf("linkEndpoint(%q) error = %v, wantErr %v", tt.link, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("linkEndpoint(%q) = %q, want %q", tt.link, got, tt.want)
			}
		})
	}
}

func TestResourceID(t *testing.T) {
	tests := []struct {
		url  string
		want int
	}{
		{"https://pokeapi.co/api/v2/pokemon/25/", 25},
		{"https://pokeapi.co/api/v2/pokemon-species/151", 151},
		{"https://pokeapi.co/api/v2/type/fire/", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := ResourceID(tt.url); got != tt.want {
			t.Errorf("ResourceID(%q) = %d, want %d", tt.url, got, tt.want)
		}
	}
}

func TestResourceLabel(t *testing.T) {
	tests := map[string]string{
		"/api/v2/pokemon/25/":       "pokemon",
		"/api/v2/pokemon":           "pokemon",
		"/api/v2/type/fire":         "type",
		"/api/v2/pokemon-species/1": "pokemon-species",
		"/test":                     "test",
		"/":                         "root",
	}
	for path, want := range tests {
		if got := resourceLabel(path); got != want {
			t.Errorf("resourceLabel(%q) = %q, want %q", path, got, want)
		}
	}
}
