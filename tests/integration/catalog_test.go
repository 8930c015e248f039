//go:build integration

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Sternrassler/pokeapi-catalog/internal/testutil"
	"github.com/Sternrassler/pokeapi-catalog/pkg/cache"
	"github.com/Sternrassler/pokeapi-catalog/pkg/catalog"
	"github.com/Sternrassler/pokeapi-catalog/pkg/client"
	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupRedis creates a Redis container for integration testing.
func setupRedis(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start Redis container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: host + ":" + port.Port(),
	})

	cleanup := func() {
		redisClient.Close()
		container.Terminate(ctx)
	}

	return redisClient, cleanup
}

func newFetcher(t *testing.T, mock *testutil.MockPokeAPI, redisClient *redis.Client, ttl time.Duration) *catalog.Fetcher {
	t.Helper()

	cfg := client.DefaultConfig("TestApp/1.0.0 (integration@test.com)")
	cfg.BaseURL = mock.BaseURL()
	cfg.Cache = cache.NewRedisCache(redisClient)
	cfg.CacheTTL = ttl

	c, err := client.New(cfg)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return catalog.NewFetcher(c, catalog.DefaultConfig())
}

// TestFullFetchFlow tests the complete flow: listing → fan-out → filters,
// with the second identical fetch served entirely from Redis.
func TestFullFetchFlow(t *testing.T) {
	redisClient, cleanup := setupRedis(t)
	defer cleanup()

	mock := testutil.NewMockPokeAPI()
	defer mock.Close()

	fetcher := newFetcher(t, mock, redisClient, time.Minute)
	ctx := context.Background()
	filters := catalog.FilterSet{Weakness: "fire", Ordering: catalog.OrderName}

	t.Log("Fetch 1: cold cache")
	page1, err := fetcher.Fetch(ctx, catalog.DimensionNone, "", filters)
	if err != nil {
		t.Fatalf("Fetch 1 failed: %v", err)
	}
	if len(page1.Items) == 0 {
		t.Fatal("Fetch 1 returned no items")
	}

	// 1 listing + 20 details + 20 species
	if got := mock.TotalRequests(); got != 41 {
		t.Errorf("After fetch 1: upstream requests = %d, want 41", got)
	}

	t.Log("Fetch 2: warm cache")
	page2, err := fetcher.Fetch(ctx, catalog.DimensionNone, "", filters)
	if err != nil {
		t.Fatalf("Fetch 2 failed: %v", err)
	}

	if got := mock.TotalRequests(); got != 41 {
		t.Errorf("After fetch 2: upstream requests = %d, want 41 (all cached)", got)
	}
	if len(page2.Items) != len(page1.Items) {
		t.Errorf("Fetch 2 items = %d, want %d", len(page2.Items), len(page1.Items))
	}
	for i := range page1.Items {
		if page1.Items[i].ID != page2.Items[i].ID {
			t.Errorf("item %d: id %d != %d", i, page2.Items[i].ID, page1.Items[i].ID)
		}
	}
}

// TestCacheExpiry tests that entries past the TTL go upstream again.
func TestCacheExpiry(t *testing.T) {
	redisClient, cleanup := setupRedis(t)
	defer cleanup()

	mock := testutil.NewMockPokeAPI()
	defer mock.Close()

	fetcher := newFetcher(t, mock, redisClient, time.Second)
	ctx := context.Background()

	if _, err := fetcher.Fetch(ctx, catalog.DimensionNone, "", catalog.FilterSet{Name: "25"}); err != nil {
		t.Fatalf("First fetch failed: %v", err)
	}
	if got := mock.RequestCount("/pokemon/25"); got != 1 {
		t.Fatalf("detail requests = %d, want 1", got)
	}

	time.Sleep(1500 * time.Millisecond)

	if _, err := fetcher.Fetch(ctx, catalog.DimensionNone, "", catalog.FilterSet{Name: "25"}); err != nil {
		t.Fatalf("Second fetch failed: %v", err)
	}
	if got := mock.RequestCount("/pokemon/25"); got != 2 {
		t.Errorf("detail requests = %d, want 2 after expiry", got)
	}
}

// TestFailuresAreNotCached tests that a dropped item is retried by the next
// fetch instead of being served from cache.
func TestFailuresAreNotCached(t *testing.T) {
	redisClient, cleanup := setupRedis(t)
	defer cleanup()

	mock := testutil.NewMockPokeAPI()
	defer mock.Close()

	fetcher := newFetcher(t, mock, redisClient, time.Minute)
	ctx := context.Background()

	mock.FailPath("/pokemon/7", http.StatusInternalServerError)
	page, err := fetcher.Fetch(ctx, catalog.DimensionNone, "", catalog.FilterSet{})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(page.Items) != 19 {
		t.Errorf("items = %d, want 19", len(page.Items))
	}

	mock.FailPath("/pokemon/7", 0)
	page, err = fetcher.Fetch(ctx, catalog.DimensionNone, "", catalog.FilterSet{})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(page.Items) != 20 {
		t.Errorf("items = %d, want 20 once upstream recovers", len(page.Items))
	}
}

// TestSessionAcrossPages tests load-more accumulation backed by Redis.
func TestSessionAcrossPages(t *testing.T) {
	redisClient, cleanup := setupRedis(t)
	defer cleanup()

	mock := testutil.NewMockPokeAPI()
	defer mock.Close()

	session := catalog.NewSession(newFetcher(t, mock, redisClient, time.Minute))
	defer session.Close()
	ctx := context.Background()

	snap, err := session.Apply(ctx, catalog.DimensionNone, "", catalog.FilterSet{})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	for snap.HasMore {
		if snap, err = session.LoadMore(ctx); err != nil {
			t.Fatalf("LoadMore failed: %v", err)
		}
	}

	if len(snap.Items) != len(testutil.DefaultFixtures()) {
		t.Errorf("items = %d, want %d", len(snap.Items), len(testutil.DefaultFixtures()))
	}
	if snap.State != catalog.StateLoaded {
		t.Errorf("state = %s, want loaded", snap.State)
	}
}
