package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Sternrassler/pokeapi-catalog/pkg/catalog"
	"github.com/Sternrassler/pokeapi-catalog/pkg/metrics"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog over HTTP",
	Long: `Starts an HTTP server with:
  GET /v1/catalog  one catalog page as JSON
  GET /health      liveness
  GET /metrics     Prometheus metrics`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fetcher, cleanup, err := newFetcher(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           newMux(fetcher),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Str("upstream", cfg.PokeAPI.BaseURL).Msg("Starting catalog server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down catalog server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newMux(fetcher *catalog.Fetcher) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthHandler)
	mux.HandleFunc("GET /v1/catalog", catalogHandler(fetcher))
	mux.Handle("GET /metrics", metrics.Handler())
	return mux
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}

type catalogResponse struct {
	Items   []catalog.Item `json:"items"`
	HasMore bool           `json:"has_more"`
	Error   string         `json:"error,omitempty"`
}

func catalogHandler(fetcher catalog.PageFetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dim, value, filters, err := parseCatalogQuery(r)
		if err != nil {
			writeCatalog(w, http.StatusBadRequest, &catalog.Page{Items: []catalog.Item{}}, err)
			return
		}

		page, err := fetcher.Fetch(r.Context(), dim, value, filters)
		switch {
		case err == nil:
			writeCatalog(w, http.StatusOK, page, nil)
		case errors.Is(err, catalog.ErrInvalidFilter):
			writeCatalog(w, http.StatusBadRequest, page, err)
		case catalog.IsSeedFailure(err):
			writeCatalog(w, http.StatusBadGateway, page, err)
		default:
			// Client went away or the request context expired.
			writeCatalog(w, http.StatusServiceUnavailable, page, err)
		}
	}
}

func parseCatalogQuery(r *http.Request) (catalog.Dimension, string, catalog.FilterSet, error) {
	q := r.URL.Query()

	dim, err := catalog.ParseDimension(q.Get("dimension"))
	if err != nil {
		return 0, "", catalog.FilterSet{}, err
	}

	filters := catalog.FilterSet{
		Name:       q.Get("name"),
		Type:       q.Get("type"),
		Weakness:   q.Get("weakness"),
		Ability:    q.Get("ability"),
		Height:     q.Get("height"),
		Weight:     q.Get("weight"),
		Generation: q.Get("generation"),
		Region:     q.Get("region"),
		Habitat:    q.Get("habitat"),
		Ordering:   q.Get("ordering"),
	}
	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return 0, "", catalog.FilterSet{}, fmt.Errorf("%w: page %q", catalog.ErrInvalidFilter, raw)
		}
		filters.Page = page
	}

	return dim, q.Get("value"), filters, nil
}

func writeCatalog(w http.ResponseWriter, status int, page *catalog.Page, err error) {
	resp := catalogResponse{Items: []catalog.Item{}}
	if page != nil && page.Items != nil {
		resp.Items = page.Items
		resp.HasMore = page.HasMore
	}
	if err != nil {
		resp.Error = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Warn().Err(err).Msg("Failed to write catalog response")
	}
}
