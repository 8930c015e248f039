// Package catalog implements the filtered Pokémon catalog: category-scoped
// candidate resolution, concurrent detail enrichment, an in-memory filter
// pipeline, stable sorting and page accumulation.
//
// A single Fetch call resolves one page:
//
//	fetcher := catalog.NewFetcher(apiClient, catalog.DefaultConfig())
//	page, err := fetcher.Fetch(ctx, catalog.DimensionType, "fire", catalog.FilterSet{Ordering: "name"})
//
// A Session drives successive pages ("load more") for one query and discards
// results that were superseded by a newer query.
//
// Note that HasMore reports whether the candidate list continues beyond the
// fetched window. Post-filters run on the window only, so a page may be empty
// while HasMore is true.
package catalog
