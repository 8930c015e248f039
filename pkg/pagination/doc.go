// Package pagination provides page windows, de-duplicating accumulation and
// parallel batch fetching for the catalog.
//
// PokeAPI lists are addressed by offset/limit. The catalog exposes 1-based
// pages of a fixed size, so Window translates between the two and Slice
// applies the same window to a client-side candidate list.
//
// Example usage:
//
//	fetcher := pagination.NewBatchFetcher(loadDetail, pagination.DefaultConfig())
//	results := fetcher.FetchAll(ctx, candidates)
//	items, failed := pagination.Values(results)
//
// The batch fetcher:
//   - Starts one goroutine per input (bounded when MaxConcurrency > 0)
//   - Isolates failures: one failed input never cancels its siblings
//   - Returns results in input order
//   - Logs failures and a completion summary
package pagination
