// Package textdex provides a Go client for the textdex search service
// HTTP API: per-index document CRUD, search, and asynchronous update
// status polling.
//
// # Raw API — pre-serialized payloads
//
//	client, _ := textdex.New("http://localhost:7700")
//	idx := client.Index("movies")
//	update, _ := idx.AddDocuments(ctx, json.RawMessage(`[{"id":"1","title":"Carol"}]`))
//	res, _ := idx.Search(ctx, "carol", nil)
//
// # Typed API — schema-first with Go generics
//
//	type Movie struct {
//	    ID    string `json:"id"`
//	    Title string `json:"title"`
//	}
//
//	movies := textdex.NewIndex[Movie](client, "movies")
//	_, _ = movies.AddDocuments(ctx, []Movie{{ID: "1", Title: "Carol"}})
//	res, _ := movies.Search("carol").Limit(10).Do(ctx)
//
// Every operation is a single synchronous round-trip. Writes are
// acknowledged asynchronously by the service: they return an Update
// receipt whose status is polled via GetUpdate.
package textdex
