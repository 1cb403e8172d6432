package textdex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/kailas-cloud/textdex/internal/transport"
)

// searchRequest is the wire shape of a search call. A bare query
// serializes to the same body whether it came from a nil SearchOptions
// or from a builder with no options set.
type searchRequest struct {
	Query                 string   `json:"q"`
	Offset                int      `json:"offset,omitempty"`
	Limit                 int      `json:"limit,omitempty"`
	Filters               string   `json:"filters,omitempty"`
	AttributesToRetrieve  []string `json:"attributesToRetrieve,omitempty"`
	AttributesToCrop      []string `json:"attributesToCrop,omitempty"`
	CropLength            int      `json:"cropLength,omitempty"`
	AttributesToHighlight []string `json:"attributesToHighlight,omitempty"`
	Matches               bool     `json:"matches,omitempty"`
}

func newSearchRequest(query string, opts *SearchOptions) searchRequest {
	if opts == nil {
		opts = &SearchOptions{}
	}
	return searchRequest{
		Query:                 query,
		Offset:                opts.Offset,
		Limit:                 opts.Limit,
		Filters:               opts.Filters,
		AttributesToRetrieve:  opts.AttributesToRetrieve,
		AttributesToCrop:      opts.AttributesToCrop,
		CropLength:            opts.CropLength,
		AttributesToHighlight: opts.AttributesToHighlight,
		Matches:               opts.Matches,
	}
}

// Search executes a query against the index. Pass nil opts for service
// defaults. Hits are returned as raw JSON; TypedIndex decodes them.
func (ix *Index) Search(
	ctx context.Context, query string, opts *SearchOptions,
) (*SearchResponse[json.RawMessage], error) {
	var res SearchResponse[json.RawMessage]
	if err := ix.search(ctx, newSearchRequest(query, opts), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// search posts one search request and decodes the response into out.
// Shared by the raw and typed layers.
func (ix *Index) search(ctx context.Context, req searchRequest, out any) (err error) {
	start := time.Now()
	defer func() { ix.obs.observe("search", start, err) }()

	body, err := transport.Encode(req)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	err = ix.tmpl.Execute(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   ix.searchPath(),
		Body:   body,
	}, out)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	return nil
}

func (ix *Index) searchPath() string {
	return "/indexes/" + ix.name + "/search"
}
