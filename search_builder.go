package textdex

import "context"

// SearchBuilder is a fluent builder for typed search queries.
// A builder with no options set sends the same request body as a raw
// bare-query search.
type SearchBuilder[T any] struct {
	idx   *TypedIndex[T]
	query string
	opts  SearchOptions
}

// Offset skips the first n hits.
func (b *SearchBuilder[T]) Offset(n int) *SearchBuilder[T] {
	b.opts.Offset = n
	return b
}

// Limit sets the maximum number of hits.
func (b *SearchBuilder[T]) Limit(n int) *SearchBuilder[T] {
	b.opts.Limit = n
	return b
}

// Filter sets the filter expression evaluated by the service.
func (b *SearchBuilder[T]) Filter(expression string) *SearchBuilder[T] {
	b.opts.Filters = expression
	return b
}

// Retrieve restricts which attributes are returned in hits.
func (b *SearchBuilder[T]) Retrieve(attributes ...string) *SearchBuilder[T] {
	b.opts.AttributesToRetrieve = attributes
	return b
}

// Crop crops the given attributes around the query terms.
func (b *SearchBuilder[T]) Crop(attributes ...string) *SearchBuilder[T] {
	b.opts.AttributesToCrop = attributes
	return b
}

// CropLength sets the crop window size in words.
func (b *SearchBuilder[T]) CropLength(n int) *SearchBuilder[T] {
	b.opts.CropLength = n
	return b
}

// Highlight highlights the query terms in the given attributes.
func (b *SearchBuilder[T]) Highlight(attributes ...string) *SearchBuilder[T] {
	b.opts.AttributesToHighlight = attributes
	return b
}

// Matches includes match position metadata in hits.
func (b *SearchBuilder[T]) Matches() *SearchBuilder[T] {
	b.opts.Matches = true
	return b
}

// Do executes the search and returns typed hits.
func (b *SearchBuilder[T]) Do(ctx context.Context) (*SearchResponse[T], error) {
	var res SearchResponse[T]
	if err := b.idx.raw.search(ctx, newSearchRequest(b.query, &b.opts), &res); err != nil {
		return nil, err
	}
	return &res, nil
}
