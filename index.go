package textdex

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/textdex/internal/transport"
)

// TypedIndex is a generic handle over one index. It delegates to the
// raw Index and maps documents to and from T via the JSON codec.
type TypedIndex[T any] struct {
	raw *Index
}

// NewIndex creates a typed index handle for the given index name.
func NewIndex[T any](client *Client, name string) *TypedIndex[T] {
	return &TypedIndex[T]{raw: client.Index(name)}
}

// Raw returns the underlying untyped index.
func (idx *TypedIndex[T]) Raw() *Index { return idx.raw }

// Document retrieves one document by identifier.
func (idx *TypedIndex[T]) Document(ctx context.Context, identifier string) (T, error) {
	var doc T
	data, err := idx.raw.GetDocument(ctx, identifier)
	if err != nil {
		return doc, err
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		var zero T
		return zero, fmt.Errorf("get document: %w: %w", ErrDecode, err)
	}
	return doc, nil
}

// Documents retrieves documents from the index. A limit of zero or
// less yields the service default page.
func (idx *TypedIndex[T]) Documents(ctx context.Context, limit int) ([]T, error) {
	raw, err := idx.raw.GetDocuments(ctx, limit)
	if err != nil {
		return nil, err
	}
	docs := make([]T, len(raw))
	for i, data := range raw {
		if err := json.Unmarshal(data, &docs[i]); err != nil {
			return nil, fmt.Errorf("list documents: document %d: %w: %w", i, ErrDecode, err)
		}
	}
	return docs, nil
}

// AddDocuments serializes the documents and adds them to the index.
// Existing documents with the same identifier are fully replaced.
func (idx *TypedIndex[T]) AddDocuments(ctx context.Context, docs []T) (Update, error) {
	payload, err := transport.Encode(docs)
	if err != nil {
		return Update{}, fmt.Errorf("add documents: %w", err)
	}
	return idx.raw.AddDocuments(ctx, payload)
}

// ReplaceDocuments is an alias of AddDocuments.
func (idx *TypedIndex[T]) ReplaceDocuments(ctx context.Context, docs []T) (Update, error) {
	return idx.AddDocuments(ctx, docs)
}

// UpdateDocuments serializes the documents and partially updates them:
// fields absent from a document keep their stored values.
func (idx *TypedIndex[T]) UpdateDocuments(ctx context.Context, docs []T) (Update, error) {
	payload, err := transport.Encode(docs)
	if err != nil {
		return Update{}, fmt.Errorf("update documents: %w", err)
	}
	return idx.raw.UpdateDocuments(ctx, payload)
}

// DeleteDocument removes one document by identifier.
func (idx *TypedIndex[T]) DeleteDocument(ctx context.Context, identifier string) (Update, error) {
	return idx.raw.DeleteDocument(ctx, identifier)
}

// DeleteAllDocuments removes every document in the index.
func (idx *TypedIndex[T]) DeleteAllDocuments(ctx context.Context) (Update, error) {
	return idx.raw.DeleteAllDocuments(ctx)
}

// Update retrieves the status of one asynchronous write.
func (idx *TypedIndex[T]) Update(ctx context.Context, updateID int64) (Update, error) {
	return idx.raw.GetUpdate(ctx, updateID)
}

// Updates retrieves the status of all updates of the index.
func (idx *TypedIndex[T]) Updates(ctx context.Context) ([]Update, error) {
	return idx.raw.GetUpdates(ctx)
}

// Search returns a fluent search builder for this index.
func (idx *TypedIndex[T]) Search(query string) *SearchBuilder[T] {
	return &SearchBuilder[T]{idx: idx, query: query}
}
