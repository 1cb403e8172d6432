package textdex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kailas-cloud/textdex/internal/transport"
)

// Index exposes the document and search operations of one index using
// raw JSON payloads. Typed access is provided by TypedIndex.
//
// Index names and document identifiers are placed in request paths
// verbatim, without URL escaping; callers must supply path-safe values.
type Index struct {
	name string
	tmpl *transport.Template
	obs  *observer
}

// Name returns the index name.
func (ix *Index) Name() string { return ix.name }

// GetDocument retrieves one document by identifier.
func (ix *Index) GetDocument(ctx context.Context, identifier string) (_ json.RawMessage, err error) {
	start := time.Now()
	defer func() { ix.obs.observe("document.get", start, err) }()

	var doc json.RawMessage
	err = ix.tmpl.Execute(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   ix.documentPath(identifier),
	}, &doc)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// GetDocuments retrieves documents from the index. A limit of zero or
// less omits the limit parameter and yields the service default page.
func (ix *Index) GetDocuments(ctx context.Context, limit int) (_ []json.RawMessage, err error) {
	start := time.Now()
	defer func() { ix.obs.observe("document.list", start, err) }()

	var query url.Values
	if limit > 0 {
		query = url.Values{"limit": []string{strconv.Itoa(limit)}}
	}

	var docs []json.RawMessage
	err = ix.tmpl.Execute(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   ix.documentsPath(),
		Query:  query,
	}, &docs)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// AddDocuments adds a pre-serialized document or array of documents.
// Existing documents with the same identifier are fully replaced.
func (ix *Index) AddDocuments(ctx context.Context, payload json.RawMessage) (_ Update, err error) {
	start := time.Now()
	defer func() { ix.obs.observe("document.add", start, err) }()

	var update Update
	err = ix.tmpl.Execute(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   ix.documentsPath(),
		Body:   payload,
	}, &update)
	if err != nil {
		return Update{}, fmt.Errorf("add documents: %w", err)
	}
	return update, nil
}

// ReplaceDocuments is an alias of AddDocuments: the service replaces
// whole documents on POST.
func (ix *Index) ReplaceDocuments(ctx context.Context, payload json.RawMessage) (Update, error) {
	return ix.AddDocuments(ctx, payload)
}

// UpdateDocuments partially updates a pre-serialized document or array
// of documents: fields absent from the payload keep their stored values.
func (ix *Index) UpdateDocuments(ctx context.Context, payload json.RawMessage) (_ Update, err error) {
	start := time.Now()
	defer func() { ix.obs.observe("document.update", start, err) }()

	var update Update
	err = ix.tmpl.Execute(ctx, transport.Request{
		Method: http.MethodPut,
		Path:   ix.documentsPath(),
		Body:   payload,
	}, &update)
	if err != nil {
		return Update{}, fmt.Errorf("update documents: %w", err)
	}
	return update, nil
}

// DeleteDocument removes one document by identifier.
func (ix *Index) DeleteDocument(ctx context.Context, identifier string) (_ Update, err error) {
	start := time.Now()
	defer func() { ix.obs.observe("document.delete", start, err) }()

	var update Update
	err = ix.tmpl.Execute(ctx, transport.Request{
		Method: http.MethodDelete,
		Path:   ix.documentPath(identifier),
	}, &update)
	if err != nil {
		return Update{}, fmt.Errorf("delete document: %w", err)
	}
	return update, nil
}

// DeleteAllDocuments removes every document in the index.
func (ix *Index) DeleteAllDocuments(ctx context.Context) (_ Update, err error) {
	start := time.Now()
	defer func() { ix.obs.observe("document.delete_all", start, err) }()

	var update Update
	err = ix.tmpl.Execute(ctx, transport.Request{
		Method: http.MethodDelete,
		Path:   ix.documentsPath(),
	}, &update)
	if err != nil {
		return Update{}, fmt.Errorf("delete all documents: %w", err)
	}
	return update, nil
}

func (ix *Index) documentsPath() string {
	return "/indexes/" + ix.name + "/documents"
}

func (ix *Index) documentPath(identifier string) string {
	return ix.documentsPath() + "/" + identifier
}
