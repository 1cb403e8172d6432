package textdex

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/kailas-cloud/textdex/internal/transport"
)

// GetUpdate retrieves the status of one asynchronous write by its
// update identifier.
func (ix *Index) GetUpdate(ctx context.Context, updateID int64) (_ Update, err error) {
	start := time.Now()
	defer func() { ix.obs.observe("update.get", start, err) }()

	var update Update
	err = ix.tmpl.Execute(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   ix.updatesPath() + "/" + strconv.FormatInt(updateID, 10),
	}, &update)
	if err != nil {
		return Update{}, fmt.Errorf("get update: %w", err)
	}
	return update, nil
}

// GetUpdates retrieves the status of all updates of the index.
func (ix *Index) GetUpdates(ctx context.Context) (_ []Update, err error) {
	start := time.Now()
	defer func() { ix.obs.observe("update.list", start, err) }()

	var updates []Update
	err = ix.tmpl.Execute(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   ix.updatesPath(),
	}, &updates)
	if err != nil {
		return nil, fmt.Errorf("list updates: %w", err)
	}
	return updates, nil
}

func (ix *Index) updatesPath() string {
	return "/indexes/" + ix.name + "/updates"
}
