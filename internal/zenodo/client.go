// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package zenodo enumerates the records of a Zenodo community through the
// offset-paginated records listing.
package zenodo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pdiddy/zenodo-mirror/internal/httputil"
	"github.com/pdiddy/zenodo-mirror/pkg/types"
)

const (
	defaultPageSize = 50

	// debugRecordCap bounds both the page size and the total record count
	// in debug mode.
	debugRecordCap = 2
)

// hitsEnvelope is the Zenodo listing response shape.
type hitsEnvelope struct {
	Hits struct {
		Hits  []types.Record `json:"hits"`
		Total int            `json:"total"`
	} `json:"hits"`
}

// ListRecords pages through the community listing until exhausted and
// returns the records in listing order. Enumeration errors (transport
// failures, non-200 responses, undecodable pages) are logged to w and stop
// the loop; whatever was accumulated so far is returned. Callers cannot
// distinguish a complete enumeration from one stopped early except via the
// log output.
func ListRecords(ctx context.Context, client *http.Client, cfg types.ListingConfig, w io.Writer) []types.Record {
	size := cfg.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	if cfg.Debug {
		size = debugRecordCap
		fmt.Fprintf(w, "Fetching community records (debug mode, limited to %d records)...\n", debugRecordCap)
	} else {
		fmt.Fprintln(w, "Fetching community records...")
	}

	var all []types.Record
	for page := 1; ; page++ {
		if page > 1 && cfg.PageDelay > 0 {
			time.Sleep(cfg.PageDelay)
		}

		listURL := fmt.Sprintf("%s/records?communities=%s&page=%d&size=%d",
			cfg.BaseURL, url.QueryEscape(cfg.Community), page, size)

		resp, err := httputil.Get(ctx, client, listURL, cfg.Token, cfg.UserAgent)
		if err != nil {
			fmt.Fprintf(w, "error fetching records page %d: %v\n", page, err)
			break
		}

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			fmt.Fprintf(w, "error fetching records page %d: HTTP %d\n", page, resp.StatusCode)
			if len(body) > 0 {
				fmt.Fprintf(w, "response: %s\n", body)
			}
			break
		}

		var env hitsEnvelope
		decodeErr := json.NewDecoder(resp.Body).Decode(&env)
		resp.Body.Close()
		if decodeErr != nil {
			fmt.Fprintf(w, "error parsing records page %d: %v\n", page, decodeErr)
			break
		}

		if len(env.Hits.Hits) == 0 {
			break
		}

		all = append(all, env.Hits.Hits...)
		fmt.Fprintf(w, "Fetched page %d, total records so far: %d\n", page, len(all))

		if cfg.Debug && len(all) >= debugRecordCap {
			all = all[:debugRecordCap]
			break
		}

		if len(all) >= env.Hits.Total {
			break
		}
	}

	fmt.Fprintf(w, "Total records found: %d\n", len(all))
	return all
}
