// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package zenodo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/zenodo-mirror/pkg/types"
)

func makeRecord(id int, title string) types.Record {
	return types.Record{
		ID: id,
		Metadata: types.RecordMetadata{
			Title:           title,
			PublicationDate: "2023-05-01",
		},
	}
}

// newListingServer serves the given records with offset pagination and
// counts listing requests.
func newListingServer(t *testing.T, records []types.Record, calls *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		size, _ := strconv.Atoi(r.URL.Query().Get("size"))
		require.Positive(t, page, "page parameter missing")
		require.Positive(t, size, "size parameter missing")

		start := (page - 1) * size
		end := start + size
		if start > len(records) {
			start = len(records)
		}
		if end > len(records) {
			end = len(records)
		}

		var env struct {
			Hits struct {
				Hits  []types.Record `json:"hits"`
				Total int            `json:"total"`
			} `json:"hits"`
		}
		env.Hits.Hits = records[start:end]
		env.Hits.Total = len(records)

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(env))
	}))
}

func testListingConfig(baseURL string) types.ListingConfig {
	return types.ListingConfig{
		APIConfig: types.APIConfig{
			HTTPConfig: types.HTTPConfig{UserAgent: "zenodo-mirror-test/0.1"},
			BaseURL:    baseURL,
			Token:      "tok-123",
		},
		Community: "c2f742bc-82f9-4f1e-911e-d1542e88cad7",
		PageSize:  50,
		PageDelay: 0,
	}
}

func TestListRecordsSinglePage(t *testing.T) {
	var calls int32
	records := []types.Record{makeRecord(11, "First"), makeRecord(22, "Second")}
	ts := newListingServer(t, records, &calls)
	defer ts.Close()

	var buf bytes.Buffer
	got := ListRecords(context.Background(), ts.Client(), testListingConfig(ts.URL), &buf)

	require.Len(t, got, 2)
	assert.Equal(t, 11, got[0].ID)
	assert.Equal(t, 22, got[1].ID)
	// total == accumulated after page 1, so no second page is requested.
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Contains(t, buf.String(), "Total records found: 2")
}

func TestListRecordsMultiplePagesInOrder(t *testing.T) {
	var calls int32
	var records []types.Record
	for i := 1; i <= 5; i++ {
		records = append(records, makeRecord(i, fmt.Sprintf("Record %d", i)))
	}
	ts := newListingServer(t, records, &calls)
	defer ts.Close()

	cfg := testListingConfig(ts.URL)
	cfg.PageSize = 2

	var buf bytes.Buffer
	got := ListRecords(context.Background(), ts.Client(), cfg, &buf)

	require.Len(t, got, 5)
	for i, r := range got {
		assert.Equal(t, i+1, r.ID, "records must come back in listing order")
	}
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestListRecordsServerErrorReturnsPartial(t *testing.T) {
	// Page 1 succeeds with 50 of 120 records; page 2 returns 500.
	var records []types.Record
	for i := 1; i <= 50; i++ {
		records = append(records, makeRecord(i, fmt.Sprintf("Record %d", i)))
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "1" {
			http.Error(w, "upstream exploded", http.StatusInternalServerError)
			return
		}
		var env struct {
			Hits struct {
				Hits  []types.Record `json:"hits"`
				Total int            `json:"total"`
			} `json:"hits"`
		}
		env.Hits.Hits = records
		env.Hits.Total = 120
		json.NewEncoder(w).Encode(env)
	}))
	defer ts.Close()

	var buf bytes.Buffer
	got := ListRecords(context.Background(), ts.Client(), testListingConfig(ts.URL), &buf)

	assert.Len(t, got, 50, "partial results from page 1 must be returned")
	assert.Contains(t, buf.String(), "error fetching records page 2: HTTP 500")
	assert.Contains(t, buf.String(), "Total records found: 50")
}

func TestListRecordsTransportErrorReturnsNothing(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // immediately, so the first request fails at the transport level

	var buf bytes.Buffer
	got := ListRecords(context.Background(), http.DefaultClient, testListingConfig(ts.URL), &buf)

	assert.Empty(t, got)
	assert.Contains(t, buf.String(), "error fetching records page 1:")
}

func TestListRecordsDebugCapsAtTwo(t *testing.T) {
	var calls int32
	var records []types.Record
	for i := 1; i <= 9; i++ {
		records = append(records, makeRecord(i, fmt.Sprintf("Record %d", i)))
	}
	ts := newListingServer(t, records, &calls)
	defer ts.Close()

	cfg := testListingConfig(ts.URL)
	cfg.Debug = true
	cfg.PageSize = 50 // debug mode overrides this to 2

	var buf bytes.Buffer
	got := ListRecords(context.Background(), ts.Client(), cfg, &buf)

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 2, got[1].ID)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Contains(t, buf.String(), "debug mode")
}

func TestListRecordsEmptyCommunity(t *testing.T) {
	var calls int32
	ts := newListingServer(t, nil, &calls)
	defer ts.Close()

	var buf bytes.Buffer
	got := ListRecords(context.Background(), ts.Client(), testListingConfig(ts.URL), &buf)

	assert.Empty(t, got)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Contains(t, buf.String(), "Total records found: 0")
}

func TestListRecordsSendsTokenAndUserAgent(t *testing.T) {
	var gotToken, gotUA, gotCommunity string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.URL.Query().Get("access_token")
		gotUA = r.Header.Get("User-Agent")
		gotCommunity = r.URL.Query().Get("communities")
		fmt.Fprint(w, `{"hits":{"hits":[],"total":0}}`)
	}))
	defer ts.Close()

	var buf bytes.Buffer
	ListRecords(context.Background(), ts.Client(), testListingConfig(ts.URL), &buf)

	assert.Equal(t, "tok-123", gotToken)
	assert.Equal(t, "zenodo-mirror-test/0.1", gotUA)
	assert.Equal(t, "c2f742bc-82f9-4f1e-911e-d1542e88cad7", gotCommunity)
}
