// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// AuthorizeURL appends the Zenodo access_token query parameter to rawURL.
// An empty token leaves the URL untouched. Existing query parameters are
// preserved.
func AuthorizeURL(rawURL, token string) (string, error) {
	if token == "" {
		return rawURL, nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing URL %q: %w", rawURL, err)
	}
	q := u.Query()
	q.Set("access_token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Get issues an authorized GET against rawURL with the given User-Agent.
// The caller owns the response body. There is no retry of any kind: every
// response, including non-2xx ones, is returned as-is.
func Get(ctx context.Context, client *http.Client, rawURL, token, userAgent string) (*http.Response, error) {
	authURL, err := AuthorizeURL(rawURL, token)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, authURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request: %w", err)
	}
	return resp, nil
}
