// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no timeout: a hung
	// call blocks the run, matching the upstream tool.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "zenodo-mirror/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// APIConfig holds settings shared by every call to the Zenodo API.
type APIConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the API root (default "https://zenodo.org/api").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Token is the Zenodo access token sent as the access_token query
	// parameter on listing and download requests.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`
}

// ListingConfig holds settings for the record enumeration stage.
type ListingConfig struct {
	APIConfig `yaml:",inline"`

	// Community is the community UUID whose records are enumerated.
	Community string `json:"community" yaml:"community"`

	// PageSize is the listing page size (default 50). Debug mode forces 2.
	PageSize int `json:"page_size" yaml:"page_size"`

	// PageDelay is the fixed courtesy delay between listing pages (default 100ms).
	PageDelay time.Duration `json:"page_delay" yaml:"page_delay"`

	// Debug caps the enumeration at the first 2 records.
	Debug bool `json:"debug" yaml:"debug"`
}

// MirrorConfig holds settings for the file mirroring stage.
type MirrorConfig struct {
	APIConfig `yaml:",inline"`

	// DataDir is the root of the local mirror tree (default "data").
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// Debug caps mirroring at the first 2 files per record.
	Debug bool `json:"debug" yaml:"debug"`
}

// ExportConfig holds settings for the metadata index exporter.
type ExportConfig struct {
	// DataDir is the directory the index file is written into.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// IndexName is the index filename (default "iodp_metadata.json").
	IndexName string `json:"index_name" yaml:"index_name"`
}
