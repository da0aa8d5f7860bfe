// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index writes the per-run metadata index: a projection of every
// fetched record into a single document, fully overwritten each run.
package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/zenodo-mirror/pkg/types"
)

// DefaultIndexName is the index filename when the config carries none.
const DefaultIndexName = "iodp_metadata.json"

// Summarize projects records into index summaries: id, title, description,
// creators, publication date, DOI, and {filename, size} pairs. Download
// URLs are dropped.
func Summarize(records []types.Record) []types.RecordSummary {
	summaries := make([]types.RecordSummary, len(records))
	for i, r := range records {
		doi := r.DOI
		if doi == "" {
			doi = r.Metadata.DOI
		}

		files := make([]types.FileSummary, len(r.Files))
		for j, f := range r.Files {
			files[j] = types.FileSummary{Key: f.Key, Size: f.Size}
		}

		summaries[i] = types.RecordSummary{
			ID:              r.ID,
			Title:           r.Metadata.Title,
			Description:     r.Metadata.Description,
			Creators:        r.Metadata.Creators,
			PublicationDate: r.Metadata.PublicationDate,
			DOI:             doi,
			Files:           files,
		}
	}
	return summaries
}

// Path returns the index file location for cfg.
func Path(cfg types.ExportConfig) string {
	name := cfg.IndexName
	if name == "" {
		name = DefaultIndexName
	}
	return filepath.Join(cfg.DataDir, name)
}

// WriteJSON writes the metadata index as one indented JSON array,
// overwriting any prior index at the same path.
func WriteJSON(records []types.Record, path string) error {
	data, err := json.MarshalIndent(Summarize(records), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON index: %w", err)
	}
	return writeIndex(path, data)
}

// WriteYAML writes the same projection as a YAML document.
func WriteYAML(records []types.Record, path string) error {
	data, err := yaml.Marshal(Summarize(records))
	if err != nil {
		return fmt.Errorf("marshaling YAML index: %w", err)
	}
	return writeIndex(path, data)
}

func writeIndex(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating index directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
