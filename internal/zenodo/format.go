// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package zenodo

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/zenodo-mirror/pkg/types"
)

// FormatTable writes records as a human-readable table to w.
func FormatTable(records []types.Record, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No records found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-10s  %-60s  %-5s  %s\n",
		"Rank", "ID", "Title", "Files", "Published")
	fmt.Fprintln(w, strings.Repeat("-", 96))

	for i, r := range records {
		title := r.Title()
		if runes := []rune(title); len(runes) > 60 {
			title = string(runes[:57]) + "..."
		}
		fmt.Fprintf(w, "%-4d  %-10d  %-60s  %-5d  %s\n",
			i+1, r.ID, title, len(r.Files), r.Metadata.PublicationDate)
	}

	fmt.Fprintf(w, "\n%d records\n", len(records))
}

// FormatJSON writes records as indented JSON to w.
func FormatJSON(records []types.Record, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
