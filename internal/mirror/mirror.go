// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mirror downloads record files into the local data tree.
package mirror

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/pdiddy/zenodo-mirror/internal/httputil"
	"github.com/pdiddy/zenodo-mirror/pkg/types"
)

const (
	// chunkSize is the download stream buffer size.
	chunkSize = 8192

	// titleMaxLen bounds sanitized title directory names.
	titleMaxLen = 100

	// debugFileCap limits files per record in debug mode.
	debugFileCap = 2
)

// RecordResult holds the per-record mirroring tally.
type RecordResult struct {
	Downloaded int
	Skipped    int
	Failed     int
}

// Succeeded returns the number of files present locally after the record
// was processed (downloaded now or already there).
func (r RecordResult) Succeeded() int {
	return r.Downloaded + r.Skipped
}

// Total returns the number of files processed.
func (r RecordResult) Total() int {
	return r.Downloaded + r.Skipped + r.Failed
}

// BatchResult holds the outcome of a full mirror run.
type BatchResult struct {
	Records    int
	Downloaded int
	Skipped    int
	Failed     int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Downloaded + r.Skipped + r.Failed
}

// HasFailures reports whether any file failed to mirror.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// add folds a per-record tally into the batch result.
func (r *BatchResult) add(rr RecordResult) {
	r.Records++
	r.Downloaded += rr.Downloaded
	r.Skipped += rr.Skipped
	r.Failed += rr.Failed
}

// SanitizeTitle strips every rune outside letters, digits, space, hyphen,
// and underscore, trims trailing spaces, and caps the result at 100
// characters to bound path length.
func SanitizeTitle(title string) string {
	var b strings.Builder
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	s := strings.TrimRight(b.String(), " ")
	if runes := []rune(s); len(runes) > titleMaxLen {
		s = string(runes[:titleMaxLen])
	}
	return s
}

// FilePath returns the local mirror path for a file of the given record:
// <data-dir>/record_<id>/<sanitized-title>/<filename>.
func FilePath(dataDir string, record types.Record, f types.RecordFile) string {
	return filepath.Join(dataDir,
		fmt.Sprintf("record_%d", record.ID),
		SanitizeTitle(record.Title()),
		f.Key)
}

// MirrorFile ensures one file of a record is present locally. A file whose
// byte size equals the remote-reported size is skipped without a network
// call; anything else is stream-downloaded in fixed-size chunks to a temp
// file and renamed into place, overwriting a mismatched copy. There is no
// checksum: size equality is the sole already-downloaded check.
func MirrorFile(ctx context.Context, client *http.Client, record types.Record, f types.RecordFile, cfg types.MirrorConfig, w io.Writer) (skipped bool, err error) {
	destPath := FilePath(cfg.DataDir, record, f)

	if fi, statErr := os.Stat(destPath); statErr == nil && fi.Size() == f.Size {
		fmt.Fprintf(w, "  skipping %s (already exists)\n", f.Key)
		return true, nil
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return false, fmt.Errorf("creating directory: %w", err)
	}

	fmt.Fprintf(w, "  downloading %s (%d bytes)...\n", f.Key, f.Size)

	if f.Links.Self == "" {
		return false, fmt.Errorf("file %s has no download link", f.Key)
	}

	resp, err := httputil.Get(ctx, client, f.Links.Self, cfg.Token, cfg.UserAgent)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("HTTP %d from %s", resp.StatusCode, f.Links.Self)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".mirror-*.tmp")
	if err != nil {
		return false, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.CopyBuffer(tmpFile, resp.Body, make([]byte, chunkSize))
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return false, fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return false, fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return false, fmt.Errorf("renaming temp file: %w", err)
	}
	return false, nil
}

// MirrorRecord processes every file of one record in listing order,
// printing per-file status. Individual download errors are logged and
// counted; they never abort the record's remaining files. In debug mode
// only the first 2 files are processed.
func MirrorRecord(ctx context.Context, client *http.Client, record types.Record, cfg types.MirrorConfig, w io.Writer) RecordResult {
	files := record.Files
	if cfg.Debug && len(files) > debugFileCap {
		files = files[:debugFileCap]
		fmt.Fprintf(w, "Processing record %d: %s (debug mode, limiting to %d files)\n",
			record.ID, record.Title(), debugFileCap)
	} else {
		fmt.Fprintf(w, "Processing record %d: %s\n", record.ID, record.Title())
	}
	fmt.Fprintf(w, "Files to download: %d\n", len(files))

	var result RecordResult
	if len(files) == 0 {
		fmt.Fprintln(w, "  no files to download")
		return result
	}

	for _, f := range files {
		wasSkipped, err := MirrorFile(ctx, client, record, f, cfg, w)
		if err != nil {
			fmt.Fprintf(w, "  error downloading %s: %v\n", f.Key, err)
			result.Failed++
			continue
		}
		if wasSkipped {
			result.Skipped++
		} else {
			result.Downloaded++
			fmt.Fprintf(w, "  downloaded %s\n", f.Key)
		}
	}

	fmt.Fprintf(w, "  %d/%d files successful\n", result.Succeeded(), len(files))
	return result
}

// MirrorAll mirrors every record in original listing order with a running
// [i/total] index, then prints a batch summary. File failures are reported,
// never fatal.
func MirrorAll(ctx context.Context, client *http.Client, records []types.Record, cfg types.MirrorConfig, w io.Writer) BatchResult {
	var result BatchResult
	for i, record := range records {
		fmt.Fprintf(w, "\n[%d/%d] ", i+1, len(records))
		result.add(MirrorRecord(ctx, client, record, cfg, w))
	}
	fmt.Fprintf(w, "\nMirror summary: %d downloaded, %d skipped, %d failed (total: %d files, %d records)\n",
		result.Downloaded, result.Skipped, result.Failed, result.Total(), result.Records)
	return result
}
