package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/zenodo-mirror/internal/index"
	"github.com/pdiddy/zenodo-mirror/internal/mirror"
	"github.com/pdiddy/zenodo-mirror/internal/secrets"
	"github.com/pdiddy/zenodo-mirror/internal/zenodo"
)

var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Enumerate community records and download all attached files",
	Long: `Mirror runs the full pass: enumerate every record of the community, write
the metadata index, then download each record's files into the data tree.
Files already present with a matching size are skipped. Individual download
failures are reported but never abort the run.`,
	RunE: runMirror,
}

func init() {
	mirrorCmd.Flags().Int("page-size", 0, "records per listing page (default 50)")
	mirrorCmd.Flags().Duration("delay", 0, "delay between listing pages (default 100ms)")

	rootCmd.AddCommand(mirrorCmd)
}

func runMirror(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	token := secrets.APIToken(secretsDir)
	if token == "" {
		return fmt.Errorf("%s environment variable not set: export %s='your_api_key_here' (or add %szenodo-api-key)",
			secrets.EnvAPIKey, secrets.EnvAPIKey, secretsDir)
	}

	debug := debugEnabled(cmd)

	fmt.Fprintln(out, "Zenodo community mirror")
	fmt.Fprintln(out, "=======================")
	if debug {
		fmt.Fprintln(out, "DEBUG MODE ENABLED - limited downloads for testing")
	}

	lcfg := listingConfig(cmd, token, debug)
	client := newClient(lcfg.APIConfig)

	records := zenodo.ListRecords(cmd.Context(), client, lcfg, out)
	if len(records) == 0 {
		return fmt.Errorf("no records found for community %s", lcfg.Community)
	}

	ecfg := exportConfig(cmd)
	indexPath := index.Path(ecfg)
	if err := index.WriteJSON(records, indexPath); err != nil {
		return fmt.Errorf("writing metadata index: %w", err)
	}
	fmt.Fprintf(out, "Metadata saved to %s\n", indexPath)

	mcfg := mirrorConfig(cmd, token, debug)
	fmt.Fprintf(out, "\nStarting download of files from %d records...\n", len(records))

	result := mirror.MirrorAll(cmd.Context(), client, records, mcfg, out)
	if result.HasFailures() {
		fmt.Fprintf(out, "%d file(s) failed to download; see log above\n", result.Failed)
	}

	dataDir := mcfg.DataDir
	if abs, err := filepath.Abs(dataDir); err == nil {
		dataDir = abs
	}
	fmt.Fprintf(out, "\nMirror complete. Data saved to %s\n", dataDir)
	return nil
}
