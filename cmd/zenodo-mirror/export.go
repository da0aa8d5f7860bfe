package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/zenodo-mirror/internal/index"
	"github.com/pdiddy/zenodo-mirror/internal/secrets"
	"github.com/pdiddy/zenodo-mirror/internal/zenodo"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the metadata index without downloading files",
	Long: `Export enumerates the community listing and writes the projected metadata
index (id, title, description, creators, publication date, DOI, and file
name/size pairs). The index is fully overwritten each run.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().Int("page-size", 0, "records per listing page (default 50)")
	exportCmd.Flags().Duration("delay", 0, "delay between listing pages (default 100ms)")
	exportCmd.Flags().String("format", "json", "index format: json or yaml")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	token := secrets.APIToken(secretsDir)

	lcfg := listingConfig(cmd, token, debugEnabled(cmd))
	client := newClient(lcfg.APIConfig)

	records := zenodo.ListRecords(cmd.Context(), client, lcfg, out)
	if len(records) == 0 {
		return fmt.Errorf("no records found for community %s", lcfg.Community)
	}

	ecfg := exportConfig(cmd)
	path := index.Path(ecfg)

	format, _ := cmd.Flags().GetString("format")
	switch strings.ToLower(format) {
	case "", "json":
		if err := index.WriteJSON(records, path); err != nil {
			return fmt.Errorf("writing metadata index: %w", err)
		}
	case "yaml":
		path = strings.TrimSuffix(path, ".json") + ".yaml"
		if err := index.WriteYAML(records, path); err != nil {
			return fmt.Errorf("writing metadata index: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q (expected json or yaml)", format)
	}

	fmt.Fprintf(out, "Metadata saved to %s\n", path)
	return nil
}
