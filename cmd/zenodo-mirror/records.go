package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/zenodo-mirror/internal/secrets"
	"github.com/pdiddy/zenodo-mirror/internal/zenodo"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "List the community's records without downloading anything",
	Long: `Records enumerates the community listing and prints each record's id,
title, file count, and publication date. Nothing is written to disk.`,
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().Int("page-size", 0, "records per listing page (default 50)")
	recordsCmd.Flags().Duration("delay", 0, "delay between listing pages (default 100ms)")
	recordsCmd.Flags().Bool("json", false, "output records as JSON")

	rootCmd.AddCommand(recordsCmd)
}

func runRecords(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// Listing a public community works without a credential, so a missing
	// token is not fatal here.
	token := secrets.APIToken(secretsDir)

	lcfg := listingConfig(cmd, token, debugEnabled(cmd))
	client := newClient(lcfg.APIConfig)

	records := zenodo.ListRecords(cmd.Context(), client, lcfg, cmd.ErrOrStderr())

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return zenodo.FormatJSON(records, out)
	}
	zenodo.FormatTable(records, out)
	return nil
}
