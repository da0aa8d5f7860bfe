// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/zenodo-mirror/pkg/types"
)

const (
	defaultBaseURL   = "https://zenodo.org/api"
	defaultDataDir   = "data"
	defaultPageSize  = 50
	defaultPageDelay = 100 * time.Millisecond
	defaultUserAgent = "zenodo-mirror/0.1"

	// iodpCommunityID identifies the IODP community on Zenodo.
	iodpCommunityID = "c2f742bc-82f9-4f1e-911e-d1542e88cad7"

	// envDebug enables limited mode when set to a truthy value.
	envDebug = "DEBUG"

	secretsDir = ".secrets/"
)

// stringSetting resolves a string option: flag, then viper, then fallback.
func stringSetting(cmd *cobra.Command, flag, viperKey, fallback string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	if v := viper.GetString(viperKey); v != "" {
		return v
	}
	return fallback
}

// truthy reports whether s is one of the accepted true spellings.
func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// debugEnabled combines the --debug flag with the DEBUG environment
// variable; either one turns limited mode on.
func debugEnabled(cmd *cobra.Command) bool {
	if flagged, _ := cmd.Flags().GetBool("debug"); flagged {
		return true
	}
	return truthy(os.Getenv(envDebug))
}

// apiConfig builds the shared API settings from flags and config.
func apiConfig(cmd *cobra.Command, token string) types.APIConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("timeout")
	}
	return types.APIConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		BaseURL: stringSetting(cmd, "base-url", "base_url", defaultBaseURL),
		Token:   token,
	}
}

// listingConfig builds the enumeration settings.
func listingConfig(cmd *cobra.Command, token string, debug bool) types.ListingConfig {
	pageSize, _ := cmd.Flags().GetInt("page-size")
	if pageSize == 0 {
		pageSize = viper.GetInt("page_size")
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	delay, _ := cmd.Flags().GetDuration("delay")
	if delay == 0 {
		delay = viper.GetDuration("page_delay")
	}
	if delay == 0 {
		delay = defaultPageDelay
	}
	return types.ListingConfig{
		APIConfig: apiConfig(cmd, token),
		Community: stringSetting(cmd, "community", "community", iodpCommunityID),
		PageSize:  pageSize,
		PageDelay: delay,
		Debug:     debug,
	}
}

// mirrorConfig builds the file-mirror settings.
func mirrorConfig(cmd *cobra.Command, token string, debug bool) types.MirrorConfig {
	return types.MirrorConfig{
		APIConfig: apiConfig(cmd, token),
		DataDir:   stringSetting(cmd, "data-dir", "data_dir", defaultDataDir),
		Debug:     debug,
	}
}

// exportConfig builds the metadata index settings.
func exportConfig(cmd *cobra.Command) types.ExportConfig {
	return types.ExportConfig{
		DataDir:   stringSetting(cmd, "data-dir", "data_dir", defaultDataDir),
		IndexName: viper.GetString("index_name"),
	}
}

// newClient builds the single HTTP client shared by a run.
func newClient(cfg types.APIConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}
