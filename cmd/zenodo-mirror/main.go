// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the zenodo-mirror CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the zenodo-mirror CLI.
var rootCmd = &cobra.Command{
	Use:   "zenodo-mirror",
	Short: "Mirror a Zenodo community's records and files to local storage",
	Long: `zenodo-mirror enumerates the records of a Zenodo community, exports a
metadata index, and downloads each record's attached files into a local
data/ tree. Files already present with a matching byte size are skipped,
so repeated runs only fetch what changed.

The full run is the mirror subcommand; records and export expose the
enumeration and index stages on their own.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./zenodo-mirror.yaml or ~/.config/zenodo-mirror/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "limited mode: at most 2 records with 2 files each")
	rootCmd.PersistentFlags().String("community", "", "community UUID to mirror (default: IODP)")
	rootCmd.PersistentFlags().String("base-url", "", "Zenodo API base URL")
	rootCmd.PersistentFlags().String("data-dir", "", `root directory for mirrored data (default "data")`)
	rootCmd.PersistentFlags().Duration("timeout", 0, "HTTP request timeout (default none)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("zenodo-mirror")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "zenodo-mirror"))
		}
	}

	viper.SetEnvPrefix("ZENODO_MIRROR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
