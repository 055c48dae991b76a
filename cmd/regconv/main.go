// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the regconv CLI, which converts
// POJK/SEOJK regulation PDFs into record files and an embedded SQLite
// database for the offline viewer.
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

// rootCmd is the base command for the regconv CLI.
var rootCmd = &cobra.Command{
	Use:   "regconv",
	Short: "Convert regulation PDFs into a queryable offline dataset",
	Long: `regconv converts POJK regulations and SEOJK circulars from PDF into
structured record files and an embedded SQLite database. The database is
copied verbatim into the offline viewer's bundled data directory; the
converter has no runtime relationship with the viewer.

Text after a "Penjelasan" heading, or after a second "Pasal 1" heading,
is treated as the non-normative explanatory appendix and discarded.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./regconv.yaml or ~/.config/regconv/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("regconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "regconv"))
		}
	}

	viper.SetEnvPrefix("REGCONV")
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
