// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the content-analysis CLI.
// It analyses web copy for SEO and readability, keeps an index of pages
// to analyse, and serves the analysis to MCP clients.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/content-analysis/internal/secrets"
	"github.com/pdiddy/content-analysis/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets *secrets.Secrets

// cfg is the configuration resolved from file, environment and defaults.
var cfg types.Config

// rootCmd is the base command for the content-analysis CLI.
var rootCmd = &cobra.Command{
	Use:   "content-analysis",
	Short: "SEO and readability analysis for web copy",
	Long: `content-analysis scores a page's copy against a set of SEO and
readability assessments. Each assessment rates one aspect of the text on a
1-9 scale with feedback, and each suite rolls its results into an overall
0-100 score.

Pages come from files (YAML, Markdown, text, HTML, PDF), from URLs, or from
the local index built with the index command.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/", os.Stderr)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if keys := s.Keys(); len(keys) > 0 {
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}

		c, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./content-analysis.yaml or ~/.config/content-analysis/content-analysis.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("content-analysis")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "content-analysis"))
		}
	}

	viper.SetEnvPrefix("CONTENT_ANALYSIS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig decodes viper's settings into types.Config. Keys follow the
// yaml tags and embedded sections are flattened.
func loadConfig() (types.Config, error) {
	var c types.Config
	err := viper.Unmarshal(&c, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "yaml"
		dc.Squash = true
	})
	if err != nil {
		return c, fmt.Errorf("decoding config: %w", err)
	}
	return c, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
