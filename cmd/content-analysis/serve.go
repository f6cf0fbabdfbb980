// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/content-analysis/internal/indexable"
	"github.com/pdiddy/content-analysis/internal/mcpserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis as MCP tools over stdio",
	Long: `Serve runs a Model Context Protocol server on stdin and stdout with the
tools analyze_content and list_languages. With --index it also exposes
analyze_indexable over the local index.

Nothing but protocol messages is written to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		withIndex, _ := cmd.Flags().GetBool("index")

		var store *indexable.Store
		if withIndex {
			s, err := indexable.NewStore(cfg.Store)
			if err != nil {
				return err
			}
			defer s.Close()
			store = s
		}

		tools, err := mcpserver.NewTools(cfg.Analysis, store)
		if err != nil {
			return err
		}
		return mcpserver.Serve(version, tools)
	},
}

func init() {
	serveCmd.Flags().Bool("index", false, "expose analyze_indexable over the local index")

	rootCmd.AddCommand(serveCmd)
}
