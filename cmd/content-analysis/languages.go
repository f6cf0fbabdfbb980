// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/content-analysis/internal/i18n"
	"github.com/pdiddy/content-analysis/internal/language"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the languages with dedicated tokenization rules",
	Long: `Languages lists every language config: its code, its name, whether the
consecutive sentence beginnings check runs for it, and whether a message
catalog translates its feedback. Other locales fall back to the default
config and English messages.`,
	Run: func(cmd *cobra.Command, args []string) {
		writeLanguages(cmd.OutOrStdout())
	},
}

func writeLanguages(w io.Writer) {
	catalogs := i18n.Available()
	fmt.Fprintf(w, "%-4s  %-12s  %-10s  %s\n", "Code", "Name", "Beginnings", "Messages")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	for _, c := range language.Supported() {
		fmt.Fprintf(w, "%-4s  %-12s  %-10s  %s\n", c.Code, c.Name, yesNo(c.SentenceBeginnings), yesNo(slices.Contains(catalogs, c.Code)))
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
