package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yacobolo/tsfy"
	"github.com/yacobolo/tsfy/internal/report"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List available presets",
		Long:    `List every preset of the active table with the files it writes.`,
		Args:    cobra.NoArgs,
		PreRunE: setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config := buildGenerateConfig()
			table, err := tsfy.NewTable(config.Experimental, config.Compat)
			if err != nil {
				return err
			}

			colors := useColors()
			w := cmd.OutOrStdout()
			width := 0
			for _, name := range table.Names() {
				width = max(width, len(name))
			}
			for _, d := range table.Entries() {
				fmt.Fprintf(w, "%-*s  %-6s  %s\n", width, d.Name, d.Kind,
					report.RenderStyle(report.StyleGray, strings.Join(d.FileNames(), ", "), colors))
			}
			return nil
		},
	}
}
