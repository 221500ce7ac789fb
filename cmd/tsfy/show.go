package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yacobolo/tsfy"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <preset>",
		Short: "Print the files a preset would write",
		Long: `Print the serialized config files of a preset without writing anything.
Multi-file presets print a header before each file unless --file selects one.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := buildGenerateConfig()
			table, err := tsfy.NewTable(config.Experimental, config.Compat)
			if err != nil {
				return err
			}
			d, err := tsfy.Resolve(table, args[0])
			if err != nil {
				return fmt.Errorf("%v (valid presets: %s)", err, strings.Join(table.Names(), ", "))
			}

			only, _ := cmd.Flags().GetString("file")
			w := cmd.OutOrStdout()
			found := false
			for _, f := range d.Files {
				if only != "" && f.Name != only {
					continue
				}
				found = true
				data, err := f.Content.Encode()
				if err != nil {
					return fmt.Errorf("encode %s: %w", f.Name, err)
				}
				if only == "" && len(d.Files) > 1 {
					fmt.Fprintf(w, "==> %s <==\n", f.Name)
				}
				if _, err := w.Write(data); err != nil {
					return err
				}
			}
			if !found {
				return fmt.Errorf("preset %s has no file %q (files: %v)", d.Name, only, d.FileNames())
			}
			return nil
		},
	}
	cmd.Flags().String("file", "", "Print only this file of the preset")
	return cmd
}
