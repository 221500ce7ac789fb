package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newInitConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Generate a default .tsfy.yaml config file",
		Long:  `Create a .tsfy.yaml configuration file in the current directory with the default settings.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				path = defaultConfigPath
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
				return fmt.Errorf("writing config file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite existing config file")
	return cmd
}

const defaultConfig = `# tsfy configuration
# Flags override environment variables (TSFY_*), which override this file.

verbose: false
color: false

# Preset generation
generate:
  experimental: false     # merge experimentalDecorators + emitDecoratorMetadata
  compat: v2              # v2 | v1 (single-file presets, adds "base")
  output-format: text     # text | json

# Package manifest bootstrap
bootstrap:
  init: false             # same as -y / --init
  command: npm init -y
  manifest: package.json
`
