package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/tsfy"
	"github.com/yacobolo/tsfy/internal/log"
	"github.com/yacobolo/tsfy/internal/report"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tsfy <preset>",
		Short: "Write preset tsconfig files into the current directory",
		Long: `Scaffold TypeScript compiler configs from a named preset.
Existing files are never overwritten.`,
		Args:          cobra.ArbitraryArgs,
		PreRunE:       setup,
		RunE:          runGenerate,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.Bool("color", false, "Force color output")
	pf.String("config", defaultConfigPath, "Config file path")
	pf.Bool("experimental", false, "Enable decorators (experimentalDecorators, emitDecoratorMetadata)")
	pf.String("compat", "v2", `Preset table revision: v2, or v1 for the single-file presets including "base"`)

	f := cmd.Flags()
	f.BoolP("init", "y", false, `Run the manifest init command ("npm init -y") if package.json is missing`)
	f.String("init-command", tsfy.DefaultInitCommand, "Command used to create the package manifest")
	f.String("manifest", tsfy.DefaultManifest, "Package manifest file checked before running the init command")
	f.String("output-format", "text", "Output format: text|json")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		if c != c.Root() {
			return err
		}
		// setup has not run yet. Load what was parsed so --compat is honored.
		_ = loadConfig(c)
		printUsage(c, err.Error())
		return &tsfy.UsageError{Cause: err}
	})

	defaultHelp := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		if c != c.Root() {
			defaultHelp(c, args)
			return
		}
		w := c.OutOrStdout()
		_ = loadConfig(c)
		printUsage(c, "")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Commands:")
		for _, sub := range c.Commands() {
			if sub.IsAvailableCommand() {
				fmt.Fprintf(w, "  %-12s %s\n", sub.Name(), sub.Short)
			}
		}
	})

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newInitConfigCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// setup loads configuration and configures logging. Only commands that read
// the config use it, so a broken config file never blocks init-config.
func setup(cmd *cobra.Command, _ []string) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}
	log.Configure(log.Config{
		Verbose: getBoolWithFallback("verbose", "verbose", false),
		Output:  cmd.ErrOrStderr(),
		NoColor: !useColors(),
	})
	return nil
}

func useColors() bool {
	return report.ShouldUseColors(getBoolWithFallback("color", "color", false))
}

func runGenerate(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	config := buildGenerateConfig()
	if len(args) > 0 {
		config.Preset = args[0]
	}

	executor := &tsfy.OSExecutor{Stdin: cmd.InOrStdin(), Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}
	if format == "json" {
		// Keep stdout clean for the JSON document.
		executor.Stdout = cmd.ErrOrStderr()
	} else {
		config.Progress = report.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), useColors())
	}
	config.Executor = executor

	result, err := tsfy.Generate(cmd.Context(), config)
	if tsfy.IsUsageError(err) {
		printUsage(cmd, "specify a valid preset ("+err.Error()+")")
		return err
	}

	if format == "json" && result != nil {
		if jsonErr := report.WriteJSON(cmd.OutOrStdout(), result); jsonErr != nil {
			return errors.Join(err, jsonErr)
		}
	}
	return err
}

// printUsage prints the preset help. problem is empty for plain help.
func printUsage(cmd *cobra.Command, problem string) {
	root := cmd.Root()
	u := report.Usage{
		Command:    root.Name(),
		Problem:    problem,
		FlagUsages: root.LocalFlags().FlagUsages(),
	}

	// Help must list presets even when the config itself is broken.
	compat := getStringWithFallback("compat", "generate.compat", "v2")
	table, err := tsfy.NewTable(false, compat)
	if err != nil {
		table, _ = tsfy.NewTable(false, "v2")
	}
	u.Presets = table.Entries()

	report.PrintUsage(cmd.OutOrStdout(), u, useColors())
}
