package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/tsfy"
)

const defaultConfigPath = ".tsfy.yaml"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	k = koanf.New(".")

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (TSFY_* prefix)
	if err := k.Load(env.Provider("TSFY_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to a config key. The first underscore
// separates the section, later ones become dashes:
//
//	TSFY_VERBOSE                -> verbose
//	TSFY_GENERATE_EXPERIMENTAL  -> generate.experimental
//	TSFY_GENERATE_OUTPUT_FORMAT -> generate.output-format
//
// Anything else maps to "" and is ignored, so TSFY_EXPERIMENTAL cannot
// pose as the --experimental flag.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "TSFY_"))
	section, rest, ok := strings.Cut(key, "_")
	if !ok {
		if topLevelKeys[key] {
			return key
		}
		return ""
	}
	if !configSections[section] || rest == "" {
		return ""
	}
	return section + "." + strings.ReplaceAll(rest, "_", "-")
}

var (
	topLevelKeys   = map[string]bool{"verbose": true, "color": true}
	configSections = map[string]bool{"generate": true, "bootstrap": true}
)

// buildGenerateConfig constructs the library's Config struct from koanf state.
func buildGenerateConfig() tsfy.Config {
	return tsfy.Config{
		Experimental: getBoolWithFallback("experimental", "generate.experimental", false),
		Compat:       getStringWithFallback("compat", "generate.compat", "v2"),
		Init:         getBoolWithFallback("init", "bootstrap.init", false),
		InitCommand:  getStringWithFallback("init-command", "bootstrap.command", tsfy.DefaultInitCommand),
		Manifest:     getStringWithFallback("manifest", "bootstrap.manifest", tsfy.DefaultManifest),
	}
}

// outputFormat returns the validated output format.
func outputFormat() (string, error) {
	format := strings.ToLower(getStringWithFallback("output-format", "generate.output-format", "text"))
	switch format {
	case "text", "json":
		return format, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text or json)", format)
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
