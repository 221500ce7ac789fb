package tsfy

import (
	"context"
	"fmt"
	"strings"

	"github.com/yacobolo/tsfy/internal/log"
	"github.com/yacobolo/tsfy/internal/tsconfig"
)

// NewTable builds the preset table for the given settings.
func NewTable(experimental bool, compat string) (*tsconfig.Table, error) {
	c, err := tsconfig.ParseCompat(compat)
	if err != nil {
		return nil, err
	}
	return tsconfig.NewTable(tsconfig.Flags{ExperimentalDecorators: experimental}, c), nil
}

// Resolve looks up name in table. A missing or unknown name yields a
// *UsageError listing every valid preset.
func Resolve(table *tsconfig.Table, name string) (tsconfig.Descriptor, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return tsconfig.Descriptor{}, &UsageError{Known: table.Names()}
	}
	d, ok := table.Lookup(name)
	if !ok {
		return tsconfig.Descriptor{}, &UsageError{Preset: name, Known: table.Names()}
	}
	return d, nil
}

// Generate is the main entry point: resolve the preset, write its files and
// optionally bootstrap the manifest.
func Generate(ctx context.Context, config Config) (*GenerateResult, error) {
	logger := log.WithComponent("generate")

	table, err := NewTable(config.Experimental, config.Compat)
	if err != nil {
		return nil, err
	}

	// 1. Resolve
	descriptor, err := Resolve(table, config.Preset)
	if err != nil {
		return nil, err
	}

	store := config.Store
	if store == nil {
		dir, err := NewDirStore(".")
		if err != nil {
			return nil, err
		}
		store = dir
	}
	progress := config.Progress
	if progress == nil {
		progress = nopProgress{}
	}

	logger.Debug().
		Str("preset", descriptor.Name).
		Str("kind", descriptor.Kind.String()).
		Bool("experimental", config.Experimental).
		Msg("resolved preset")

	result := &GenerateResult{
		Preset:       descriptor.Name,
		Kind:         descriptor.Kind.String(),
		Experimental: config.Experimental,
	}

	// 2. Write files
	progress.Generating(descriptor.Name)
	result.Files = NewWriter(store, progress).Write(descriptor)

	// 3. Bootstrap manifest
	if config.Init {
		executor := config.Executor
		if executor == nil {
			executor = DefaultExecutor()
		}
		b := NewBootstrapper(store, executor, progress, config.Manifest, config.InitCommand)
		outcome := b.Run(ctx)
		result.Bootstrap = &outcome
	}

	progress.Finished(result)

	if n := result.Failed(); n > 0 {
		return result, fmt.Errorf("%w: %d of %d", ErrWriteFailed, n, len(result.Files))
	}
	return result, nil
}
