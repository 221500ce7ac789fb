package tsfy

import (
	"context"
	"errors"
	"fmt"

	"github.com/kballard/go-shellquote"

	"github.com/yacobolo/tsfy/internal/log"
)

// Bootstrapper creates the package manifest by running an external command
// when the manifest is missing. Failures are recorded, never returned.
type Bootstrapper struct {
	store    FileStore
	executor CommandExecutor
	progress Progress
	manifest string
	command  string
}

// NewBootstrapper creates a bootstrapper. Empty manifest and command fall
// back to DefaultManifest and DefaultInitCommand; progress may be nil.
func NewBootstrapper(store FileStore, executor CommandExecutor, progress Progress, manifest, command string) *Bootstrapper {
	if manifest == "" {
		manifest = DefaultManifest
	}
	if command == "" {
		command = DefaultInitCommand
	}
	if progress == nil {
		progress = nopProgress{}
	}
	return &Bootstrapper{
		store:    store,
		executor: executor,
		progress: progress,
		manifest: manifest,
		command:  command,
	}
}

// Run checks for the manifest and runs the init command if it is missing.
func (b *Bootstrapper) Run(ctx context.Context) BootstrapOutcome {
	outcome := b.run(ctx)
	b.progress.BootstrapResult(outcome)
	return outcome
}

func (b *Bootstrapper) run(ctx context.Context) BootstrapOutcome {
	logger := log.WithComponent("bootstrap")
	outcome := BootstrapOutcome{Manifest: b.manifest, Command: b.command}

	if b.store.Exists(b.manifest) {
		logger.Debug().Str("manifest", b.manifest).Msg("manifest exists, skipping init command")
		outcome.Skipped = true
		return outcome
	}

	argv, err := shellquote.Split(b.command)
	if err != nil {
		outcome.Err = fmt.Errorf("parse init command %q: %w", b.command, err)
		return outcome
	}
	if len(argv) == 0 {
		outcome.Err = errors.New("init command is empty")
		return outcome
	}

	b.progress.BootstrapStart(b.command)
	logger.Debug().Strs("argv", argv).Msg("running init command")

	if err := b.executor.ExecuteInteractive(ctx, argv[0], argv[1:]...); err != nil {
		logger.Debug().Err(err).Msg("init command failed")
		outcome.Err = fmt.Errorf("%s: %w", b.command, err)
	}
	return outcome
}
