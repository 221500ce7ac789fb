package tsfy

import (
	"fmt"

	"github.com/yacobolo/tsfy/internal/log"
	"github.com/yacobolo/tsfy/internal/tsconfig"
)

// Writer materializes preset descriptors into a FileStore. It never
// overwrites: every target is checked and written independently, so one
// existing file does not block the others.
type Writer struct {
	store    FileStore
	progress Progress
}

// NewWriter creates a writer. progress may be nil.
func NewWriter(store FileStore, progress Progress) *Writer {
	if progress == nil {
		progress = nopProgress{}
	}
	return &Writer{store: store, progress: progress}
}

// Write writes every file of d in order and returns one outcome per file.
func (w *Writer) Write(d tsconfig.Descriptor) []FileOutcome {
	logger := log.WithComponent("writer")
	outcomes := make([]FileOutcome, 0, len(d.Files))

	for _, f := range d.Files {
		outcome := w.writeFile(f)
		logger.Debug().
			Str("preset", d.Name).
			Str("file", f.Name).
			Str("status", string(outcome.Status)).
			Msg("target processed")
		w.progress.FileResult(outcome)
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

func (w *Writer) writeFile(f tsconfig.File) FileOutcome {
	if w.store.Exists(f.Name) {
		return FileOutcome{Name: f.Name, Status: StatusSkipped}
	}

	data, err := f.Content.Encode()
	if err != nil {
		return FileOutcome{Name: f.Name, Status: StatusFailed, Err: fmt.Errorf("encode %s: %w", f.Name, err)}
	}
	if err := w.store.Write(f.Name, data); err != nil {
		return FileOutcome{Name: f.Name, Status: StatusFailed, Err: err}
	}
	return FileOutcome{Name: f.Name, Status: StatusCreated}
}
