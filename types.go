package tsfy

// Config holds generation settings.
type Config struct {
	Preset       string // preset name, matched case-insensitively
	Experimental bool   // merge experimentalDecorators/emitDecoratorMetadata
	Compat       string // preset table revision: "v2" (default) or "v1"

	Init        bool   // bootstrap the package manifest
	InitCommand string // command run to create the manifest (default: npm init -y)
	Manifest    string // manifest file name (default: package.json)

	Store    FileStore       // defaults to the current working directory
	Executor CommandExecutor // defaults to the OS executor with inherited stdio
	Progress Progress        // optional live status reporting
}

// Defaults used when the corresponding Config field is empty.
const (
	DefaultInitCommand = "npm init -y"
	DefaultManifest    = "package.json"
)

// Status is the outcome of writing a single file.
type Status string

const (
	StatusCreated Status = "created"
	StatusSkipped Status = "skipped" // target already existed
	StatusFailed  Status = "failed"
)

// FileOutcome records what happened to one target file.
type FileOutcome struct {
	Name   string
	Status Status
	Err    error
}

// BootstrapOutcome records the manifest bootstrap step.
type BootstrapOutcome struct {
	Manifest string
	Command  string
	Skipped  bool  // manifest already existed, command not run
	Err      error // command could not be parsed, spawned, or exited non-zero
}

// Failed reports whether the bootstrap command was attempted and failed.
func (b BootstrapOutcome) Failed() bool {
	return b.Err != nil
}

// GenerateResult contains the outcome of a Generate call.
type GenerateResult struct {
	Preset       string
	Kind         string // "single" or "multi"
	Experimental bool
	Files        []FileOutcome
	Bootstrap    *BootstrapOutcome // nil unless Config.Init was set
}

// Created returns the number of files written.
func (r *GenerateResult) Created() int {
	return r.count(StatusCreated)
}

// Skipped returns the number of files left untouched because they existed.
func (r *GenerateResult) Skipped() int {
	return r.count(StatusSkipped)
}

// Failed returns the number of files that could not be written.
func (r *GenerateResult) Failed() int {
	return r.count(StatusFailed)
}

func (r *GenerateResult) count(s Status) int {
	n := 0
	for _, f := range r.Files {
		if f.Status == s {
			n++
		}
	}
	return n
}

// Progress receives status updates while Generate runs, so messages
// interleave correctly with the bootstrap command's own output.
type Progress interface {
	Generating(preset string)
	FileResult(outcome FileOutcome)
	BootstrapStart(command string)
	BootstrapResult(outcome BootstrapOutcome)
	Finished(result *GenerateResult)
}

type nopProgress struct{}

func (nopProgress) Generating(string)                {}
func (nopProgress) FileResult(FileOutcome)           {}
func (nopProgress) BootstrapStart(string)            {}
func (nopProgress) BootstrapResult(BootstrapOutcome) {}
func (nopProgress) Finished(*GenerateResult)         {}
