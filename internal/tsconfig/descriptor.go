package tsconfig

// Kind distinguishes single-file presets from multi-file presets.
type Kind int

const (
	// KindSingle writes exactly one tsconfig.json.
	KindSingle Kind = iota
	// KindMulti writes an ordered list of files.
	KindMulti
)

// String returns "single" or "multi".
func (k Kind) String() string {
	if k == KindMulti {
		return "multi"
	}
	return "single"
}

// DefaultFileName is the target of every single-file preset.
const DefaultFileName = "tsconfig.json"

// File is one file produced by a preset.
type File struct {
	Name    string
	Content Options
	// Decorators marks files whose compilerOptions receive the
	// experimental decorator options when that flag is enabled.
	Decorators bool
}

// Descriptor describes everything a preset writes.
type Descriptor struct {
	Name        string
	Description string
	Kind        Kind
	Files       []File
}

// Single builds a single-file descriptor targeting tsconfig.json.
func Single(name, description string, content Options) Descriptor {
	return Descriptor{
		Name:        name,
		Description: description,
		Kind:        KindSingle,
		Files:       []File{{Name: DefaultFileName, Content: content, Decorators: true}},
	}
}

// Multi builds a multi-file descriptor. Files are written in the given order.
func Multi(name, description string, files ...File) Descriptor {
	return Descriptor{
		Name:        name,
		Description: description,
		Kind:        KindMulti,
		Files:       files,
	}
}

// Content returns the options of a single-file descriptor.
func (d Descriptor) Content() (Options, bool) {
	if d.Kind != KindSingle || len(d.Files) != 1 {
		return nil, false
	}
	return d.Files[0].Content, true
}

// FileNames lists the files the descriptor writes, in order.
func (d Descriptor) FileNames() []string {
	names := make([]string, len(d.Files))
	for i, f := range d.Files {
		names[i] = f.Name
	}
	return names
}

// DecoratorOptions are merged into compilerOptions when experimental
// decorators are enabled.
var DecoratorOptions = Options{
	{Key: "experimentalDecorators", Value: true},
	{Key: "emitDecoratorMetadata", Value: true},
}

// WithDecorators returns a copy of d where every file marked for decorators
// has DecoratorOptions merged into its compilerOptions.
func WithDecorators(d Descriptor) Descriptor {
	files := make([]File, len(d.Files))
	for i, f := range d.Files {
		files[i] = f
		if !f.Decorators {
			continue
		}
		compilerOptions, _ := f.Content.Get("compilerOptions")
		co, _ := compilerOptions.(Options)
		files[i].Content = f.Content.Set("compilerOptions", co.Merge(DecoratorOptions))
	}
	d.Files = files
	return d
}
