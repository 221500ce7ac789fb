package tsconfig

import (
	"fmt"
	"strings"
)

// Flags are the feature switches that shape the preset table.
type Flags struct {
	ExperimentalDecorators bool
}

// Compat selects the preset table revision.
type Compat string

const (
	// CompatV2 is the current table: vite is split across three files.
	CompatV2 Compat = "v2"
	// CompatV1 is the original single-file table, including "base".
	CompatV1 Compat = "v1"
)

// ParseCompat validates a compat name. The empty string means CompatV2.
func ParseCompat(s string) (Compat, error) {
	switch Compat(strings.ToLower(strings.TrimSpace(s))) {
	case "", CompatV2:
		return CompatV2, nil
	case CompatV1:
		return CompatV1, nil
	}
	return "", fmt.Errorf("unknown compat version %q (want v1 or v2)", s)
}

// Table maps preset names to descriptors, keeping authored order.
type Table struct {
	entries []Descriptor
}

// NewTable builds the preset table for the given flags and compat revision.
// Identical arguments always produce structurally identical tables.
func NewTable(flags Flags, compat Compat) *Table {
	var entries []Descriptor
	if compat == CompatV1 {
		entries = []Descriptor{viteLegacyPreset(), nodePreset(), nextPreset(), basePreset()}
	} else {
		entries = []Descriptor{vitePreset(), nodePreset(), nextPreset()}
	}

	if flags.ExperimentalDecorators {
		for i := range entries {
			entries[i] = WithDecorators(entries[i])
		}
	}
	return &Table{entries: entries}
}

// Lookup returns the descriptor registered under name. Matching is
// case-insensitive.
func (t *Table) Lookup(name string) (Descriptor, bool) {
	name = strings.ToLower(name)
	for _, d := range t.entries {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Names returns every preset name in authored order.
func (t *Table) Names() []string {
	names := make([]string, len(t.entries))
	for i, d := range t.entries {
		names[i] = d.Name
	}
	return names
}

// Entries returns the descriptors in authored order.
func (t *Table) Entries() []Descriptor {
	out := make([]Descriptor, len(t.entries))
	copy(out, t.entries)
	return out
}

func vitePreset() Descriptor {
	return Multi("vite", "React, Vue, Svelte - creates 3 files",
		File{
			Name: "tsconfig.json",
			Content: Options{
				{"files", []any{}},
				{"references", []any{
					Options{{"path", "./tsconfig.app.json"}},
					Options{{"path", "./tsconfig.node.json"}},
				}},
			},
		},
		File{
			Name:       "tsconfig.app.json",
			Content:    viteAppConfig(),
			Decorators: true,
		},
		File{
			Name: "tsconfig.node.json",
			Content: Options{
				{"compilerOptions", Options{
					{"target", "ES2022"},
					{"lib", []string{"ES2022"}},
					{"module", "ESNext"},
					{"skipLibCheck", true},
					{"moduleResolution", "bundler"},
					{"allowImportingTsExtensions", true},
					{"isolatedModules", true},
					{"moduleDetection", "force"},
					{"noEmit", true},
					{"strict", true},
					{"noUnusedLocals", true},
					{"noUnusedParameters", true},
					{"noFallthroughCasesInSwitch", true},
				}},
				{"include", []string{"vite.config.ts"}},
			},
		},
	)
}

func viteAppConfig() Options {
	return Options{
		{"compilerOptions", Options{
			{"target", "ES2020"},
			{"useDefineForClassFields", true},
			{"lib", []string{"ES2020", "DOM", "DOM.Iterable"}},
			{"module", "ESNext"},
			{"skipLibCheck", true},
			{"moduleResolution", "bundler"},
			{"allowImportingTsExtensions", true},
			{"resolveJsonModule", true},
			{"isolatedModules", true},
			{"moduleDetection", "force"},
			{"noEmit", true},
			{"jsx", "react-jsx"},
			{"strict", true},
			{"noUnusedLocals", true},
			{"noUnusedParameters", true},
			{"noFallthroughCasesInSwitch", true},
		}},
		{"include", []string{"src"}},
	}
}

// viteLegacyPreset is the v1 vite preset: the browser config in a single file.
func viteLegacyPreset() Descriptor {
	return Single("vite", "React, Vue, Svelte - creates 1 file", viteAppConfig())
}

func nodePreset() Descriptor {
	return Single("node", "Backend, Scripts - creates 1 file", Options{
		{"compilerOptions", Options{
			{"target", "ES2022"},
			{"module", "NodeNext"},
			{"moduleResolution", "NodeNext"},
			{"lib", []string{"ES2022"}},
			{"outDir", "./dist"},
			{"rootDir", "./src"},
			{"strict", true},
			{"noImplicitAny", true},
			{"esModuleInterop", true},
			{"skipLibCheck", true},
			{"forceConsistentCasingInFileNames", true},
		}},
		{"include", []string{"src/**/*"}},
		{"exclude", []string{"node_modules", "**/*.spec.ts"}},
	})
}

func nextPreset() Descriptor {
	return Single("next", "Next.js - creates 1 file", Options{
		{"compilerOptions", Options{
			{"target", "es5"},
			{"lib", []string{"dom", "dom.iterable", "esnext"}},
			{"allowJs", true},
			{"skipLibCheck", true},
			{"strict", true},
			{"forceConsistentCasingInFileNames", true},
			{"noEmit", true},
			{"esModuleInterop", true},
			{"module", "esnext"},
			{"moduleResolution", "node"},
			{"resolveJsonModule", true},
			{"isolatedModules", true},
			{"jsx", "preserve"},
			{"incremental", true},
			{"plugins", []any{Options{{"name", "next"}}}},
		}},
		{"include", []string{"next-env.d.ts", "**/*.ts", "**/*.tsx", ".next/types/**/*.ts"}},
		{"exclude", []string{"node_modules"}},
	})
}

func basePreset() Descriptor {
	return Single("base", "Plain TypeScript project - creates 1 file", Options{
		{"compilerOptions", Options{
			{"target", "ES2020"},
			{"module", "commonjs"},
			{"lib", []string{"ES2020"}},
			{"outDir", "./dist"},
			{"rootDir", "./src"},
			{"strict", true},
			{"esModuleInterop", true},
			{"skipLibCheck", true},
			{"forceConsistentCasingInFileNames", true},
		}},
		{"include", []string{"src"}},
		{"exclude", []string{"node_modules", "dist"}},
	})
}
