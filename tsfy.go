// Package tsfy writes preset tsconfig files into a project directory.
//
// A preset is resolved by name from the preset table and every file it
// describes is written unless it already exists:
//
//	result, err := tsfy.Generate(ctx, tsfy.Config{
//		Preset:       "vite",
//		Experimental: true,
//	})
//
// Presets are either single-file (tsconfig.json) or multi-file (vite writes
// tsconfig.json, tsconfig.app.json and tsconfig.node.json). Existing files
// are never overwritten.
//
// When Config.Init is set, the package manifest is bootstrapped by running
// an external command (npm init -y by default) if package.json is missing.
// A failing bootstrap is reported in the result and never aborts Generate.
//
// # CLI Tool
//
//	go install github.com/yacobolo/tsfy/cmd/tsfy@latest
//	tsfy vite --experimental -y
package tsfy
