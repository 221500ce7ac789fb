package report

import (
	"encoding/json"
	"io"

	"github.com/yacobolo/tsfy"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version      string         `json:"version"`
	Preset       string         `json:"preset"`
	Kind         string         `json:"kind"`
	Experimental bool           `json:"experimental"`
	Summary      JSONSummary    `json:"summary"`
	Files        []JSONFile     `json:"files"`
	Bootstrap    *JSONBootstrap `json:"bootstrap,omitempty"`
}

// JSONSummary contains file counts
type JSONSummary struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// JSONFile represents the outcome for one target file
type JSONFile struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// JSONBootstrap represents the manifest bootstrap step
type JSONBootstrap struct {
	Manifest string `json:"manifest"`
	Command  string `json:"command"`
	Status   string `json:"status"` // "ran", "skipped", "failed"
	Error    string `json:"error,omitempty"`
}

// WriteJSON writes the generate result as JSON
func WriteJSON(w io.Writer, result *tsfy.GenerateResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result))
}

func buildJSONOutput(result *tsfy.GenerateResult) JSONOutput {
	files := make([]JSONFile, len(result.Files))
	for i, f := range result.Files {
		files[i] = JSONFile{Name: f.Name, Status: string(f.Status)}
		if f.Err != nil {
			files[i].Error = f.Err.Error()
		}
	}

	out := JSONOutput{
		Version:      "1.0",
		Preset:       result.Preset,
		Kind:         result.Kind,
		Experimental: result.Experimental,
		Summary: JSONSummary{
			Created: result.Created(),
			Skipped: result.Skipped(),
			Failed:  result.Failed(),
		},
		Files: files,
	}

	if b := result.Bootstrap; b != nil {
		jb := &JSONBootstrap{Manifest: b.Manifest, Command: b.Command, Status: "ran"}
		switch {
		case b.Skipped:
			jb.Status = "skipped"
		case b.Failed():
			jb.Status = "failed"
			jb.Error = b.Err.Error()
		}
		out.Bootstrap = jb
	}
	return out
}
