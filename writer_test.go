package tsfy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/tsfy/internal/tsconfig"
)

func lookup(t *testing.T, experimental bool, compat, name string) tsconfig.Descriptor {
	t.Helper()
	table, err := NewTable(experimental, compat)
	require.NoError(t, err)
	d, err := Resolve(table, name)
	require.NoError(t, err)
	return d
}

func statuses(outcomes []FileOutcome) map[string]Status {
	out := make(map[string]Status, len(outcomes))
	for _, o := range outcomes {
		out[o.Name] = o.Status
	}
	return out
}

func TestWriterSingleFile(t *testing.T) {
	store := newMemStore()
	outcomes := NewWriter(store, nil).Write(lookup(t, false, "", "node"))

	require.Len(t, outcomes, 1)
	assert.Equal(t, FileOutcome{Name: "tsconfig.json", Status: StatusCreated}, outcomes[0])

	content, _ := lookup(t, false, "", "node").Content()
	want, err := content.Encode()
	require.NoError(t, err)
	assert.Equal(t, string(want), string(store.files["tsconfig.json"]))
}

func TestWriterIsIdempotent(t *testing.T) {
	for _, preset := range []string{"vite", "node", "next"} {
		t.Run(preset, func(t *testing.T) {
			store := newMemStore()
			w := NewWriter(store, nil)
			d := lookup(t, false, "", preset)

			first := w.Write(d)
			for _, o := range first {
				assert.Equal(t, StatusCreated, o.Status, o.Name)
			}
			writes := len(store.writes)
			assert.Equal(t, len(d.Files), writes)

			second := w.Write(d)
			require.Len(t, second, len(d.Files))
			for _, o := range second {
				assert.Equal(t, StatusSkipped, o.Status, o.Name)
			}
			assert.Len(t, store.writes, writes, "second run must not write")
		})
	}
}

func TestWriterNeverOverwrites(t *testing.T) {
	store := newMemStore("tsconfig.json")
	outcomes := NewWriter(store, nil).Write(lookup(t, false, "", "next"))

	assert.Equal(t, StatusSkipped, outcomes[0].Status)
	assert.Equal(t, "existing", string(store.files["tsconfig.json"]))
	assert.Empty(t, store.writes)
}

func TestWriterMultiPartialCompletion(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     map[string]Status
	}{
		{
			name:     "app config exists",
			existing: []string{"tsconfig.app.json"},
			want: map[string]Status{
				"tsconfig.json":      StatusCreated,
				"tsconfig.app.json":  StatusSkipped,
				"tsconfig.node.json": StatusCreated,
			},
		},
		{
			name:     "node config and root exist",
			existing: []string{"tsconfig.node.json", "tsconfig.json"},
			want: map[string]Status{
				"tsconfig.json":      StatusSkipped,
				"tsconfig.app.json":  StatusCreated,
				"tsconfig.node.json": StatusSkipped,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore(tt.existing...)
			outcomes := NewWriter(store, nil).Write(lookup(t, false, "", "vite"))
			assert.Equal(t, tt.want, statuses(outcomes))
			for _, name := range tt.existing {
				assert.Equal(t, "existing", string(store.files[name]))
			}
		})
	}
}

func TestWriterReportsFailuresAndContinues(t *testing.T) {
	store := newMemStore()
	store.writeErr["tsconfig.app.json"] = errBoom

	progress := &recordingProgress{}
	outcomes := NewWriter(store, progress).Write(lookup(t, false, "", "vite"))

	require.Len(t, outcomes, 3)
	assert.Equal(t, StatusCreated, outcomes[0].Status)
	assert.Equal(t, StatusFailed, outcomes[1].Status)
	assert.ErrorIs(t, outcomes[1].Err, errBoom)
	assert.Equal(t, StatusCreated, outcomes[2].Status)

	assert.Equal(t, []string{
		"created tsconfig.json",
		"failed tsconfig.app.json",
		"created tsconfig.node.json",
	}, progress.events)
}
