package tsfy

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
)

// memStore is an in-memory FileStore.
type memStore struct {
	mu       sync.Mutex
	files    map[string][]byte
	writes   []string
	writeErr map[string]error
}

func newMemStore(existing ...string) *memStore {
	s := &memStore{files: make(map[string][]byte), writeErr: make(map[string]error)}
	for _, name := range existing {
		s.files[name] = []byte("existing")
	}
	return s
}

func (s *memStore) Exists(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.files[name]
	return ok
}

func (s *memStore) Write(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeErr[name]; err != nil {
		return err
	}
	s.files[name] = append([]byte(nil), data...)
	s.writes = append(s.writes, name)
	return nil
}

func (s *memStore) names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.files))
	for name := range s.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// fakeExecutor records commands instead of running them.
type fakeExecutor struct {
	calls [][]string
	err   error
	// onRun lets a test simulate the command's side effects.
	onRun func()
}

func (e *fakeExecutor) ExecuteInteractive(_ context.Context, name string, args ...string) error {
	e.calls = append(e.calls, append([]string{name}, args...))
	if e.onRun != nil {
		e.onRun()
	}
	return e.err
}

// recordingProgress keeps a flat log of progress events.
type recordingProgress struct {
	events []string
}

func (p *recordingProgress) Generating(preset string) {
	p.events = append(p.events, "generating "+preset)
}

func (p *recordingProgress) FileResult(o FileOutcome) {
	p.events = append(p.events, string(o.Status)+" "+o.Name)
}

func (p *recordingProgress) BootstrapStart(command string) {
	p.events = append(p.events, "bootstrap start "+command)
}

func (p *recordingProgress) BootstrapResult(o BootstrapOutcome) {
	switch {
	case o.Skipped:
		p.events = append(p.events, "bootstrap skipped")
	case o.Err != nil:
		p.events = append(p.events, "bootstrap failed")
	default:
		p.events = append(p.events, "bootstrap done")
	}
}

func (p *recordingProgress) Finished(r *GenerateResult) {
	p.events = append(p.events, "finished "+r.Preset)
}

func (p *recordingProgress) String() string {
	return strings.Join(p.events, "\n")
}

var errBoom = errors.New("boom")
