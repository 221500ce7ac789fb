package tsfy

import (
	"fmt"
	"os"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"
)

// FileStore is where generated files land.
type FileStore interface {
	// Exists reports whether name is already present.
	Exists(name string) bool
	// Write creates name with data.
	Write(name string, data []byte) error
}

// DirStore is a FileStore rooted at a directory. Names are resolved inside
// the root and can never escape it.
type DirStore struct {
	root string
}

// NewDirStore returns a store rooted at dir. An empty dir means the current
// working directory.
func NewDirStore(dir string) (*DirStore, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve store root %s: %w", dir, err)
	}
	return &DirStore{root: abs}, nil
}

// Root returns the absolute root directory.
func (s *DirStore) Root() string {
	return s.root
}

// Path returns the absolute path name resolves to.
func (s *DirStore) Path(name string) (string, error) {
	p, err := securejoin.SecureJoin(s.root, name)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", name, err)
	}
	return p, nil
}

// Exists checks the directory entry itself. A symlink counts as present even
// when its target lies outside the root or is dangling.
func (s *DirStore) Exists(name string) bool {
	p := filepath.Join(s.root, name)
	if !filepath.IsLocal(name) {
		var err error
		if p, err = s.Path(name); err != nil {
			return false
		}
	}
	_, err := os.Lstat(p)
	return err == nil
}

func (s *DirStore) Write(name string, data []byte) error {
	p, err := s.Path(name)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(p, data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
