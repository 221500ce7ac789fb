//go:build !windows

package tsfy

import (
	"github.com/google/renameio/v2"
)

// writeFileAtomic writes through a pending file: temp file, fsync, rename.
func writeFileAtomic(path string, data []byte) error {
	return renameio.WriteFile(path, data, 0o644)
}
