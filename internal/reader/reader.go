// Package reader loads input files into memory.
package reader

import (
	"io"
	"log/slog"
	"os"

	"github.com/xll-gen/bin2c/internal/errkind"
)

// ReadAll returns the full content of the file at path.
//
// The buffer is sized from the file metadata before reading. The read must fill
// the buffer completely; a file that shrinks between the stat and the read is
// reported as a file access error rather than silently truncated.
func ReadAll(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errkind.FileAccess(err, "Unable to read file!")
	}
	if info.IsDir() {
		return nil, errkind.FileAccess(nil, "Unable to read file!")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errkind.FileAccess(err, "Unable to read file!")
	}
	defer f.Close()

	data := make([]byte, info.Size())
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, errkind.FileAccess(err, "Unable to read file!")
	}

	slog.Debug("read input", "path", path, "size", len(data))
	return data, nil
}
