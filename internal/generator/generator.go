// Package generator renders binary data as a C source file.
package generator

import (
	"bufio"
	"io"
	"log/slog"
	"os"

	"github.com/xll-gen/bin2c/internal/errkind"
)

const sourceTemplate = "bin2c.c.tmpl"

// Options contains optional flags for writing the source file.
type Options struct {
	// Atomic writes the document to a temporary file and renames it over the
	// destination only once it is complete. Without it a failed write can leave
	// a partial file behind.
	Atomic bool
}

// sourceData is the template input for bin2c.c.tmpl.
type sourceData struct {
	Name string
	Data []byte
}

// Render writes the C source document for ident and data to w.
func Render(w io.Writer, ident string, data []byte) error {
	return executeTemplate(sourceTemplate, w, sourceData{Name: ident, Data: data}, GetCommonFuncMap())
}

// WriteSource creates (or truncates) outPath and writes the C source document
// declaring data under names derived from ident.
//
// Parameters:
//   - outPath: The destination file.
//   - ident: The base identifier, see naming.BaseName.
//   - data: The bytes to embed. Must not be empty.
//   - opts: Write options.
//
// Returns:
//   - error: An errkind.ErrEmptyInput error if data is empty (outPath is not touched),
//     or an errkind.ErrFileAccess error if the file cannot be created or written.
func WriteSource(outPath, ident string, data []byte, opts Options) error {
	if len(data) == 0 {
		return errkind.EmptyInput("Input file is empty. No output file will be created!")
	}

	slog.Debug("writing source", "path", outPath, "name", ident, "size", len(data), "atomic", opts.Atomic)
	if opts.Atomic {
		return writeAtomic(outPath, ident, data)
	}
	return writeDirect(outPath, ident, data)
}

// writeDirect writes through a plain os.Create handle. A failure after the file
// was created leaves the partial file in place.
func writeDirect(outPath, ident string, data []byte) error {
	f, err := os.Create(outPath)
	if err != nil {
		return errkind.FileAccess(err, "Unable to open file to write!")
	}
	defer f.Close()

	if err := renderBuffered(f, ident, data); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return errkind.FileAccess(err, "Unable to write file!")
	}
	return nil
}

func renderBuffered(w io.Writer, ident string, data []byte) error {
	bw := bufio.NewWriter(w)
	if err := Render(bw, ident, data); err != nil {
		return errkind.FileAccess(err, "Unable to write file!")
	}
	if err := bw.Flush(); err != nil {
		return errkind.FileAccess(err, "Unable to write file!")
	}
	return nil
}
