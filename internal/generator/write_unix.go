//go:build !windows

package generator

import (
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/xll-gen/bin2c/internal/errkind"
)

// writeAtomic stages the document in a temporary file next to outPath and
// renames it into place once fully written. On any error the temporary file is
// removed and an existing outPath is left untouched.
func writeAtomic(outPath, ident string, data []byte) error {
	pf, err := renameio.NewPendingFile(resolveLink(outPath), renameio.WithPermissions(0666))
	if err != nil {
		return errkind.FileAccess(err, "Unable to open file to write!")
	}
	defer pf.Cleanup()

	if err := renderBuffered(pf, ident, data); err != nil {
		return err
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return errkind.FileAccess(err, "Unable to write file!")
	}
	return nil
}

// resolveLink returns the file a symlinked outPath points to, so the rename
// replaces the target and keeps the link. Anything else is returned unchanged.
func resolveLink(outPath string) string {
	fi, err := os.Lstat(outPath)
	if err != nil || fi.Mode()&os.ModeSymlink == 0 {
		return outPath
	}
	target, err := filepath.EvalSymlinks(outPath)
	if err != nil {
		// Dangling link: create the file it names.
		dest, rerr := os.Readlink(outPath)
		if rerr != nil {
			return outPath
		}
		if !filepath.IsAbs(dest) {
			dest = filepath.Join(filepath.Dir(outPath), dest)
		}
		return dest
	}
	return target
}
