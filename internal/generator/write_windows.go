//go:build windows

package generator

// writeAtomic falls back to a direct write; renameio does not support Windows.
func writeAtomic(outPath, ident string, data []byte) error {
	return writeDirect(outPath, ident, data)
}
