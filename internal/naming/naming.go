// Package naming derives C identifiers from input file paths.
package naming

import "strings"

// Prefix is prepended to the base name to form the array variable name.
const Prefix = "data_"

// BaseName strips the directory and the extension from path.
//
// The directory is removed first, so a period inside a directory name is never
// mistaken for an extension. Both '/' and '\' count as separators regardless of
// the host OS. BaseName never fails; an empty path yields an empty name.
func BaseName(path string) string {
	if i := strings.LastIndexAny(path, `\/`); i >= 0 {
		path = path[i+1:]
	}
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		path = path[:i]
	}
	return path
}

// VarName returns the array variable name for ident, e.g. "data_logo".
func VarName(ident string) string {
	return Prefix + ident
}

// SizeName returns the size constant name for ident, e.g. "DATA_LOGO_SIZE".
// Only ASCII letters are upper-cased.
func SizeName(ident string) string {
	return upperASCII(VarName(ident)) + "_SIZE"
}

func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}
