package generator

import (
	"strings"
	"text/template"

	"github.com/xll-gen/bin2c/internal/naming"
)

// BytesPerLine is the number of hex values on each line of the array literal.
const BytesPerLine = 16

const indent = "    "

const hexDigits = "0123456789abcdef"

// hexBody formats data as the body of a C array initializer.
//
// Every value is comma-terminated, including the last one. Values are separated
// by a space except at the end of a full line, so a partial last line ends in
// ", ". After a full line the next line's indent is written eagerly; when
// len(data) is a multiple of BytesPerLine the closing brace therefore inherits
// that indent.
func hexBody(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(indent) + len(data)*6 + (len(data)/BytesPerLine+1)*len(indent))

	sb.WriteString(indent)
	n := 0
	for _, b := range data {
		sb.WriteString("0x")
		sb.WriteByte(hexDigits[b>>4])
		sb.WriteByte(hexDigits[b&0x0f])
		if n < BytesPerLine-1 {
			sb.WriteString(", ")
		} else {
			sb.WriteByte(',')
		}
		n++
		if n >= BytesPerLine {
			sb.WriteString("\n")
			sb.WriteString(indent)
			n = 0
		}
	}
	if n > 0 {
		sb.WriteByte('\n')
	}
	return sb.String()
}

// GetCommonFuncMap returns the template functions available to the source templates.
func GetCommonFuncMap() template.FuncMap {
	return template.FuncMap{
		"hexBody":  hexBody,
		"varName":  naming.VarName,
		"sizeName": naming.SizeName,
	}
}
