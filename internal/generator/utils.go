package generator

import (
	"io"
	"text/template"

	"github.com/xll-gen/bin2c/internal/templates"
)

// executeTemplate loads the named template with funcMap and executes it into w.
func executeTemplate(tmplName string, w io.Writer, data interface{}, funcMap template.FuncMap) error {
	// If funcMap is nil, use empty map
	if funcMap == nil {
		funcMap = template.FuncMap{}
	}

	t, err := templates.Load(tmplName, funcMap)
	if err != nil {
		return err
	}
	return t.Execute(w, data)
}
