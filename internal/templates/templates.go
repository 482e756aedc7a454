// Package templates holds the embedded source templates.
package templates

import (
	"embed"
	"fmt"
	"sync"
	"text/template"
)

//go:embed *.tmpl
var templatesFS embed.FS

var (
	mu     sync.Mutex
	parsed = make(map[string]*template.Template)
)

// Get returns the raw content of the named template file.
func Get(name string) (string, error) {
	content, err := templatesFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return string(content), nil
}

// Load returns the named template parsed with funcMap. The parsed template is
// cached by name, so funcMap must be the same for every call with that name.
func Load(name string, funcMap template.FuncMap) (*template.Template, error) {
	mu.Lock()
	defer mu.Unlock()

	if t, ok := parsed[name]; ok {
		return t, nil
	}

	content, err := Get(name)
	if err != nil {
		return nil, err
	}
	t, err := template.New(name).Funcs(funcMap).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", name, err)
	}
	parsed[name] = t
	return t, nil
}
