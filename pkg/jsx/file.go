// Package jsx builds TSX source files. Layout, quoting and escaping live
// here so emitted code is syntactically valid and formatted the same way
// regardless of which provider produced it.
package jsx

import (
	"strings"
)

// Import is one import declaration.
type Import struct {
	From    string
	Default string
	Named   []string
}

func (i Import) String() string {
	var clause []string
	if i.Default != "" {
		clause = append(clause, i.Default)
	}
	if len(i.Named) > 0 {
		clause = append(clause, "{ "+strings.Join(i.Named, ", ")+" }")
	}
	if len(clause) == 0 {
		return "import " + Quote(i.From) + ";"
	}
	return "import " + strings.Join(clause, ", ") + " from " + Quote(i.From) + ";"
}

// Component is an exported function component.
type Component struct {
	Name string
	// Hooks are statements placed before the return, one per entry.
	Hooks []string
	Root  *Element
}

// File is a complete TSX module.
type File struct {
	UseClient  bool
	Imports    []Import
	Preamble   []string
	Components []Component
}

// Use records named imports from module, merging with earlier calls and
// keeping first-seen order.
func (f *File) Use(from string, names ...string) {
	imp := f.imp(from)
	for _, name := range names {
		if name == "" || contains(imp.Named, name) {
			continue
		}
		imp.Named = append(imp.Named, name)
	}
}

// UseDefault records a default import from module.
func (f *File) UseDefault(from, name string) {
	f.imp(from).Default = name
}

func (f *File) imp(from string) *Import {
	for idx := range f.Imports {
		if f.Imports[idx].From == from {
			return &f.Imports[idx]
		}
	}
	f.Imports = append(f.Imports, Import{From: from})
	return &f.Imports[len(f.Imports)-1]
}

// State adds a useState hook to c and imports it from react.
func (f *File) State(c *Component, name, initial string) {
	f.Use("react", "useState")
	setter := "set" + strings.ToUpper(name[:1]) + name[1:]
	c.Hooks = append(c.Hooks, "const ["+name+", "+setter+"] = useState("+initial+");")
}

// Add appends a component.
func (f *File) Add(c Component) {
	f.Components = append(f.Components, c)
}

// String renders the file. Output is a pure function of the File value.
func (f File) String() string {
	w := &writer{}
	if f.UseClient {
		w.line(0, "'use client';")
		w.blank()
	}
	for _, imp := range f.Imports {
		w.line(0, imp.String())
	}
	w.blank()
	for _, stmt := range f.Preamble {
		w.raw(strings.Split(stmt, "\n")...)
	}
	w.blank()
	for idx, c := range f.Components {
		if idx > 0 {
			w.blank()
		}
		c.write(w)
	}
	return w.String()
}

func (c Component) write(w *writer) {
	w.line(0, "export function "+c.Name+"() {")
	for _, hook := range c.Hooks {
		w.line(1, hook)
	}
	if len(c.Hooks) > 0 {
		w.blank()
	}
	w.line(1, "return (")
	if c.Root != nil {
		c.Root.write(w, 2)
	} else {
		w.line(2, "null")
	}
	w.line(1, ");")
	w.line(0, "}")
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
