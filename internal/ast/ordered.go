// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package ast

import "github.com/playbymail/sdlc/internal/diag"

// Field is one name:value pair inside a component/constraint/motion body,
// with the span of the field name (used when a diagnostic points at "this
// field" rather than at its value).
type Field struct {
	Name     string
	NameSpan diag.Span
	Value    Value
}

// Fields is an insertion-ordered, duplicate-tolerant collection of fields.
// Equality for lookup purposes ignores order; order is kept only so
// diagnostics and any future formatter see fields in source order.
type Fields struct {
	list    []Field
	indexOf map[string]int // first occurrence only
}

func NewFields() *Fields {
	return &Fields{indexOf: make(map[string]int)}
}

// Append adds a field, keeping track of its first-occurrence index for Get.
// Appending a second field with the same name does not replace the first;
// the syntax validator is responsible for flagging duplicates it cares
// about, this container just preserves what the parser saw.
func (f *Fields) Append(field Field) {
	if _, ok := f.indexOf[field.Name]; !ok {
		f.indexOf[field.Name] = len(f.list)
	}
	f.list = append(f.list, field)
}

// Get returns the first field with the given name.
func (f *Fields) Get(name string) (Field, bool) {
	i, ok := f.indexOf[name]
	if !ok {
		return Field{}, false
	}
	return f.list[i], true
}

// Has reports whether name was set at least once.
func (f *Fields) Has(name string) bool {
	_, ok := f.indexOf[name]
	return ok
}

// List returns all fields in insertion order, including duplicates.
func (f *Fields) List() []Field {
	return f.list
}

// Len returns the number of fields appended, including duplicates.
func (f *Fields) Len() int {
	return len(f.list)
}

// LibraryImport is one alias -> library_name mapping entry.
type LibraryImport struct {
	Alias      string
	AliasSpan  diag.Span
	Library    string
	LibrarySpan diag.Span
}

// LibraryImports is the ordered alias->library mapping from the
// library_imports block.
type LibraryImports struct {
	list    []LibraryImport
	indexOf map[string]int
	Span    diag.Span
}

func NewLibraryImports() *LibraryImports {
	return &LibraryImports{indexOf: make(map[string]int)}
}

func (li *LibraryImports) Append(entry LibraryImport) {
	if _, ok := li.indexOf[entry.Alias]; !ok {
		li.indexOf[entry.Alias] = len(li.list)
	}
	li.list = append(li.list, entry)
}

func (li *LibraryImports) List() []LibraryImport {
	return li.list
}

func (li *LibraryImports) Get(alias string) (LibraryImport, bool) {
	i, ok := li.indexOf[alias]
	if !ok {
		return LibraryImport{}, false
	}
	return li.list[i], true
}

// Components is the ordered name->Component mapping on an Entity.
type Components struct {
	list    []*Component
	indexOf map[string]int
}

func NewComponents() *Components {
	return &Components{indexOf: make(map[string]int)}
}

func (c *Components) Append(comp *Component) {
	if _, ok := c.indexOf[comp.Type]; !ok {
		c.indexOf[comp.Type] = len(c.list)
	}
	c.list = append(c.list, comp)
}

func (c *Components) List() []*Component {
	return c.list
}

func (c *Components) Get(typ string) (*Component, bool) {
	i, ok := c.indexOf[typ]
	if !ok {
		return nil, false
	}
	return c.list[i], true
}
