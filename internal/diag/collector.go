// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package diag

import "sort"

// Collector batches diagnostics in insertion order. Validators use it to
// report as many issues as they safely can before yielding (§4.1, §7).
// The lexer and parser, which fail fast, do not use it; they return their
// single diagnostic directly.
type Collector struct {
	diags []Diagnostic
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add appends a diagnostic.
func (c *Collector) Add(d Diagnostic) {
	c.diags = append(c.diags, d)
}

// Addf is a convenience wrapper around Add(New(...)).
func (c *Collector) Addf(code Code, file string, span Span, format string, args ...any) {
	c.Add(New(code, file, span, format, args...))
}

// Diagnostics returns the diagnostics collected so far, in insertion order.
func (c *Collector) Diagnostics() []Diagnostic {
	return c.diags
}

// HasErrors reports whether any non-warning diagnostic was collected.
func (c *Collector) HasErrors() bool {
	for _, d := range c.diags {
		if !d.Code.IsWarning() {
			return true
		}
	}
	return false
}

// Errors returns only the non-warning diagnostics.
func (c *Collector) Errors() []Diagnostic {
	var out []Diagnostic
	for _, d := range c.diags {
		if !d.Code.IsWarning() {
			out = append(out, d)
		}
	}
	return out
}

// Warnings returns only the warning-class diagnostics.
func (c *Collector) Warnings() []Diagnostic {
	var out []Diagnostic
	for _, d := range c.diags {
		if d.Code.IsWarning() {
			out = append(out, d)
		}
	}
	return out
}

// SortBySpan orders the collected diagnostics by ascending span offset,
// stable on insertion order for ties. Used within a single pass to honor
// the "source-textual order" guarantee of §5; passes themselves are kept in
// their own relative order by the caller, which appends each pass's sorted
// slice in turn.
func SortBySpan(ds []Diagnostic) {
	sort.SliceStable(ds, func(i, j int) bool {
		return ds[i].Span.Start < ds[j].Span.Start
	})
}
