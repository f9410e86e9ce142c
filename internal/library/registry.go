// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package library

import "sort"

// TypeSet is a set of component/constraint/motion type names.
type TypeSet map[string]bool

func newTypeSet(names ...string) TypeSet {
	s := make(TypeSet, len(names))
	for _, n := range names {
		s[n] = true
	}
	return s
}

// Library is one entry in the registry: a name plus the type names it
// provides, spanning components, constraints, and motions alike (a type
// name is unambiguous across those three categories by construction).
type Library struct {
	Name     string
	Provides TypeSet
}

// Registry maps library name to its Library record.
type Registry struct {
	libraries map[string]Library
}

// Default returns the registry seeded with the four built-in libraries.
// core_mechanics is the comprehensive baseline a minimal scene imports; the
// other three are narrower domain libraries a scene can mix in instead of,
// or alongside, core_mechanics.
func Default() *Registry {
	return &Registry{
		libraries: map[string]Library{
			"core_mechanics": {
				Name: "core_mechanics",
				Provides: newTypeSet(
					"transform", "geometry", "physical",
					"fixed_joint", "gear_relation",
					"rotation", "translation",
				),
			},
			"basic_solids": {
				Name:     "basic_solids",
				Provides: newTypeSet("transform", "geometry"),
			},
			"gear_systems": {
				Name:     "gear_systems",
				Provides: newTypeSet("gear_relation", "rotation"),
			},
			"advanced_physics": {
				Name:     "advanced_physics",
				Provides: newTypeSet("physical", "fixed_joint"),
			},
		},
	}
}

// Get returns the library with the given name.
func (r *Registry) Get(name string) (Library, bool) {
	lib, ok := r.libraries[name]
	return lib, ok
}

// Names returns every known library name. Order is not significant; callers
// that need a stable order (e.g. suggestion output) sort it themselves.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.libraries))
	for n := range r.libraries {
		names = append(names, n)
	}
	return names
}

// Providers returns the names of every known library that provides typeName,
// sorted for deterministic diagnostic help text.
func (r *Registry) Providers(typeName string) []string {
	var names []string
	for n, lib := range r.libraries {
		if lib.Provides[typeName] {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}
