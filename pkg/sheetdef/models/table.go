// Package models defines data structures for sheet definition generation.
package models

// SheetSet is the set of sheet names available in an input batch.
type SheetSet map[string]struct{}

// NewSheetSet returns a set holding names.
func NewSheetSet(names ...string) SheetSet {
	s := make(SheetSet, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts name into the set.
func (s SheetSet) Add(name string) {
	s[name] = struct{}{}
}

// HasSheet reports whether a sheet named exactly name exists.
func (s SheetSet) HasSheet(name string) bool {
	_, ok := s[name]
	return ok
}
