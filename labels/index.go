// Package labels maps class label ids to their canonical names and decodes
// BIO encoded tags.
package labels

import (
	"fmt"
	"slices"
)

// DefaultBackground is the conventional name of the "not an entity" label.
const DefaultBackground = "O"

// Index is a bidirectional mapping between label ids and names. Ids are dense
// and assigned in order of registration, background label always gets id 0.
type Index struct {
	names      []string
	ids        map[string]int
	background int
}

// NewIndex creates index with background label registered under given name.
func NewIndex(background string) *Index {
	if len(background) == 0 {
		background = DefaultBackground
	}
	idx := &Index{ids: make(map[string]int)}
	idx.background = idx.Add(background)
	return idx
}

// FromNames creates index holding background label followed by names in
// order, duplicates are ignored.
func FromNames(background string, names ...string) *Index {
	idx := NewIndex(background)
	for _, name := range names {
		idx.Add(name)
	}
	return idx
}

// Add registers label name if necessary and returns its id.
func (idx *Index) Add(name string) int {
	if id, ok := idx.ids[name]; ok {
		return id
	}
	id := len(idx.names)
	idx.names = append(idx.names, name)
	idx.ids[name] = id
	return id
}

// ID returns label id for name.
func (idx *Index) ID(name string) (int, bool) {
	id, ok := idx.ids[name]
	return id, ok
}

// MustID is like ID but panics on unknown names.
func (idx *Index) MustID(name string) int {
	id, ok := idx.ids[name]
	if !ok {
		panic(fmt.Sprintf("unknown label %q", name))
	}
	return id
}

// Name returns canonical name of the label.
func (idx *Index) Name(id int) string {
	if id < 0 || id >= len(idx.names) {
		panic(fmt.Sprintf("label id %d is out of range [0, %d)", id, len(idx.names)))
	}
	return idx.names[id]
}

// Names returns all label names ordered by id.
func (idx *Index) Names() []string {
	return slices.Clone(idx.names)
}

// Len returns number of known labels.
func (idx *Index) Len() int {
	return len(idx.names)
}

// Background returns id of the background label.
func (idx *Index) Background() int {
	return idx.background
}

func (idx *Index) IsBackground(id int) bool {
	return id == idx.background
}
