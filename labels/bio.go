package labels

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedTag is returned when non-background label cannot be decoded as
// "B-TYPE" or "I-TYPE".
var ErrMalformedTag = errors.New("malformed BIO tag")

// Prefix is a position marker of BIO tag.
type Prefix int

const (
	Outside Prefix = iota
	Begin
	Inside
)

func (p Prefix) String() string {
	switch p {
	case Outside:
		return "O"
	case Begin:
		return "B"
	case Inside:
		return "I"
	default:
		return fmt.Sprintf("Prefix(%d)", int(p))
	}
}

// Tag is decoded BIO label. Type is -1 for Outside.
type Tag struct {
	Prefix Prefix
	Type   int
}

// ParseTag splits raw tag into prefix and entity type.
func ParseTag(raw string) (Prefix, string, error) {
	prefix, typ, found := strings.Cut(raw, "-")
	if !found || len(typ) == 0 {
		return Outside, "", fmt.Errorf("%w: %q", ErrMalformedTag, raw)
	}
	switch prefix {
	case "B":
		return Begin, typ, nil
	case "I":
		return Inside, typ, nil
	}
	return Outside, "", fmt.Errorf("%w: unknown prefix in %q", ErrMalformedTag, raw)
}

// BIO decodes label ids of an Index into tags. Entity types are assigned
// dense ids in order of first appearance.
type BIO struct {
	tags  []Tag
	types []string
}

// NewBIO decodes every label known to idx. All labels except background must
// be well formed.
func NewBIO(idx *Index) (*BIO, error) {
	b := &BIO{
		tags: make([]Tag, idx.Len()),
	}
	typeIDs := make(map[string]int)
	for id, name := range idx.names {
		if idx.IsBackground(id) {
			b.tags[id] = Tag{Prefix: Outside, Type: -1}
			continue
		}
		prefix, typ, err := ParseTag(name)
		if err != nil {
			return nil, fmt.Errorf("label %d: %w", id, err)
		}
		t, ok := typeIDs[typ]
		if !ok {
			t = len(b.types)
			typeIDs[typ] = t
			b.types = append(b.types, typ)
		}
		b.tags[id] = Tag{Prefix: prefix, Type: t}
	}
	return b, nil
}

// Tag returns decoded label.
func (b *BIO) Tag(label int) Tag {
	if label < 0 || label >= len(b.tags) {
		panic(fmt.Sprintf("label id %d is out of range [0, %d)", label, len(b.tags)))
	}
	return b.tags[label]
}

// TypeName returns entity type name for type id.
func (b *BIO) TypeName(typ int) string {
	return b.types[typ]
}

// NumTypes returns number of distinct entity types.
func (b *BIO) NumTypes() int {
	return len(b.types)
}

// CompleteBIO makes sure that for every entity type present in idx both
// "B-TYPE" and "I-TYPE" labels are registered, so sampler can move between
// them.
func CompleteBIO(idx *Index) error {
	for id, name := range idx.Names() {
		if idx.IsBackground(id) {
			continue
		}
		_, typ, err := ParseTag(name)
		if err != nil {
			return fmt.Errorf("label %d: %w", id, err)
		}
		idx.Add("B-" + typ)
		idx.Add("I-" + typ)
	}
	return nil
}
