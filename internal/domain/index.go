package domain

import (
	"fmt"
	"strings"
)

// Index is the shared lookup structure behind select, rename and add-id.
// It is built once from positional arguments and/or list files, then applied
// in a single streaming pass; it never reorders the record stream.
//
// Identifier matches are evaluated per occurrence: a non-unique id that
// appears several times in the stream matches every time. Positional indices
// are zero-based; indices beyond the final record are silently ignored since
// the total count is unknown while streaming.
type Index struct {
	ids     map[string]struct{}
	indices map[int]struct{}
	renames map[string]string
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{
		ids:     map[string]struct{}{},
		indices: map[int]struct{}{},
		renames: map[string]string{},
	}
}

// AddIDs unions identifiers into the index.
func (x *Index) AddIDs(ids ...string) {
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id != "" {
			x.ids[id] = struct{}{}
		}
	}
}

// AddIndices unions zero-based positions into the index. Negative positions
// are rejected.
func (x *Index) AddIndices(positions ...int) error {
	for _, p := range positions {
		if p < 0 {
			return fmt.Errorf("negative index %d", p)
		}
		x.indices[p] = struct{}{}
	}
	return nil
}

// AddRename records an id replacement. The old id also becomes a match
// target, so a rename index doubles as a selection index.
func (x *Index) AddRename(old, replacement string) error {
	old, replacement = strings.TrimSpace(old), strings.TrimSpace(replacement)
	if old == "" || replacement == "" {
		return fmt.Errorf("rename pair needs both ids, got %q -> %q", old, replacement)
	}
	x.ids[old] = struct{}{}
	x.renames[old] = replacement
	return nil
}

// Empty reports whether no selection source was supplied.
func (x *Index) Empty() bool {
	return len(x.ids) == 0 && len(x.indices) == 0
}

// Match reports whether a record with the given id at the given zero-based
// position is covered by any source in the index.
func (x *Index) Match(id string, position int) bool {
	if _, ok := x.ids[id]; ok {
		return true
	}
	_, ok := x.indices[position]
	return ok
}

// Rename returns the replacement id, if one was registered.
func (x *Index) Rename(id string) (string, bool) {
	replacement, ok := x.renames[id]
	return replacement, ok
}

// ParseRenamePair splits an "old=new" (or "old<TAB>new") argument.
func ParseRenamePair(s string) (old, replacement string, err error) {
	var parts []string
	if strings.ContainsRune(s, '\t') {
		parts = strings.SplitN(s, "\t", 2)
	} else {
		parts = strings.SplitN(s, "=", 2)
	}
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid rename pair %q (expected OLD=NEW)", s)
	}
	old, replacement = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if old == "" || replacement == "" {
		return "", "", fmt.Errorf("invalid rename pair %q (expected OLD=NEW)", s)
	}
	return old, replacement, nil
}
