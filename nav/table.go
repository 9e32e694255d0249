package nav

import (
	"fmt"
	"net/url"
	"strings"
)

const paramPrefix = ":"

// A Resolution is the outcome of matching a concrete path against a Table.
//
// The zero value stands for "no route", as when a client has yet to navigate anywhere.
type Resolution struct {
	// Descriptor is the most deeply nested Descriptor matched.
	Descriptor Descriptor

	// Matched lists every Descriptor matched, root to leaf.
	Matched []Descriptor

	// Params binds parameter names to the segments found in their place.
	Params map[string]string

	// Path is the concrete path resolved.
	Path string

	// Pattern is the full path pattern of Descriptor.
	Pattern string
}

// IsZero asserts whether r resolved nothing.
func (r Resolution) IsZero() bool { return r.Pattern == "" }

// RequiresAuth asserts whether any matched Descriptor requires authentication.
func (r Resolution) RequiresAuth() bool {
	for _, d := range r.Matched {
		if d.RequiresAuth {
			return true
		}
	}

	return false
}

// A Table is an ordered, immutable set of routes.
type Table struct {
	entries []entry
	byName  map[string]int
}

type entry struct {
	chain   []Descriptor
	pattern string
	segs    []string
}

// NewTable constructs a *Table from descriptors, flattening Children.
//
// NewTable returns ErrNotValid for a top-level path not beginning with "/",
// ErrDuplicatePath when two patterns are identical,
// and ErrDuplicateName when two non-empty names are.
func NewTable(descriptors ...Descriptor) (*Table, error) {
	t := &Table{byName: make(map[string]int)}
	seen := make(map[string]bool)

	var walk func(parent string, chain []Descriptor, ds []Descriptor) error
	walk = func(parent string, chain []Descriptor, ds []Descriptor) error {
		for _, d := range ds {
			pattern, err := join(parent, d.Path)
			if err != nil {
				return err
			}

			if seen[pattern] {
				return fmt.Errorf("%w: %s", ErrDuplicatePath, pattern)
			}
			seen[pattern] = true

			if d.Name != "" {
				if _, ok := t.byName[d.Name]; ok {
					return fmt.Errorf("%w: %s", ErrDuplicateName, d.Name)
				}
				t.byName[d.Name] = len(t.entries)
			}

			c := make([]Descriptor, len(chain), len(chain)+1)
			copy(c, chain)
			c = append(c, d)

			t.entries = append(t.entries, entry{chain: c, pattern: pattern, segs: split(pattern)})

			if err := walk(pattern, c, d.Children); err != nil {
				return err
			}
		}

		return nil
	}

	if err := walk("", nil, descriptors); err != nil {
		return nil, err
	}

	return t, nil
}

// Descriptors returns the full pattern of every route, in declaration order,
// mapped to its Descriptor.
func (t *Table) Descriptors() []Resolution {
	out := make([]Resolution, len(t.entries))
	for i, e := range t.entries {
		out[i] = Resolution{Descriptor: e.chain[len(e.chain)-1], Matched: e.chain, Pattern: e.pattern}
	}

	return out
}

// Lookup finds the full pattern of the route named name.
func (t *Table) Lookup(name string) (string, bool) {
	i, ok := t.byName[name]
	if !ok {
		return "", false
	}

	return t.entries[i].pattern, true
}

// Resolve matches path against t.
//
// A query string or fragment on path is ignored, as is a trailing slash.
// Resolve returns ErrNotFound when no route matches.
func (t *Table) Resolve(path string) (Resolution, error) {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}

	segs := split(path)
	best := -1
	var bestRank []int
	for i, e := range t.entries {
		rank, ok := match(e.segs, segs)
		if !ok {
			continue
		}

		if best < 0 || outranks(rank, bestRank) {
			best, bestRank = i, rank
		}
	}

	if best < 0 {
		return Resolution{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	e := t.entries[best]
	params := make(map[string]string)
	for i, s := range e.segs {
		if name, ok := strings.CutPrefix(s, paramPrefix); ok {
			params[name] = unescape(segs[i])
		}
	}

	return Resolution{
		Descriptor: e.chain[len(e.chain)-1],
		Matched:    e.chain,
		Params:     params,
		Path:       "/" + strings.Join(segs, "/"),
		Pattern:    e.pattern,
	}, nil
}

// match scores each segment of pattern against segs: 2 for static, 1 for a parameter.
func match(pattern, segs []string) ([]int, bool) {
	if len(pattern) != len(segs) {
		return nil, false
	}

	rank := make([]int, len(pattern))
	for i, p := range pattern {
		switch {
		case strings.HasPrefix(p, paramPrefix):
			if segs[i] == "" {
				return nil, false
			}
			rank[i] = 1
		case p == segs[i]:
			rank[i] = 2
		default:
			return nil, false
		}
	}

	return rank, true
}

// outranks asserts whether a is strictly more specific than b.
// Ties favor b, the route declared first.
func outranks(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}

	return false
}

func join(parent, path string) (string, error) {
	if parent == "" {
		if !strings.HasPrefix(path, "/") {
			return "", fmt.Errorf("%w: path %q must begin with /", ErrNotValid, path)
		}

		return "/" + strings.Join(split(path), "/"), nil
	}

	return "/" + strings.Join(append(split(parent), split(path)...), "/"), nil
}

// split breaks a path into its segments; "/" has none.
func split(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}

	return strings.Split(path, "/")
}

func unescape(seg string) string {
	s, err := url.PathUnescape(seg)
	if err != nil {
		return seg
	}

	return s
}
