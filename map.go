package dsum

import (
	"io"
	"iter"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/dsum/internal/ioutil"
	"github.com/ghettovoice/dsum/internal/util"
)

// Map is a collection of sums keyed by their tags, at most one sum per tag.
// Entries are kept in the tag total order (see [Sum.Compare]).
// The zero Map is empty and ready to use. A nil *Map supports the read
// methods and Del, but Set requires a non-nil receiver. Map is not safe for
// concurrent mutation.
type Map struct {
	sums []Sum
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.sums)
}

// Has reports whether the map holds a sum for the given tag.
func (m *Map) Has(t AnyTag) bool {
	_, ok := m.Get(t)
	return ok
}

// Get returns the sum stored under the given tag.
func (m *Map) Get(t AnyTag) (Sum, bool) {
	if m == nil || t == nil {
		return Sum{}, false
	}
	i, ok := m.search(t)
	if !ok {
		return Sum{}, false
	}
	return m.sums[i], true
}

// Set stores the given sums, replacing any entries with the same tags.
// Invalid sums are ignored. It returns the map so calls can be chained.
func (m *Map) Set(sums ...Sum) *Map {
	for _, s := range sums {
		if s.tag == nil {
			continue
		}
		i, ok := m.search(s.tag)
		if ok {
			m.sums[i] = s
			continue
		}
		m.sums = slices.Insert(m.sums, i, s)
	}
	return m
}

// Del removes the entry stored under the given tag, if any.
// It returns the map so calls can be chained.
func (m *Map) Del(t AnyTag) *Map {
	if m == nil || t == nil {
		return m
	}
	if i, ok := m.search(t); ok {
		m.sums = slices.Delete(m.sums, i, i+1)
	}
	return m
}

func (m *Map) search(t AnyTag) (int, bool) {
	if m == nil {
		return 0, false
	}
	return slices.BinarySearchFunc(m.sums, t, func(s Sum, t AnyTag) int {
		return compareTags(s.tag, t)
	})
}

// All iterates over the entries in tag order.
func (m *Map) All() iter.Seq[Sum] {
	return func(yield func(Sum) bool) {
		if m == nil {
			return
		}
		for _, s := range m.sums {
			if !yield(s) {
				return
			}
		}
	}
}

// Clone returns a copy of the map with every sum cloned.
func (m *Map) Clone() *Map {
	if m == nil {
		return nil
	}
	m2 := &Map{}
	if m.sums != nil {
		m2.sums = make([]Sum, len(m.sums))
		for i := range m.sums {
			m2.sums[i] = m.sums[i].Clone()
		}
	}
	return m2
}

// Equal compares this map with another for equality: same tags, equal sums.
func (m *Map) Equal(val any) bool {
	var other *Map
	switch v := val.(type) {
	case Map:
		other = &v
	case *Map:
		other = v
	default:
		return false
	}

	if m == other {
		return true
	}
	if m.Len() != other.Len() {
		return false
	}
	if m == nil || other == nil {
		// Both are empty.
		return true
	}
	for i := range m.sums {
		if !m.sums[i].Equal(other.sums[i]) {
			return false
		}
	}
	return true
}

// RenderTo writes the entries to w as "{s1, s2}" in tag order.
func (m *Map) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString("{")
	if m != nil {
		for i := range m.sums {
			if i > 0 {
				cw.WriteString(", ")
			}
			cw.Call(func(w io.Writer) (int, error) {
				return m.sums[i].RenderTo(w, opts) //errtrace:skip
			})
		}
	}
	cw.WriteString("}")
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the map.
func (m *Map) Render(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	m.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (m *Map) String() string { return m.Render(nil) }

// MapGet returns the payload stored under the given tag at its concrete type.
func MapGet[A any](m *Map, t *Tag[A]) (A, bool) {
	s, ok := m.Get(t)
	if !ok {
		var zero A
		return zero, false
	}
	return Match(s, t)
}

// MapSet stores a payload under the given tag.
func MapSet[A any](m *Map, t *Tag[A], v A) *Map {
	return m.Set(New(t, v))
}
