package dsum

import (
	"cmp"

	"braces.dev/errtrace"

	"github.com/ghettovoice/dsum/internal/errorutil"
)

// Sum pairs a tag witness with a payload whose type the tag fixes. Which
// concrete payload type is stored stays hidden, so sums over different
// variants can share one collection; the payload is recovered through [Match].
//
// A Sum is immutable once constructed. The zero Sum carries no tag: it is
// invalid, renders empty, equals only another zero Sum and sorts before every
// valid sum.
type Sum struct {
	tag AnyTag
	val any
}

// New pairs a tag with a payload of the tag's payload type.
// A nil tag yields the zero Sum.
func New[A any](t *Tag[A], v A) Sum {
	if t == nil {
		return Sum{}
	}
	return Sum{tag: t, val: v}
}

// Lift pairs a tag with the lifted form of a bare element: the element is
// wrapped into the payload type by the codec's pure operation and then paired
// as by [New]. Lift fails with [ErrCannotLift] when the tag's codec does not
// implement [Purer] for the element type.
func Lift[E, A any](t *Tag[A], v E) (Sum, error) {
	if t == nil {
		return Sum{}, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil tag"))
	}
	p, ok := t.cdc.(Purer[E, A])
	if !ok {
		return Sum{}, errtrace.Wrap(errorutil.NewWrapperError(ErrCannotLift, "tag %q cannot lift %T", t.name, v))
	}
	return New(t, p.Pure(v)), nil
}

// MustLift is like [Lift] but panics on failure.
func MustLift[E, A any](t *Tag[A], v E) Sum {
	s, err := Lift(t, v)
	if err != nil {
		panic(err)
	}
	return s
}

// Match reports whether s was constructed with t and returns the payload when
// so. It is the only narrowing from the erased payload back to a concrete
// type: a successful tag match witnesses that the payload has type A.
func Match[A any](s Sum, t *Tag[A]) (A, bool) {
	if t == nil || s.tag == nil || s.tag != AnyTag(t) {
		var zero A
		return zero, false
	}
	return s.val.(A), true //nolint:forcetypeassert
}

// Tag returns the erased tag of the sum, or nil for the zero Sum.
func (s Sum) Tag() AnyTag { return s.tag }

// Value returns the erased payload.
// Use [Match] to recover it at its concrete type.
func (s Sum) Value() any { return s.val }

// IsValid reports whether the sum was constructed with a tag.
func (s Sum) IsValid() bool { return s.tag != nil }

// Clone returns a copy of the sum with the payload cloned by the tag's codec.
func (s Sum) Clone() Sum {
	if s.tag == nil {
		return Sum{}
	}
	return Sum{tag: s.tag, val: s.tag.clonePayload(s.val)}
}

// Equal compares this sum with another for equality: the tags must denote the
// same variant and the payloads must be equal under that variant's codec.
// Sums of different variants are simply unequal.
func (s Sum) Equal(val any) bool {
	var other Sum
	switch v := val.(type) {
	case Sum:
		other = v
	case *Sum:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	if s.tag == nil || other.tag == nil {
		return s.tag == nil && other.tag == nil
	}
	if s.tag != other.tag {
		return false
	}
	return s.tag.equalPayload(s.val, other.val)
}

// Compare orders two sums: by tag first, by payload when the tags match.
// The order is total; Compare returns 0 iff the sums are [Sum.Equal], given
// codecs honoring the [Codec] contract.
func (s Sum) Compare(other Sum) int {
	if r := compareTags(s.tag, other.tag); r != 0 {
		return r
	}
	if s.tag == nil {
		return 0
	}
	return s.tag.comparePayload(s.val, other.val)
}

// compareTags induces a total order over tags: registration order within a
// family, family name and then family creation sequence across families.
func compareTags(t1, t2 AnyTag) int {
	switch {
	case t1 == t2:
		return 0
	case t1 == nil:
		return -1
	case t2 == nil:
		return 1
	}
	f1, f2 := t1.Family(), t2.Family()
	if f1 != f2 {
		if r := cmp.Compare(f1.name, f2.name); r != 0 {
			return r
		}
		return cmp.Compare(f1.seq, f2.seq)
	}
	return cmp.Compare(t1.ord(), t2.ord())
}
