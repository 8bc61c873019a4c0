package dsum

import (
	"cmp"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/dsum/internal/errorutil"
	"github.com/ghettovoice/dsum/internal/grammar"
	"github.com/ghettovoice/dsum/internal/ioutil"
)

// Codec bundles the capabilities of a tag variant's payload type: ordinary
// equality, ordering, rendering and parsing at that type, plus cloning.
//
// Implementations must keep Compare consistent with Equal:
// Compare(v1, v2) == 0 iff Equal(v1, v2).
type Codec[A any] interface {
	// Equal reports whether two payloads are equal.
	Equal(v1, v2 A) bool
	// Compare orders two payloads.
	Compare(v1, v2 A) int
	// RenderTo writes the textual form of the payload to w.
	RenderTo(w io.Writer, v A, opts *RenderOptions) (int, error)
	// Consume parses a payload from the start of s and returns the remainder.
	Consume(s []byte) (A, []byte, error)
	// Clone returns a copy of the payload.
	Clone(v A) A
}

// Purer is implemented by codecs whose payload type A wraps an element type E
// and can lift a bare element into the wrapped form.
// See [Lift].
type Purer[E, A any] interface {
	Pure(v E) A
}

// String is a codec for string payloads rendered as double-quoted text.
var String Codec[string] = stringCodec{}

type stringCodec struct{}

func (stringCodec) Equal(v1, v2 string) bool { return v1 == v2 }

func (stringCodec) Compare(v1, v2 string) int { return cmp.Compare(v1, v2) }

func (stringCodec) RenderTo(w io.Writer, v string, _ *RenderOptions) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, grammar.Quote(v)))
}

func (stringCodec) Consume(s []byte) (string, []byte, error) {
	q, err := grammar.QuotedPrefix(string(s))
	if err != nil {
		return "", nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedInput, "not a quoted string"))
	}
	return grammar.Unquote(q), s[len(q):], nil
}

func (stringCodec) Clone(v string) string { return v }

func (stringCodec) Pure(v string) string { return v }

// Int is a codec for int payloads.
var Int Codec[int] = intCodec{}

type intCodec struct{}

func (intCodec) Equal(v1, v2 int) bool { return v1 == v2 }

func (intCodec) Compare(v1, v2 int) int { return cmp.Compare(v1, v2) }

func (intCodec) RenderTo(w io.Writer, v int, _ *RenderOptions) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, strconv.Itoa(v)))
}

func (intCodec) Consume(s []byte) (int, []byte, error) {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	v, err := strconv.Atoi(string(s[:i]))
	if err != nil {
		return 0, nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedInput, "not an integer"))
	}
	return v, s[i:], nil
}

func (intCodec) Clone(v int) int { return v }

func (intCodec) Pure(v int) int { return v }

// Float64 is a codec for float64 payloads.
var Float64 Codec[float64] = float64Codec{}

type float64Codec struct{}

// NaNs compare equal to each other so that Equal stays consistent with
// Compare, which orders NaN before every other value.
func (float64Codec) Equal(v1, v2 float64) bool { return cmp.Compare(v1, v2) == 0 }

func (float64Codec) Compare(v1, v2 float64) int { return cmp.Compare(v1, v2) }

func (float64Codec) RenderTo(w io.Writer, v float64, _ *RenderOptions) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, strconv.FormatFloat(v, 'g', -1, 64)))
}

func (float64Codec) Consume(s []byte) (float64, []byte, error) {
	// FormatFloat spells non-finite values Inf/NaN; match them before the
	// numeric scan, which only covers digits, signs, dots and exponents.
	for _, lit := range []string{"+Inf", "-Inf", "Inf", "NaN"} {
		if len(s) >= len(lit) && string(s[:len(lit)]) == lit {
			v, _ := strconv.ParseFloat(lit, 64)
			return v, s[len(lit):], nil
		}
	}

	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c >= '0' && c <= '9' || c == '.':
		case c == 'e' || c == 'E':
		case c == '-' || c == '+':
			// A sign is valid only at the start or right after an exponent marker.
			if i != 0 && s[i-1] != 'e' && s[i-1] != 'E' {
				goto scanned
			}
		default:
			goto scanned
		}
		i++
	}
scanned:
	v, err := strconv.ParseFloat(string(s[:i]), 64)
	if err != nil {
		return 0, nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedInput, "not a number"))
	}
	return v, s[i:], nil
}

func (float64Codec) Clone(v float64) float64 { return v }

func (float64Codec) Pure(v float64) float64 { return v }

// Bool is a codec for bool payloads rendered as "true" or "false".
var Bool Codec[bool] = boolCodec{}

type boolCodec struct{}

func (boolCodec) Equal(v1, v2 bool) bool { return v1 == v2 }

func (boolCodec) Compare(v1, v2 bool) int {
	switch {
	case v1 == v2:
		return 0
	case v2:
		return -1
	default:
		return 1
	}
}

func (boolCodec) RenderTo(w io.Writer, v bool, _ *RenderOptions) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, strconv.FormatBool(v)))
}

func (boolCodec) Consume(s []byte) (bool, []byte, error) {
	switch {
	case len(s) >= 4 && string(s[:4]) == "true":
		return true, s[4:], nil
	case len(s) >= 5 && string(s[:5]) == "false":
		return false, s[5:], nil
	default:
		return false, nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedInput, "not a boolean"))
	}
}

func (boolCodec) Clone(v bool) bool { return v }

func (boolCodec) Pure(v bool) bool { return v }

// SliceOf returns a codec for slice payloads with elements handled by elem.
// Slices render as "[e1, e2]". The codec lifts a bare element into the
// one-element slice containing it.
func SliceOf[E any](elem Codec[E]) Codec[[]E] {
	if elem == nil {
		panic(errorutil.NewInvalidArgumentError("nil element codec"))
	}
	return sliceCodec[E]{elem}
}

type sliceCodec[E any] struct {
	elem Codec[E]
}

func (c sliceCodec[E]) Equal(v1, v2 []E) bool {
	if len(v1) != len(v2) {
		return false
	}
	for i := range v1 {
		if !c.elem.Equal(v1[i], v2[i]) {
			return false
		}
	}
	return true
}

func (c sliceCodec[E]) Compare(v1, v2 []E) int {
	for i := 0; i < len(v1) && i < len(v2); i++ {
		if r := c.elem.Compare(v1[i], v2[i]); r != 0 {
			return r
		}
	}
	return cmp.Compare(len(v1), len(v2))
}

func (c sliceCodec[E]) RenderTo(w io.Writer, v []E, _ *RenderOptions) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString("[")
	for i := range v {
		if i > 0 {
			cw.WriteString(", ")
		}
		cw.Call(func(w io.Writer) (int, error) {
			return c.elem.RenderTo(w, v[i], nil) //errtrace:skip
		})
	}
	cw.WriteString("]")
	return errtrace.Wrap2(cw.Result())
}

func (c sliceCodec[E]) Consume(s []byte) ([]E, []byte, error) {
	if len(s) == 0 || s[0] != '[' {
		return nil, nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedInput, "not a list"))
	}
	s = grammar.TrimLeftSP(s[1:])
	if len(s) > 0 && s[0] == ']' {
		return []E{}, s[1:], nil
	}

	var v []E
	for {
		e, rest, err := c.elem.Consume(s)
		if err != nil {
			return nil, nil, errtrace.Wrap(err)
		}
		v = append(v, e)

		s = grammar.TrimLeftSP(rest)
		if len(s) == 0 {
			return nil, nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedInput, "unterminated list"))
		}
		switch s[0] {
		case ']':
			return v, s[1:], nil
		case ',':
			s = grammar.TrimLeftSP(s[1:])
		default:
			return nil, nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedInput, "unexpected %q in list", s[0]))
		}
	}
}

func (c sliceCodec[E]) Clone(v []E) []E {
	if v == nil {
		return nil
	}
	v2 := make([]E, len(v))
	for i := range v {
		v2[i] = c.elem.Clone(v[i])
	}
	return v2
}

func (c sliceCodec[E]) Pure(v E) []E { return []E{v} }

// SumOf returns a codec for sum payloads of the given family, allowing sums to
// nest: a nested sum renders right-associatively without parentheses and
// re-parses the same way.
func SumOf(f *Family) Codec[Sum] {
	if f == nil {
		panic(errorutil.NewInvalidArgumentError("nil family"))
	}
	return sumCodec{f}
}

type sumCodec struct {
	fam *Family
}

func (sumCodec) Equal(v1, v2 Sum) bool { return v1.Equal(v2) }

func (sumCodec) Compare(v1, v2 Sum) int { return v1.Compare(v2) }

func (sumCodec) RenderTo(w io.Writer, v Sum, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(v.RenderTo(w, opts))
}

func (c sumCodec) Consume(s []byte) (Sum, []byte, error) {
	return errtrace.Wrap3(consumeSum(c.fam, s))
}

func (sumCodec) Clone(v Sum) Sum { return v.Clone() }
