package dsum

import (
	"bytes"

	"braces.dev/errtrace"

	"github.com/ghettovoice/dsum/internal/errorutil"
	"github.com/ghettovoice/dsum/internal/grammar"
)

// Parse parses a sum of the family f from the given input s (string or []byte)
// and returns the parsed sum. The input must consist of a tag name registered
// in f, the literal " :=> " separator and a payload in the tag's payload
// syntax, optionally parenthesized; looking the tag up in the family recovers
// the payload parser to run next. If the parsing fails, an error wrapping one
// of [ErrEmptyInput], [ErrUnknownTag] or [ErrMalformedInput] is returned along
// with the zero Sum.
//
// Example usage:
//
//	s, err := dsum.Parse(family, `AString :=> "hello!"`)
func Parse[T ~string | ~[]byte](f *Family, s T) (Sum, error) {
	if f == nil {
		return Sum{}, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil family"))
	}
	if len(s) == 0 {
		return Sum{}, errtrace.Wrap(ErrEmptyInput)
	}

	sum, rest, err := consumeSum(f, []byte(s))
	if err != nil {
		f.logger.Debug("parse failed", "family", f.name, "input", string(s), "error", err)
		return Sum{}, errtrace.Wrap(err)
	}
	if len(grammar.TrimLeftSP(rest)) != 0 {
		f.logger.Debug("parse failed", "family", f.name, "input", string(s), "trailing", string(rest))
		return Sum{}, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedInput, "trailing input %q", rest))
	}
	return sum, nil
}

// consumeSum parses a sum from the start of s and returns the remainder.
// Parentheses around the sum are accepted at any depth.
func consumeSum(f *Family, s []byte) (Sum, []byte, error) {
	s = grammar.TrimLeftSP(s)
	if len(s) == 0 {
		return Sum{}, nil, errtrace.Wrap(ErrEmptyInput)
	}

	if s[0] == '(' {
		sum, rest, err := consumeSum(f, s[1:])
		if err != nil {
			return Sum{}, nil, errtrace.Wrap(err)
		}
		rest = grammar.TrimLeftSP(rest)
		if len(rest) == 0 || rest[0] != ')' {
			return Sum{}, nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedInput, "missing closing parenthesis"))
		}
		return sum, rest[1:], nil
	}

	tok, rest := grammar.ConsumeToken(s)
	if tok == "" {
		return Sum{}, nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedInput, "missing tag name"))
	}
	tag, ok := f.Lookup(Name(tok))
	if !ok {
		return Sum{}, nil, errtrace.Wrap(errorutil.NewWrapperError(ErrUnknownTag, "%q", tok))
	}
	if !bytes.HasPrefix(rest, []byte(pairSep)) {
		return Sum{}, nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedInput, "missing %q separator after tag %q", pairSep, tok))
	}

	val, rest, err := tag.consumePayload(rest[len(pairSep):])
	if err != nil {
		return Sum{}, nil, errtrace.Wrap(err)
	}
	return Sum{tag: tag, val: val}, rest, nil
}
