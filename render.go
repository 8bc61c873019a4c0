package dsum

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/dsum/internal/ioutil"
	"github.com/ghettovoice/dsum/internal/types"
	"github.com/ghettovoice/dsum/internal/util"
)

// RenderOptions contains options for rendering sums.
// See [types.RenderOptions].
type RenderOptions = types.RenderOptions

// pairSep is the literal separator between the tag and the payload.
// Parse requires it verbatim.
const pairSep = " :=> "

// pairPrec is the precedence of the pairing itself: a rendering context at or
// above it wraps the sum in parentheses.
const pairPrec = 10

// RenderTo writes the textual form of the sum to w: the tag name, the
// " :=> " separator and the payload rendered by the tag's codec. The whole
// expression is parenthesized when opts requires precedence [pairPrec] or
// higher. The zero Sum renders nothing.
func (s Sum) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if s.tag == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	paren := opts != nil && opts.Prec >= pairPrec
	if paren {
		cw.WriteString("(")
	}
	cw.WriteString(string(s.tag.TagName()))
	cw.WriteString(pairSep)
	cw.Call(func(w io.Writer) (int, error) {
		return s.tag.renderPayloadTo(w, s.val, &RenderOptions{Prec: 1}) //errtrace:skip
	})
	if paren {
		cw.WriteString(")")
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the sum.
func (s Sum) Render(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	s.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// RenderValue returns the rendering of the payload alone, without the tag and
// separator.
func (s Sum) RenderValue() string {
	if s.tag == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	s.tag.renderPayloadTo(sb, s.val, nil) //nolint:errcheck
	return sb.String()
}

func (s Sum) String() string { return s.Render(nil) }

// Format implements fmt.Formatter for custom formatting of the sum.
func (s Sum) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			s.RenderTo(f, &RenderOptions{Prec: pairPrec}) //nolint:errcheck
			return
		}
		fmt.Fprint(f, s.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(s.String()))
		return
	default:
		type hideMethods Sum
		type Sum hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Sum(s))
		return
	}
}
