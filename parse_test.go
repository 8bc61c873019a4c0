package dsum_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/dsum"
)

func TestParse(t *testing.T) {
	t.Parallel()

	fx := newFixture("example")

	tests := []struct {
		name string
		in   string
		want dsum.Sum
	}{
		{"string", `AString :=> "hello!"`, dsum.New(fx.aString, "hello!")},
		{"string escaped", `AString :=> "a\"b\n"`, dsum.New(fx.aString, "a\"b\n")},
		{"int", `AnInt :=> 42`, dsum.New(fx.anInt, 42)},
		{"negative int", `AnInt :=> -7`, dsum.New(fx.anInt, -7)},
		{"float", `AFloat :=> 1.5`, dsum.New(fx.aFloat, 1.5)},
		{"float exponent", `AFloat :=> -2.5e3`, dsum.New(fx.aFloat, -2500)},
		{"bool", `ABool :=> false`, dsum.New(fx.aBool, false)},
		{"empty slice", `AWords :=> []`, dsum.New(fx.aWords, []string{})},
		{"slice", `AWords :=> ["a", "b"]`, dsum.New(fx.aWords, []string{"a", "b"})},
		{"parenthesized", `(AnInt :=> 42)`, dsum.New(fx.anInt, 42)},
		{"double parenthesized", `((AnInt :=> 42))`, dsum.New(fx.anInt, 42)},
		{"surrounding space", `  AnInt :=> 42  `, dsum.New(fx.anInt, 42)},
		{"space inside parens", `( AnInt :=> 42 )`, dsum.New(fx.anInt, 42)},
		{
			"nested",
			`ANested :=> AnInt :=> 42`,
			dsum.New(fx.aNested, dsum.New(fx.anInt, 42)),
		},
		{
			"nested parenthesized",
			`ANested :=> (AnInt :=> 42)`,
			dsum.New(fx.aNested, dsum.New(fx.anInt, 42)),
		},
		{
			"doubly nested",
			`ANested :=> ANested :=> AString :=> "deep"`,
			dsum.New(fx.aNested, dsum.New(fx.aNested, dsum.New(fx.aString, "deep"))),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := dsum.Parse(fx.fam, tc.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %s", tc.in, err)
			}
			if diff := cmp.Diff(tc.want, got, cmpOpts...); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}

			// Bytes parse the same as strings.
			got, err = dsum.Parse(fx.fam, []byte(tc.in))
			if err != nil {
				t.Fatalf("Parse(%q) error: %s", tc.in, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("Parse([]byte) = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestParse_errors(t *testing.T) {
	t.Parallel()

	fx := newFixture("example")

	tests := []struct {
		name    string
		in      string
		wantErr error
	}{
		{"empty", ``, dsum.ErrEmptyInput},
		{"blank", `   `, dsum.ErrEmptyInput},
		{"unknown tag", `Bogus :=> 1`, dsum.ErrUnknownTag},
		{"missing tag name", `42`, dsum.ErrMalformedInput},
		{"missing separator", `AnInt => 1`, dsum.ErrMalformedInput},
		{"separator without spaces", `AnInt:=>1`, dsum.ErrMalformedInput},
		{"bad payload", `AnInt :=> x`, dsum.ErrMalformedInput},
		{"unquoted string", `AString :=> hello`, dsum.ErrMalformedInput},
		{"unterminated string", `AString :=> "hello`, dsum.ErrMalformedInput},
		{"trailing input", `AnInt :=> 42 junk`, dsum.ErrMalformedInput},
		{"unclosed paren", `(AnInt :=> 42`, dsum.ErrMalformedInput},
		{"unbalanced paren", `AnInt :=> 42)`, dsum.ErrMalformedInput},
		{"unterminated list", `AWords :=> ["a"`, dsum.ErrMalformedInput},
		{"bad list separator", `AWords :=> ["a"; "b"]`, dsum.ErrMalformedInput},
		{"nested unknown tag", `ANested :=> Bogus :=> 1`, dsum.ErrUnknownTag},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := dsum.Parse(fx.fam, tc.in)
			if diff := cmp.Diff(tc.wantErr, err, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("Parse(%q) error mismatch (-want +got):\n%s", tc.in, diff)
			}
			if got.IsValid() {
				t.Errorf("Parse(%q) = %s, want zero Sum", tc.in, got)
			}
		})
	}

	if _, err := dsum.Parse(nil, `AnInt :=> 42`); err == nil {
		t.Error("Parse(nil, ...) expected error")
	}
}

func TestParse_roundTrip(t *testing.T) {
	t.Parallel()

	fx := newFixture("example")

	sums := []dsum.Sum{
		dsum.New(fx.aString, "hello!"),
		dsum.New(fx.aString, ""),
		dsum.New(fx.anInt, 0),
		dsum.New(fx.anInt, -123),
		dsum.New(fx.aFloat, 0.25),
		dsum.New(fx.aFloat, math.Inf(1)),
		dsum.New(fx.aFloat, math.Inf(-1)),
		dsum.New(fx.aFloat, math.NaN()),
		dsum.New(fx.aBool, true),
		dsum.New(fx.aWords, []string{"a", "b", "c"}),
		dsum.New(fx.aNested, dsum.New(fx.aWords, []string{"x"})),
	}
	for _, s := range sums {
		got, err := dsum.Parse(fx.fam, s.Render(nil))
		if err != nil {
			t.Fatalf("Parse(%s) error: %s", s, err)
		}
		if !got.Equal(s) {
			t.Errorf("Parse(Render()) = %s, want %s", got, s)
		}

		// The parenthesized form parses back too.
		got, err = dsum.Parse(fx.fam, s.Render(&dsum.RenderOptions{Prec: 10}))
		if err != nil {
			t.Fatalf("Parse(%+s) error: %s", s, err)
		}
		if !got.Equal(s) {
			t.Errorf("Parse of parenthesized form = %s, want %s", got, s)
		}
	}
}
