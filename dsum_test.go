package dsum_test

import (
	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/dsum"
)

// fixture is a family with one tag per payload kind used across the tests.
type fixture struct {
	fam     *dsum.Family
	aString *dsum.Tag[string]
	anInt   *dsum.Tag[int]
	aFloat  *dsum.Tag[float64]
	aBool   *dsum.Tag[bool]
	aWords  *dsum.Tag[[]string]
	aNested *dsum.Tag[dsum.Sum]
}

func newFixture(name string, opts ...dsum.FamilyOption) *fixture {
	fam := dsum.NewFamily(name, opts...)
	return &fixture{
		fam:     fam,
		aString: dsum.NewTag(fam, "AString", dsum.String),
		anInt:   dsum.NewTag(fam, "AnInt", dsum.Int),
		aFloat:  dsum.NewTag(fam, "AFloat", dsum.Float64),
		aBool:   dsum.NewTag(fam, "ABool", dsum.Bool),
		aWords:  dsum.NewTag(fam, "AWords", dsum.SliceOf(dsum.String)),
		aNested: dsum.NewTag(fam, "ANested", dsum.SumOf(fam)),
	}
}

var cmpOpts = []cmp.Option{
	cmp.Comparer(func(s1, s2 dsum.Sum) bool { return s1.Equal(s2) }),
}
