// Package dsum implements a dependent sum: a pairing of a tag witness with a
// payload whose type is fixed by that tag. Tags are registered in a [Family]
// together with a [Codec] providing the payload type's capabilities, which lets
// sums of different variants share one homogeneous collection while the pairing
// itself stays type safe:
//
//	strs := dsum.NewFamily("example")
//	AString := dsum.NewTag(strs, "AString", dsum.String)
//	AnInt := dsum.NewTag(strs, "AnInt", dsum.Int)
//
//	s1 := dsum.New(AString, "hello!")
//	s2 := dsum.New(AnInt, 42)
//
//	s1.Render(nil) // AString :=> "hello!"
//	s1.Equal(s2)   // false
//
//	s3, _ := dsum.Parse(strs, `AnInt :=> 42`)
//	s3.Equal(s2) // true
//
// The payload leaves the type system only through [Sum.Value]; it comes back
// through [Match], which narrows it to the concrete type witnessed by the tag.
package dsum

//go:generate go tool errtrace -w .

// Version is the current dsum package version.
const Version = "0.1.0"
