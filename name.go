package dsum

import "github.com/ghettovoice/dsum/internal/grammar"

// Name identifies a tag variant within a family.
type Name string

// IsValid checks whether the Name is syntactically valid.
func (n Name) IsValid() bool { return grammar.IsToken(n) }

// Equal compares this Name with another for equality.
func (n Name) Equal(val any) bool {
	var other Name
	switch v := val.(type) {
	case Name:
		other = v
	case *Name:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return n == other
}

func (n Name) String() string { return string(n) }
