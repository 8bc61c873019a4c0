package dsum

import (
	"encoding/json"

	"braces.dev/errtrace"

	"github.com/ghettovoice/dsum/internal/errorutil"
)

const errNotSumJSON errorutil.Error = "not a sum JSON"

// sumData is the JSON envelope of a Sum.
type sumData struct {
	Family string `json:"family,omitempty"`
	Tag    string `json:"tag"`
	Value  string `json:"value"`
}

// ToJSON encodes the sum into a JSON object with the tag name, the family
// name and the rendered payload. The zero Sum encodes to null.
func ToJSON(s Sum) ([]byte, error) {
	var data *sumData
	if s.IsValid() {
		data = &sumData{
			Family: s.tag.Family().Name(),
			Tag:    string(s.tag.TagName()),
			Value:  s.RenderValue(),
		}
	}
	return errtrace.Wrap2(json.Marshal(data))
}

// FromJSON decodes a sum previously encoded with ToJSON back against the
// family f. The family name, when present in the input, must match f,
// and the tag must be registered in f.
func FromJSON[T ~string | ~[]byte](f *Family, data T) (Sum, error) {
	if f == nil {
		return Sum{}, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil family"))
	}

	var sd *sumData
	if err := json.Unmarshal([]byte(data), &sd); err != nil {
		return Sum{}, errtrace.Wrap(errorutil.NewWrapperError(errNotSumJSON, err))
	}
	if sd == nil {
		return Sum{}, nil
	}
	if sd.Family != "" && sd.Family != f.Name() {
		return Sum{}, errtrace.Wrap(errorutil.NewWrapperError(ErrUnknownTag,
			"family %q doesn't match %q", sd.Family, f.Name()))
	}

	tag, ok := f.Lookup(Name(sd.Tag))
	if !ok {
		return Sum{}, errtrace.Wrap(errorutil.NewWrapperError(ErrUnknownTag, "tag %q", sd.Tag))
	}

	val, rest, err := tag.consumePayload([]byte(sd.Value))
	if err != nil {
		return Sum{}, errtrace.Wrap(err)
	}
	if len(rest) > 0 {
		return Sum{}, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedInput,
			"trailing input %q", rest))
	}
	return Sum{tag: tag, val: val}, nil
}

// MarshalJSON implements the json.Marshaler interface.
func (s Sum) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(s))
}
