package dsum

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/ghettovoice/dsum/internal/errorutil"
	"github.com/ghettovoice/dsum/internal/log"
	"github.com/ghettovoice/dsum/internal/util"
)

// AnyTag is the erased view of a tag witness: the variant identity together
// with the generalized capabilities over its hidden payload type.
//
// Every AnyTag is a *[Tag] created by [NewTag]; the unexported methods keep
// the payload narrowing confined to this package.
type AnyTag interface {
	// TagName returns the variant name.
	TagName() Name
	// Family returns the family the tag is registered in.
	Family() *Family

	ord() int
	equalPayload(v1, v2 any) bool
	comparePayload(v1, v2 any) int
	renderPayloadTo(w io.Writer, v any, opts *RenderOptions) (int, error)
	consumePayload(s []byte) (any, []byte, error)
	clonePayload(v any) any
}

// Tag is a tag witness for payload type A. Pairing it with a payload via [New]
// forces the payload to have type A; the tag thereby fixes the payload type of
// every [Sum] constructed with it.
//
// Tags are created by [NewTag] and are immutable afterwards.
type Tag[A any] struct {
	name Name
	fam  *Family
	idx  int
	cdc  Codec[A]
}

// TagName returns the variant name.
func (t *Tag[A]) TagName() Name { return t.name }

// Family returns the family the tag is registered in.
func (t *Tag[A]) Family() *Family { return t.fam }

// Pair pairs the tag with a payload.
// It is the method form of [New].
func (t *Tag[A]) Pair(v A) Sum { return New(t, v) }

func (t *Tag[A]) String() string { return string(t.name) }

func (t *Tag[A]) ord() int { return t.idx }

// The methods below perform the only payload narrowing in the package.
// They run on values stored through New at this very tag, so the assertion
// cannot fail.

func (t *Tag[A]) equalPayload(v1, v2 any) bool {
	return t.cdc.Equal(v1.(A), v2.(A)) //nolint:forcetypeassert
}

func (t *Tag[A]) comparePayload(v1, v2 any) int {
	return t.cdc.Compare(v1.(A), v2.(A)) //nolint:forcetypeassert
}

func (t *Tag[A]) renderPayloadTo(w io.Writer, v any, opts *RenderOptions) (int, error) {
	return t.cdc.RenderTo(w, v.(A), opts) //nolint:forcetypeassert
}

func (t *Tag[A]) consumePayload(s []byte) (any, []byte, error) {
	v, rest, err := t.cdc.Consume(s)
	if err != nil {
		return nil, nil, err
	}
	return v, rest, nil
}

func (t *Tag[A]) clonePayload(v any) any {
	return t.cdc.Clone(v.(A)) //nolint:forcetypeassert
}

var famSeq atomic.Uint64

// Family is a set of tag variants sharing one sum space. It is the registry
// behind the generalized capabilities: name lookup recovers the payload parser
// during [Parse], and registration order induces the tag part of the total
// order used by [Sum.Compare].
type Family struct {
	name   string
	seq    uint64
	logger *slog.Logger

	mu     sync.RWMutex
	tags   []AnyTag
	byName map[Name]AnyTag
}

// NewFamily creates a new empty tag family.
func NewFamily(name string, opts ...FamilyOption) *Family {
	f := &Family{
		name:   util.TrimSP(name),
		seq:    famSeq.Add(1),
		logger: log.Noop,
		byName: make(map[Name]AnyTag),
	}
	for _, opt := range opts {
		opt.applyFamily(f)
	}
	return f
}

// FamilyOption configures a family.
type FamilyOption interface {
	applyFamily(f *Family)
}

type withLogger struct {
	logger *slog.Logger
}

func (o withLogger) applyFamily(f *Family) {
	if o.logger != nil {
		f.logger = o.logger
	}
}

// WithLogger sets the logger used for registration and parse diagnostics.
func WithLogger(logger *slog.Logger) FamilyOption { return withLogger{logger} }

// Name returns the family name.
func (f *Family) Name() string { return f.name }

// Len returns the number of registered tags.
func (f *Family) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.tags)
}

// Lookup returns the tag registered under the given name.
func (f *Family) Lookup(name Name) (AnyTag, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	t, ok := f.byName[name]
	return t, ok
}

// All iterates over the registered tags in registration order.
func (f *Family) All() iter.Seq[AnyTag] {
	f.mu.RLock()
	tags := make([]AnyTag, len(f.tags))
	copy(tags, f.tags)
	f.mu.RUnlock()

	return func(yield func(AnyTag) bool) {
		for _, t := range tags {
			if !yield(t) {
				return
			}
		}
	}
}

// NewTag registers a new tag variant in the family and returns its witness.
// The codec supplies the capabilities of the payload type A.
// NewTag panics when the name is not a valid token, the codec is nil or the
// name is already registered: registration happens at init time and an
// inconsistent registry would break every derived operation.
func NewTag[A any](f *Family, name Name, codec Codec[A]) *Tag[A] {
	if f == nil {
		panic(errorutil.NewInvalidArgumentError("nil family"))
	}
	name = util.TrimSP(name)
	if !name.IsValid() {
		panic(errorutil.NewInvalidArgumentError("invalid tag name %q", name))
	}
	if codec == nil {
		panic(errorutil.NewInvalidArgumentError("nil codec for tag %q", name))
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.byName[name]; ok {
		panic(errorutil.Errorf("tag %q already registered in family %q", name, f.name))
	}

	t := &Tag[A]{
		name: name,
		fam:  f,
		idx:  len(f.tags),
		cdc:  codec,
	}
	f.tags = append(f.tags, t)
	f.byName[name] = t

	var zero A
	f.logger.Debug("tag registered",
		"family", f.name,
		"tag", string(name),
		"payload", fmt.Sprintf("%T", zero),
	)
	return t
}
