package log_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/ghettovoice/dsum/internal/log"
	"github.com/ghettovoice/dsum/internal/types"
)

type fakeRenderer string

func (r fakeRenderer) Render(*types.RenderOptions) string { return string(r) }

func (r fakeRenderer) RenderTo(w io.Writer, _ *types.RenderOptions) (int, error) {
	return io.WriteString(w, string(r))
}

func TestNewDefault(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := log.NewDefault(&buf)

	l.Info("hello", "value", fakeRenderer(`A :=> 1`))

	out := buf.String()
	if !strings.Contains(out, "hello") {
		t.Errorf("log output %q does not contain the message", out)
	}
	if !strings.Contains(out, "A :=> 1") {
		t.Errorf("log output %q does not contain the rendered value", out)
	}
}

func TestNewDev(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := log.NewDev(&buf)

	l.Debug("hello", "value", fakeRenderer(`A :=> 1`))

	if out := buf.String(); !strings.Contains(out, "hello") {
		t.Errorf("log output %q does not contain the message", out)
	}
}

func TestNoop(t *testing.T) {
	t.Parallel()

	// Must not panic and must be disabled at all levels.
	log.Noop.Error("dropped")
	if log.Noop.Enabled(t.Context(), 0) {
		t.Errorf("Noop.Enabled() = true, want false")
	}
}
