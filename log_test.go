package tjpeg

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestDebugHookIsOptional(t *testing.T) {
	c := qt.New(t)
	logf("no hook installed, must not panic: %d", 1)

	var got string
	debugf = func(format string, args ...any) { got = format }
	defer func() { debugf = nil }()

	logf("hook: %d", 42)
	c.Assert(got, qt.Equals, "hook: %d")
}
