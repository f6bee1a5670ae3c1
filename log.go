package tjpeg

// debugf is an optional debug hook, nil by default. Tests (or a caller
// building with a debug tag) may set it to capture decision points without
// pulling a logging library into the core decode path.
var debugf func(format string, args ...any)

func logf(format string, args ...any) {
	if debugf != nil {
		debugf(format, args...)
	}
}
