package tjpeg

import "errors"

// Error kinds mirror the standard library's image/jpeg idiom (FormatError /
// UnsupportedError). tjpeg splits UnsupportedError into two distinct kinds
// the format actually needs to tell apart (unsupported but well-formed
// profile vs. unsupported standard entirely) and adds string types for the
// remaining variable-message kinds.

// FormatError reports that the bitstream violates baseline JPEG grammar:
// a bad length, a bad table id, an invalid Huffman code, or a zigzag run
// that overshoots the block.
type FormatError string

func (e FormatError) Error() string { return "tjpeg: invalid format: " + string(e) }

// UnsupportedFormatError reports a value that is well-formed JPEG but
// outside the baseline profile this decoder accepts (e.g. non-8-bit
// precision, an unrecognized sampling factor).
type UnsupportedFormatError string

func (e UnsupportedFormatError) Error() string { return "tjpeg: unsupported format: " + string(e) }

// UnsupportedStandardError reports a marker belonging to a JPEG variant
// this decoder never implements (progressive, arithmetic, JPEG-LS, ...).
type UnsupportedStandardError string

func (e UnsupportedStandardError) Error() string {
	return "tjpeg: unsupported standard: " + string(e)
}

// InputError reports truncated input or an unexpected end of stream.
type InputError string

func (e InputError) Error() string { return "tjpeg: input error: " + string(e) }

// ParameterError reports an out-of-range argument from the caller.
type ParameterError string

func (e ParameterError) Error() string { return "tjpeg: parameter error: " + string(e) }

var (
	// ErrInterrupted is returned by Decompress when the sink asked to stop.
	ErrInterrupted = errors.New("tjpeg: decoding interrupted by sink")

	// ErrInsufficientMemory is returned when the workspace pool or a
	// caller-supplied buffer is too small for the image being decoded.
	ErrInsufficientMemory = errors.New("tjpeg: insufficient memory")

	// ErrInsufficientBuffer is reserved for a future streaming-input mode;
	// the core decoder never returns it today.
	ErrInsufficientBuffer = errors.New("tjpeg: insufficient buffer")
)
