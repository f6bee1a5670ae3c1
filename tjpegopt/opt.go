// Package tjpegopt parses a single shell-style configuration line into
// DecodeOptions, for boards that load decoder settings from a config file
// or a serial console rather than wiring them up in Go source.
//
// Built on github.com/google/shlex: tokenizing a config string is the one
// place in this module a shell-lexing library has a natural home.
package tjpegopt

import (
	"strconv"

	"github.com/google/shlex"
	"tinygo.org/x/tjpeg"
)

// DecodeOptions holds the subset of decoder configuration that makes sense
// to set from a text line: Huffman tier and output scale.
type DecodeOptions struct {
	Tier  tjpeg.Tier
	Scale uint8
}

// ParseOptions tokenizes line with shlex and applies recognized
// "-flag value" pairs on top of defaults, returning the result.
// Recognized flags:
//
//	-tier  minimum|register|lut   (default register)
//	-scale 0|1|2|3                (default 0)
//
// Unrecognized flags are a tjpeg.ParameterError; ParseOptions never
// partially applies a malformed line.
func ParseOptions(line string) (DecodeOptions, error) {
	defaults := DecodeOptions{Tier: tjpeg.TierRegister, Scale: 0}
	opts := defaults

	tokens, err := shlex.Split(line)
	if err != nil {
		return defaults, tjpeg.ParameterError("malformed option line: " + err.Error())
	}

	for i := 0; i < len(tokens); i++ {
		switch tokens[i] {
		case "-tier":
			if i+1 >= len(tokens) {
				return defaults, tjpeg.ParameterError("-tier requires a value")
			}
			i++
			switch tokens[i] {
			case "minimum":
				opts.Tier = tjpeg.TierMinimum
			case "register":
				opts.Tier = tjpeg.TierRegister
			case "lut":
				opts.Tier = tjpeg.TierLUT
			default:
				return defaults, tjpeg.ParameterError("unknown -tier value: " + tokens[i])
			}
		case "-scale":
			if i+1 >= len(tokens) {
				return defaults, tjpeg.ParameterError("-scale requires a value")
			}
			i++
			n, err := strconv.Atoi(tokens[i])
			if err != nil || n < 0 || n > 3 {
				return defaults, tjpeg.ParameterError("-scale must be 0..3")
			}
			opts.Scale = uint8(n)
		default:
			return defaults, tjpeg.ParameterError("unknown option: " + tokens[i])
		}
	}
	return opts, nil
}
