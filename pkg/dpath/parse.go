package dpath

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode records the leading marker of a textual path: "m" asks the
// engine to derive privately, "M" to derive (privately, if needed)
// then present the result as a public key; no marker leaves the
// interpretation to the caller.
type Mode uint8

const (
	ModeNone Mode = iota
	ModePrivate
	ModePublic
)

// Parsed pairs a leading mode marker with the parsed segment sequence.
type Parsed struct {
	Mode Mode
	Path Path
}

// Parse reads a textual derivation path: ["m"|"M"] *("/" segment),
// where each segment is a decimal index in [0, 2^31) optionally
// suffixed with "'" (or, leniently, "h"/"H") for hard derivation. It
// rejects empty segments, non-decimal digits, and out-of-range
// indices.
func Parse(s string) (Parsed, error) {
	rest := s
	mode := ModeNone
	switch {
	case strings.HasPrefix(rest, "m"):
		mode = ModePrivate
		rest = rest[1:]
	case strings.HasPrefix(rest, "M"):
		mode = ModePublic
		rest = rest[1:]
	}

	path := Deriv(KindAny)
	if rest == "" {
		return Parsed{Mode: mode, Path: path}, nil
	}

	parts := strings.Split(rest, "/")
	if mode != ModeNone {
		// "m/0/1" splits to ["", "0", "1"]; the leading empty part
		// is the separator right after the marker.
		if len(parts) == 0 || parts[0] != "" {
			return Parsed{}, fmt.Errorf("%w: expected \"/\" after leading marker", ErrInvalidPath)
		}
		parts = parts[1:]
	}

	for _, seg := range parts {
		if seg == "" {
			return Parsed{}, fmt.Errorf("%w: empty segment", ErrInvalidPath)
		}

		hard := false
		digits := seg
		last := seg[len(seg)-1]
		if last == '\'' || last == 'h' || last == 'H' {
			hard = true
			digits = seg[:len(seg)-1]
		}
		if digits == "" {
			return Parsed{}, fmt.Errorf("%w: empty segment", ErrInvalidPath)
		}
		for _, r := range digits {
			if r < '0' || r > '9' {
				return Parsed{}, fmt.Errorf("%w: non-decimal digit in %q", ErrInvalidPath, seg)
			}
		}

		n, err := strconv.ParseUint(digits, 10, 64)
		if err != nil || n > MaxSegment {
			return Parsed{}, fmt.Errorf("%w: index %q out of range", ErrInvalidPath, digits)
		}

		var appendErr error
		if hard {
			path, appendErr = path.AppendHard(uint32(n))
		} else {
			path, appendErr = path.AppendSoft(uint32(n))
		}
		if appendErr != nil {
			return Parsed{}, appendErr
		}
	}

	return Parsed{Mode: mode, Path: path}, nil
}

// String renders p back to textual form. Hard segments always print
// with "'", never "h"/"H", regardless of how they were parsed.
func (p Parsed) String() string {
	var b strings.Builder
	switch p.Mode {
	case ModePrivate:
		b.WriteByte('m')
	case ModePublic:
		b.WriteByte('M')
	}
	for i, s := range p.Path.segs {
		if i > 0 || p.Mode != ModeNone {
			b.WriteByte('/')
		}
		b.WriteString(strconv.FormatUint(uint64(s.Index), 10))
		if s.Hard {
			b.WriteByte('\'')
		}
	}
	return b.String()
}
