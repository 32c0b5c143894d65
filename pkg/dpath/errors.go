// Package dpath implements the typed derivation-path algebra: paths are
// snoc lists of hard/soft-tagged indices, constrained at construction
// time to one of three shapes (Hard-only, Soft-only, or Any mix), with
// textual parse/print and application to an extended key.
package dpath

import "errors"

var (
	// ErrInvalidPath is returned by parsing and by narrowing
	// conversions (ToHard, ToSoft) that cannot be satisfied.
	ErrInvalidPath = errors.New("dpath: invalid path")

	// ErrPathHardnessMismatch is returned by ApplyToXPub when a path
	// carrying a hard segment is applied to a bare XPub.
	ErrPathHardnessMismatch = errors.New("dpath: path has a hard segment, but only a public key was given")

	// ErrNeedPrivateKey is returned by ApplyToXPub when a privately-rooted
	// path ("m/...") is applied to a bare XPub.
	ErrNeedPrivateKey = errors.New("dpath: path requires a private key")
)
