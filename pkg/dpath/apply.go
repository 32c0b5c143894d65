package dpath

import (
	"fmt"

	"github.com/yourusername/hdkeycore/pkg/bip32"
)

// Result holds the outcome of ApplyToXPrv or ApplyToXPub: exactly one
// of Prv or Pub is set,
// depending on the parsed mode and the key it was applied to.
type Result struct {
	Prv *bip32.XPrv
	Pub *bip32.XPub
}

// ApplyToXPrv applies a parsed path to an extended private key.
//
//   - "m/..." (or no marker): derive privately, return an XPrv.
//   - "M/...": derive privately, then project to an XPub.
func ApplyToXPrv(p Parsed, x *bip32.XPrv) (Result, error) {
	child, err := derivePrv(p.Path, x)
	if err != nil {
		return Result{}, err
	}
	if p.Mode == ModePublic {
		pub, err := child.Neuter()
		if err != nil {
			return Result{}, err
		}
		return Result{Pub: pub}, nil
	}
	return Result{Prv: child}, nil
}

// ApplyToXPub applies a parsed path to an extended public key.
//
//   - "m/...": fails, a private key is required.
//   - "M/..." or no marker: if the path has no hard segment, derive
//     publicly and return an XPub; otherwise PathHardnessMismatch.
func ApplyToXPub(p Parsed, x *bip32.XPub) (Result, error) {
	if p.Mode == ModePrivate {
		return Result{}, ErrNeedPrivateKey
	}
	if p.Path.HasHard() {
		return Result{}, ErrPathHardnessMismatch
	}
	soft, err := p.Path.ToSoft()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrPathHardnessMismatch, err)
	}
	child, err := derivePub(soft, x)
	if err != nil {
		return Result{}, err
	}
	return Result{Pub: child}, nil
}

// derivePrv folds path outermost-to-innermost over an XPrv, calling
// DeriveHard or DeriveSoft per segment.
func derivePrv(path Path, x *bip32.XPrv) (*bip32.XPrv, error) {
	cur := x
	for _, s := range path.Segments() {
		var err error
		if s.Hard {
			cur, err = cur.DeriveHard(s.Index | bip32.HardenedOffset)
		} else {
			cur, err = cur.DeriveSoft(s.Index)
		}
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}

// derivePub folds a Soft path outermost-to-innermost over an XPub,
// calling DeriveSoft per segment.
func derivePub(path Path, x *bip32.XPub) (*bip32.XPub, error) {
	cur := x
	for _, s := range path.Segments() {
		if s.Hard {
			return nil, ErrPathHardnessMismatch
		}
		child, err := cur.DeriveSoft(s.Index)
		if err != nil {
			return nil, err
		}
		cur = child
	}
	return cur, nil
}
