package address

import "github.com/yourusername/hdkeycore/pkg/bip32"

// Scan is a restartable, wrapping soft-index sequence of children of
// a single xpub, built on bip32.IndexCycle. Address-watching wallets
// use it to probe successive indices without holding derivation
// state beyond the cycle's current offset.
type Scan struct {
	xpub  *bip32.XPub
	cycle *bip32.IndexCycle
}

// NewScan starts scanning the children of xpub from index i0.
func NewScan(xpub *bip32.XPub, i0 uint32) *Scan {
	return &Scan{xpub: xpub, cycle: bip32.NewIndexCycle(i0)}
}

// Next derives and returns the next child in the cycle.
func (s *Scan) Next() (*bip32.XPub, error) {
	return s.xpub.DeriveSoft(s.cycle.Next())
}
