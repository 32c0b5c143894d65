package bip32

// IndexCycle is a restartable, wrapping sequence of soft indices
// starting at some offset i0, as described by §4.2's cycle_from: each
// call to Next returns the current index and advances, wrapping
// 0x7fffffff back to 0. It holds no reference to any key and is safe
// to discard and recreate from any offset; callers that want to
// "cancel" an address-derivation scan simply stop calling Next.
type IndexCycle struct {
	next uint32
}

// NewIndexCycle starts a cycle at i0 (which must be a valid soft
// index; callers deriving hardened children don't use this type).
func NewIndexCycle(i0 uint32) *IndexCycle {
	return &IndexCycle{next: i0 % HardenedOffset}
}

// Next returns the current index and advances the cycle.
func (c *IndexCycle) Next() uint32 {
	i := c.next
	if c.next == HardenedOffset-1 {
		c.next = 0
	} else {
		c.next++
	}
	return i
}
