package input

// HeldSet is the set of logical keys currently held down.
// The zero value is an empty set ready to use.
type HeldSet struct {
	bits uint16
}

// Press adds key to the set. Pressing a held key is a no-op.
func (h *HeldSet) Press(k Key) {
	if k < 0 || k >= keyCount {
		return
	}
	h.bits |= 1 << uint(k)
}

// Release removes key from the set. Releasing a key that is not held is a no-op.
func (h *HeldSet) Release(k Key) {
	if k < 0 || k >= keyCount {
		return
	}
	h.bits &^= 1 << uint(k)
}

// Held reports whether key is in the set.
func (h HeldSet) Held(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return h.bits&(1<<uint(k)) != 0
}

// Len returns the number of held keys.
func (h HeldSet) Len() int {
	n := 0
	for b := h.bits; b != 0; b &= b - 1 {
		n++
	}
	return n
}

// Keys returns the held keys in check order.
func (h HeldSet) Keys() []Key {
	var out []Key
	for k := Key(0); k < keyCount; k++ {
		if h.Held(k) {
			out = append(out, k)
		}
	}
	return out
}

// Clear empties the set.
func (h *HeldSet) Clear() {
	h.bits = 0
}
