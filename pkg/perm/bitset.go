package perm

// bitset is a fixed-size set of indices in [0, n).
type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)>>6)
}

func (b bitset) get(i int) bool {
	return b[i>>6]&(1<<uint(i&63)) != 0
}

func (b bitset) set(i int) {
	b[i>>6] |= 1 << uint(i&63)
}
