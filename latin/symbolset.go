package latin

import "math/bits"

// wordBits is the width of one SymbolSet storage word.
const wordBits = 64

// SymbolSet is a bitset over the symbols [1..n]. It is the currency of
// candidate queries (Grid.Candidates) and of the propagation engines,
// which thin sets down as cells get fixed.
//
// Like Grid, a copied SymbolSet value shares storage; Clone detaches.
// The zero SymbolSet has order 0 and contains nothing.
type SymbolSet struct {
	n     int
	words []uint64
}

// AllSymbols returns the full set {1..n}. An order below 1 yields the
// empty zero set.
func AllSymbols(n int) SymbolSet {
	if n < 1 {
		return SymbolSet{}
	}
	s := SymbolSet{n: n, words: make([]uint64, (n+wordBits-1)/wordBits)}
	for v := 1; v <= n; v++ {
		s.words[(v-1)/wordBits] |= 1 << uint((v-1)%wordBits)
	}

	return s
}

// NoSymbols returns the empty set over [1..n].
func NoSymbols(n int) SymbolSet {
	if n < 1 {
		return SymbolSet{}
	}

	return SymbolSet{n: n, words: make([]uint64, (n+wordBits-1)/wordBits)}
}

// Order reports the universe size n.
func (s SymbolSet) Order() int { return s.n }

// Has reports whether symbol v is in the set. Symbols outside [1..n]
// are never members.
func (s SymbolSet) Has(v int) bool {
	if v < 1 || v > s.n {
		return false
	}

	return s.words[(v-1)/wordBits]&(1<<uint((v-1)%wordBits)) != 0
}

// Add inserts symbol v; out-of-range symbols are ignored.
func (s SymbolSet) Add(v int) {
	if v < 1 || v > s.n {
		return
	}
	s.words[(v-1)/wordBits] |= 1 << uint((v-1)%wordBits)
}

// Remove deletes symbol v; out-of-range symbols are ignored.
func (s SymbolSet) Remove(v int) {
	if v < 1 || v > s.n {
		return
	}
	s.words[(v-1)/wordBits] &^= 1 << uint((v-1)%wordBits)
}

// Count returns the number of symbols in the set.
func (s SymbolSet) Count() int {
	var k int
	for _, w := range s.words {
		k += bits.OnesCount64(w)
	}

	return k
}

// IsEmpty reports whether the set holds no symbol.
func (s SymbolSet) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// Min returns the smallest member, or 0 if the set is empty.
func (s SymbolSet) Min() int {
	for i, w := range s.words {
		if w != 0 {
			return i*wordBits + bits.TrailingZeros64(w) + 1
		}
	}

	return 0
}

// ForEach calls fn on each member in ascending order until fn returns
// false or the set is exhausted.
func (s SymbolSet) ForEach(fn func(v int) bool) {
	var (
		w   uint64
		low uint64
	)
	for i := range s.words {
		w = s.words[i]
		for w != 0 {
			low = w & -w // lowest set bit
			if !fn(i*wordBits + bits.TrailingZeros64(w) + 1) {
				return
			}
			w &^= low
		}
	}
}

// Values returns the members in ascending order.
func (s SymbolSet) Values() []int {
	out := make([]int, 0, s.Count())
	s.ForEach(func(v int) bool {
		out = append(out, v)

		return true
	})

	return out
}

// Clone returns an independent copy of the set.
func (s SymbolSet) Clone() SymbolSet {
	out := SymbolSet{n: s.n, words: make([]uint64, len(s.words))}
	copy(out.words, s.words)

	return out
}
