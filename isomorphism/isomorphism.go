package isomorphism

import (
	"strconv"
	"strings"

	"github.com/RaulMFalcon/HadamardQuasigroupProduct/latin"
)

// Isomorphism is a bijection of [1..n] found by All. The zero value has
// order 0 and is not a valid mapping.
type Isomorphism struct {
	images []int // images[i] = sigma(i); images[0] unused
}

// Order reports the size n of the mapped symbol set.
func (s Isomorphism) Order() int { return len(s.images) - 1 }

// Image returns sigma(i) for 1-based i. Out-of-range i panics, as slice
// indexing would.
func (s Isomorphism) Image(i int) int { return s.images[i] }

// Images returns the images of 1..n in order, as a fresh slice.
func (s Isomorphism) Images() []int {
	out := make([]int, s.Order())
	copy(out, s.images[1:])

	return out
}

// String renders the images of 1..n blank-separated, e.g. "2 3 1".
func (s Isomorphism) String() string {
	var b strings.Builder
	for i := 1; i < len(s.images); i++ {
		if i > 1 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(s.images[i]))
	}

	return b.String()
}

// Check reports whether sigma satisfies the defining equation for every
// cell of l1 and l2. False when the three orders disagree.
func Check(l1, l2 latin.Square, sigma Isomorphism) bool {
	n := l1.Order()
	if l2.Order() != n || sigma.Order() != n {
		return false
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			if l2.At(sigma.Image(i), sigma.Image(j)) != sigma.Image(l1.At(i, j)) {
				return false
			}
		}
	}

	return true
}
