package chain_test

import (
	"testing"

	"github.com/RaulMFalcon/HadamardQuasigroupProduct/chain"
	"github.com/RaulMFalcon/HadamardQuasigroupProduct/latin"
)

// benchSeed builds the order-n all-empty grid with diagonal d.
func benchSeed(b *testing.B, d []int) latin.Grid {
	b.Helper()
	g, err := latin.New(len(d))
	if err != nil {
		b.Fatal(err)
	}
	for i, v := range d {
		g.Set(i+1, i+1, v)
	}
	return g
}

func BenchmarkSquares_Diagonal4(b *testing.B) {
	p := benchSeed(b, []int{2, 1, 4, 3})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := chain.Squares(p, chain.DefaultOptions()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSquares_Diagonal5(b *testing.B) {
	p := benchSeed(b, []int{2, 3, 4, 5, 1})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := chain.Squares(p, chain.DefaultOptions()); err != nil {
			b.Fatal(err)
		}
	}
}
