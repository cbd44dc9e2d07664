package isomorphism_test

import (
	"fmt"

	"github.com/RaulMFalcon/HadamardQuasigroupProduct/isomorphism"
	"github.com/RaulMFalcon/HadamardQuasigroupProduct/latin"
)

// ExampleAll lists the automorphisms of the cyclic order-3 table.
func ExampleAll() {
	l, _ := latin.Cyclic(3)

	isos, _ := isomorphism.All(l, l, isomorphism.DefaultOptions())
	for _, sigma := range isos {
		fmt.Println(sigma)
	}
	// Output:
	// 1 2 3
	// 1 3 2
}
