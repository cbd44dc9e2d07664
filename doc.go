// Package hqp is an in-memory toolkit for enumerating and analyzing
// Latin squares: exhaustive completion of partial squares, transversal
// chains, Hadamard quasigroup products, and isomorphism search.
//
// 🚀 What is HadamardQuasigroupProduct?
//
//	A small, deterministic library that brings together:
//		• Model: partial/complete Latin squares, transversals, text codec
//		• Completion: all full completions of a partial square (exhaustive)
//		• Transversal fill: all consistent fillings along one transversal
//		• Chains: transversal-chain construction of squares stable under
//		  iterated Hadamard products
//		• Hadamard: entrywise products through an operation table, and the
//		  stability index of a square
//		• Isomorphism: every bijection mapping one square's table onto
//		  another's
//
// ✨ Why choose it?
//
//   - Exhaustive by contract – every engine returns the complete solution
//     set, never a single witness
//   - Explicit state – pure functions, deep copies at branch points, no
//     process-global context
//   - Bounded – cooperative node budgets instead of abrupt cancellation
//   - Parallel on demand – independent branches fan out to a worker pool
//
// Everything is organized under focused subpackages:
//
//	latin/       — grids, squares, transversals, validation, parsing
//	completion/  — exhaustive completion and transversal filling
//	chain/       — transversal-chain enumeration of stable squares
//	hadamard/    — entrywise products and the stability index
//	isomorphism/ — search for structure-preserving bijections
//	cmd/hqp/     — command-line harness over matrix files
//
// Quick example, order 3:
//
//	2 . .        2 1 3
//	. 3 .   ⟶    1 3 2
//	. . 1        3 2 1
//
//	the unique square reachable from that diagonal by a transversal chain.
//
//	go get github.com/RaulMFalcon/HadamardQuasigroupProduct
package hqp
