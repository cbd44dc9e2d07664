// Package isomorphism searches permutation space for every bijection
// sigma of [1..n] carrying one Latin square onto another when applied
// simultaneously to rows, columns and symbols:
//
//	L2[sigma(i), sigma(j)] = sigma(L1[i, j])  for all i, j.
//
// The search assigns sigma(1), sigma(2), ... in order. Each tentative
// choice is closed under the forced consequences of the equation above:
// as soon as sigma is known on i and j, the equation pins sigma at the
// table entry L1[i,j], which in turn may determine further values. A
// contradiction or a clash with the bijectivity mask prunes the branch
// immediately, so full assignments need no final verification pass.
package isomorphism
