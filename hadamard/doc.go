// Package hadamard computes entrywise products of equal-order matrices
// through a Latin square used as an operation table, and the stability
// index of a square: how many iterated self-products it takes to come
// back to the square itself.
package hadamard
