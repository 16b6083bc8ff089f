// Package matrix holds the computational core of the calculator: dimension
// resolution, cell collection and integer matrix multiplication.
//
// Allowed here:
// - pure functions over [][]int and raw input strings
// - sentinel errors describing shape problems
//
// Not allowed here:
// - anything that renders, logs or owns UI state
package matrix
