// Package densemat is a small, dependency-light toolkit for dense matrices:
// generic storage, structural editing and the textbook linear-algebra
// routines (row reduction, rank, inverse, determinant).
//
// 🚀 What is densemat?
//
//	A pure-Go library that brings together:
//		• Storage: a growable row-major buffer with exclusive ownership
//		• Editing: insert/delete/clear rows and columns in place
//		• Assembly: blocks, eight-way concatenation, splits and minors
//		• Arithmetic: +, −, scalar and matrix products, transpose, powers
//		• Gauss-Jordan: row-reduced echelon form, rank, inverse
//		• Determinants: cofactor (Laplace) expansion
//		• Interop: copy to and from gonum's mat.Dense
//
// ✨ Why choose densemat?
//
//   - Generic – one Dense[T] for ints and floats
//   - Safe – every misuse is a returned, errors.Is-matchable sentinel
//   - Deterministic – fixed loop orders, bit-identical reruns
//
// Layout:
//
//	matrix/   - Dense[T], structural ops, kernels, reducer, determinant
//	examples/ - a runnable inverse walkthrough
//
// Quick ASCII example:
//
//	    [1 2]⁻¹   [-2    1 ]
//	    [3 4]   = [1.5 -0.5]
//
//	go get github.com/katalvlaran/densemat/matrix
package densemat
