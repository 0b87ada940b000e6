// Package poly implements the polynomial ring R = Z[X]/(X^N-1) used by
// NTRUEncrypt: dense integer polynomials, ternary polynomials (dense and
// sparse), and product-form polynomials, together with their modular
// inversions and bit-exact binary codecs.
//
// All arithmetic is circular: index i+j is always taken modulo N. Unlike
// the power-of-two cyclotomic ring X^N+1, wrap-around here never flips
// sign.
package poly
