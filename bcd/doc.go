// Package bcd implements the 1401 storage character: a six bit BCD code
// (zone bits B and A, digit bits 8-4-2-1) plus the check bit and the word
// mark, and the table that maps those codes to printable characters.
//
// Bit positions are: WM | C | B | A | 8 | 4 | 2 | 1
//
// Every character held in the table carries odd parity over its low seven
// bits. The word mark is not part of the parity.
package bcd
