/*
Package boolmat implements a simple type for square boolean matrices.
It is mainly used for adjacency and reachability relations of interval
graphs, where rows and columns are node indices.

Rows are stored as bit vectors, so the row-wise operations needed for
Warshall's algorithm and for boolean matrix products are word-parallel.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package boolmat

import (
	"strings"
)

// Matrix is a square boolean matrix. Construct with
//
//     M := boolmat.New(10)     // 10 x 10, all false
//
// Now
//
//     M.Set(2, 3)              // relate 2 to 3
//     b := M.At(2, 3)          // returns true
//     R := M.Closure()         // transitive closure of M
//
// Matrices do not grow; the dimension is fixed at construction.
type Matrix struct {
	n     int
	words int // words per row
	bits  []uint64
}

// New creates an n x n matrix with no bits set.
func New(n int) *Matrix {
	words := (n + 63) / 64
	return &Matrix{
		n:     n,
		words: words,
		bits:  make([]uint64, n*words),
	}
}

// N returns the dimension of the (square) matrix.
func (m *Matrix) N() int {
	return m.n
}

// Set sets the bit at position (i,j).
func (m *Matrix) Set(i, j int) {
	m.bits[i*m.words+j/64] |= 1 << uint(j%64)
}

// Clear clears the bit at position (i,j).
func (m *Matrix) Clear(i, j int) {
	m.bits[i*m.words+j/64] &^= 1 << uint(j%64)
}

// At returns the bit at position (i,j).
func (m *Matrix) At(i, j int) bool {
	return m.bits[i*m.words+j/64]&(1<<uint(j%64)) != 0
}

// Count returns the number of set bits.
func (m *Matrix) Count() int {
	cnt := 0
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if m.At(i, j) {
				cnt++
			}
		}
	}
	return cnt
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	c := New(m.n)
	copy(c.bits, m.bits)
	return c
}

// Equals compares two matrices bit for bit.
func (m *Matrix) Equals(other *Matrix) bool {
	if other == nil || m.n != other.n {
		return false
	}
	for w, bits := range m.bits {
		if bits != other.bits[w] {
			return false
		}
	}
	return true
}

// Closure returns the transitive closure of m, i.e. the relation "reachable
// by a path of one or more steps", computed with Warshall's algorithm. m is
// left untouched.
func (m *Matrix) Closure() *Matrix {
	r := m.Clone()
	for k := 0; k < r.n; k++ {
		krow := r.row(k)
		for i := 0; i < r.n; i++ {
			if r.At(i, k) {
				r.orRow(i, krow)
			}
		}
	}
	return r
}

// MulBool returns the boolean matrix product of m and other: bit (i,j) is
// set iff some k relates i to k in m and k to j in other.
func (m *Matrix) MulBool(other *Matrix) *Matrix {
	p := New(m.n)
	for i := 0; i < m.n; i++ {
		for k := 0; k < m.n; k++ {
			if m.At(i, k) {
				p.orRow(i, other.row(k))
			}
		}
	}
	return p
}

// AndNot returns a matrix with the bits of m that are not set in other.
func (m *Matrix) AndNot(other *Matrix) *Matrix {
	d := m.Clone()
	for w := range d.bits {
		d.bits[w] &^= other.bits[w]
	}
	return d
}

// row returns the bit vector of row i. The slice aliases the matrix.
func (m *Matrix) row(i int) []uint64 {
	return m.bits[i*m.words : (i+1)*m.words]
}

// orRow ors a row bit vector into row i.
func (m *Matrix) orRow(i int, bits []uint64) {
	row := m.row(i)
	for w, b := range bits {
		row[w] |= b
	}
}

func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if m.At(i, j) {
				b.WriteByte('1')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
