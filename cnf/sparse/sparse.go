/*
Package sparse implements a simple type for sparse integer matrices.
It is used for indexing binary grammar rules by pairs of right-hand-side
symbols, where most pairs never occur. Every entry in the matrix is a list
of int32 values.

This implementation uses the COO algorithm (a.k.a. triplet-encoding), with
triplets kept sorted by (row, column).

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229
   https://www.coin-or.org/Ipopt/documentation/node38.html


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"sort"
)

// IntMatrix is a type for a sparse matrix of integer lists. Construct with
//
//     M := NewIntMatrix(10, 10)
//
// Now
//
//     M.Add(2, 3, 4711)              // append a value
//     M.Add(2, 3, 123)               // append a second value
//     v := M.Values(2, 3)            // returns [4711 123]
//     cnt := M.ValueCount()          // still returns 1 (one position set)
//     v = M.Values(9, 9)             // returns nil
//
// Values cannot be deleted.
type IntMatrix struct {
	values []triplet
	rowcnt int
	colcnt int
}

// Triplet values to store
type triplet struct {
	row, col int
	values   []int32
}

// NewIntMatrix creates a new matrix for int lists, size m x n.
func NewIntMatrix(m, n int) *IntMatrix {
	return &IntMatrix{
		values: []triplet{},
		rowcnt: m,
		colcnt: n,
	}
}

// ValueCount returns the number of occupied positions in the matrix.
func (m *IntMatrix) ValueCount() int {
	return len(m.values)
}

// Values returns the list of values at position (i,j), or nil.
// Clients must not modify the returned slice.
func (m *IntMatrix) Values(i, j int) []int32 {
	if k, found := m.search(i, j); found {
		return m.values[k].values
	}
	return nil
}

// Add appends a value to the list at position (i,j).
func (m *IntMatrix) Add(i, j int, value int32) *IntMatrix {
	if i < 0 || i >= m.rowcnt || j < 0 || j >= m.colcnt {
		panic(fmt.Sprintf("sparse.IntMatrix.Add() with index (%d,%d) out of range %dx%d",
			i, j, m.rowcnt, m.colcnt))
	}
	at, found := m.search(i, j)
	if found {
		m.values[at].values = append(m.values[at].values, value)
		return m
	}
	tnew := triplet{row: i, col: j, values: []int32{value}}
	// the following 3 lines have to work for at being the right edge of values or not
	m.values = append(m.values, tnew)    // make room
	copy(m.values[at+1:], m.values[at:]) // copy remainder values one index to right
	m.values[at] = tnew                  // if not append-case: insert new triplet
	return m
}

// search returns the position of (i,j) within the triplets, or the position
// where it would have to be inserted.
func (m *IntMatrix) search(i, j int) (int, bool) {
	k := sort.Search(len(m.values), func(k int) bool {
		return !m.values[k].storedLeftOf(i, j)
	})
	return k, k < len(m.values) && m.values[k].storedAt(i, j)
}

func (t *triplet) storedLeftOf(i, j int) bool {
	return t.row < i || t.row == i && t.col < j
}

func (t *triplet) storedAt(i, j int) bool {
	return t.row == i && t.col == j
}

func (t triplet) String() string {
	return fmt.Sprintf("(%d,%d)=%v", t.row, t.col, t.values)
}
