/*
Package matrix implements sparse boolean matrices, the algebraic
backbone of BoolMatrixFA (NFA transitions as per-symbol adjacency
matrices) and of the CFPQ-Matrix fixed point (one matrix per grammar
variable).

This generalizes the triplet/COO representation of the sibling
module's lr/sparse package (used there for integer-valued LR parser
tables, built once and read rarely) to boolean-valued cells stored in
row-indexed sets, since CFPQ and RPQ workloads set and query cells far
more often than parser-table construction ever does: a linear COO scan
per lookup would dominate the fixed-point loops in cfpq and rpq.

License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.
*/
package matrix

import "fmt"

// Bool is a sparse boolean matrix of shape (Rows, Cols). The zero value
// is not usable; construct with New.
type Bool struct {
	Rows, Cols int
	rows       map[int]map[int]struct{} // row -> set of columns
}

// New creates an empty m x n boolean matrix.
func New(m, n int) *Bool {
	return &Bool{Rows: m, Cols: n, rows: make(map[int]map[int]struct{})}
}

// Get reports whether M[i,j] is set.
func (m *Bool) Get(i, j int) bool {
	row, ok := m.rows[i]
	if !ok {
		return false
	}
	_, ok = row[j]
	return ok
}

// Set sets M[i,j] = true.
func (m *Bool) Set(i, j int) {
	row, ok := m.rows[i]
	if !ok {
		row = make(map[int]struct{})
		m.rows[i] = row
	}
	row[j] = struct{}{}
}

// NNZ returns the number of nonzero (true) cells.
func (m *Bool) NNZ() int {
	n := 0
	for _, row := range m.rows {
		n += len(row)
	}
	return n
}

// Row returns the sorted column indices set in row i.
func (m *Bool) Row(i int) []int {
	row, ok := m.rows[i]
	if !ok {
		return nil
	}
	cols := make([]int, 0, len(row))
	for j := range row {
		cols = append(cols, j)
	}
	sortInts(cols)
	return cols
}

// Cells returns every nonzero (i,j) pair, in deterministic row-major
// order.
func (m *Bool) Cells() [][2]int {
	rowIdx := make([]int, 0, len(m.rows))
	for i := range m.rows {
		rowIdx = append(rowIdx, i)
	}
	sortInts(rowIdx)
	var out [][2]int
	for _, i := range rowIdx {
		for _, j := range m.Row(i) {
			out = append(out, [2]int{i, j})
		}
	}
	return out
}

// Or computes the in-place union m |= other, returning true if m
// gained at least one new nonzero cell.
func (m *Bool) Or(other *Bool) bool {
	grew := false
	for i, row := range other.rows {
		for j := range row {
			if !m.Get(i, j) {
				m.Set(i, j)
				grew = true
			}
		}
	}
	return grew
}

// Mul computes the boolean matrix product m·other: shape (m.Rows,
// other.Cols), requiring m.Cols == other.Rows.
func (m *Bool) Mul(other *Bool) *Bool {
	if m.Cols != other.Rows {
		panic(fmt.Sprintf("matrix: shape mismatch in Mul: (%d,%d)x(%d,%d)", m.Rows, m.Cols, other.Rows, other.Cols))
	}
	result := New(m.Rows, other.Cols)
	// row by row: for every i with m[i,k], and every k with other[k,j],
	// set result[i,j].
	for i, irow := range m.rows {
		reached := make(map[int]struct{})
		for k := range irow {
			orow, ok := other.rows[k]
			if !ok {
				continue
			}
			for j := range orow {
				reached[j] = struct{}{}
			}
		}
		if len(reached) > 0 {
			result.rows[i] = reached
		}
	}
	return result
}

// Kron computes the Kronecker product m ⊗ other, of shape
// (m.Rows*other.Rows, m.Cols*other.Cols), with row-major index
// composition (i1,i2) -> i1*other.Rows + i2 (and likewise for columns).
func (m *Bool) Kron(other *Bool) *Bool {
	result := New(m.Rows*other.Rows, m.Cols*other.Cols)
	for i1, row1 := range m.rows {
		for j1 := range row1 {
			for i2, row2 := range other.rows {
				for j2 := range row2 {
					result.Set(i1*other.Rows+i2, j1*other.Cols+j2)
				}
			}
		}
	}
	return result
}

// BlockDiag builds the block-diagonal matrix diag(m, other) of shape
// (m.Rows+other.Rows, m.Cols+other.Cols).
func BlockDiag(m, other *Bool) *Bool {
	result := New(m.Rows+other.Rows, m.Cols+other.Cols)
	for i, row := range m.rows {
		for j := range row {
			result.Set(i, j)
		}
	}
	for i, row := range other.rows {
		for j := range row {
			result.Set(m.Rows+i, m.Cols+j)
		}
	}
	return result
}

// Transpose returns the transpose of m.
func (m *Bool) Transpose() *Bool {
	result := New(m.Cols, m.Rows)
	for i, row := range m.rows {
		for j := range row {
			result.Set(j, i)
		}
	}
	return result
}

// Copy returns a deep copy of m.
func (m *Bool) Copy() *Bool {
	c := New(m.Rows, m.Cols)
	for i, row := range m.rows {
		nr := make(map[int]struct{}, len(row))
		for j := range row {
			nr[j] = struct{}{}
		}
		c.rows[i] = nr
	}
	return c
}

// TransitiveClosure computes R+ by repeated squaring (R ← R ∨ R·R)
// until the nonzero count stabilizes, per spec.md §4.6. m must be
// square. The receiver is mutated and returned.
func (m *Bool) TransitiveClosure() *Bool {
	if m.Rows != m.Cols {
		panic("matrix: TransitiveClosure requires a square matrix")
	}
	for {
		before := m.NNZ()
		squared := m.Mul(m)
		m.Or(squared)
		if m.NNZ() == before {
			return m
		}
	}
}

func sortInts(s []int) {
	// insertion sort: rows are small in practice (bounded by fan-out),
	// and avoiding a sort.Ints import keeps this file dependency-free.
	for i := 1; i < len(s); i++ {
		v := s[i]
		j := i - 1
		for j >= 0 && s[j] > v {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = v
	}
}

func (m *Bool) String() string {
	return fmt.Sprintf("Bool(%dx%d, nnz=%d)", m.Rows, m.Cols, m.NNZ())
}
