package matrix

import "testing"

func TestSetGetNNZ(t *testing.T) {
	m := New(3, 3)
	m.Set(0, 1)
	m.Set(1, 2)
	if !m.Get(0, 1) || !m.Get(1, 2) {
		t.Fatalf("expected set cells to read back true")
	}
	if m.Get(2, 2) {
		t.Fatalf("expected unset cell to read back false")
	}
	if m.NNZ() != 2 {
		t.Fatalf("expected NNZ 2, got %d", m.NNZ())
	}
}

func TestOrGrows(t *testing.T) {
	a := New(2, 2)
	a.Set(0, 0)
	b := New(2, 2)
	b.Set(0, 0)
	b.Set(1, 1)
	if !a.Or(b) {
		t.Fatalf("expected Or to report growth")
	}
	if a.Or(b) {
		t.Fatalf("expected a second Or with the same operand to report no growth")
	}
	if a.NNZ() != 2 {
		t.Fatalf("expected 2 nonzeros after union, got %d", a.NNZ())
	}
}

func TestMul(t *testing.T) {
	// a: 0->1, b: 1->2 => a.Mul(b): 0->2
	a := New(3, 3)
	a.Set(0, 1)
	b := New(3, 3)
	b.Set(1, 2)
	c := a.Mul(b)
	if !c.Get(0, 2) {
		t.Fatalf("expected product to connect 0->2")
	}
	if c.NNZ() != 1 {
		t.Fatalf("expected exactly one nonzero in product, got %d", c.NNZ())
	}
}

func TestTransitiveClosure(t *testing.T) {
	// chain 0->1->2->3
	m := New(4, 4)
	m.Set(0, 1)
	m.Set(1, 2)
	m.Set(2, 3)
	m.TransitiveClosure()
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if !m.Get(i, j) {
				t.Fatalf("expected closure to connect %d->%d", i, j)
			}
		}
	}
	if m.Get(3, 0) {
		t.Fatalf("expected no back-edge to be introduced")
	}
}

func TestKron(t *testing.T) {
	a := New(2, 2)
	a.Set(0, 1)
	b := New(2, 2)
	b.Set(1, 0)
	k := a.Kron(b)
	if k.Rows != 4 || k.Cols != 4 {
		t.Fatalf("expected 4x4 Kronecker product, got %dx%d", k.Rows, k.Cols)
	}
	// (0,1)x(1,0) -> row 0*2+1=1, col 1*2+0=2
	if !k.Get(1, 2) {
		t.Fatalf("expected Kronecker product cell (1,2) to be set")
	}
}

func TestBlockDiag(t *testing.T) {
	a := New(2, 2)
	a.Set(0, 1)
	b := New(2, 2)
	b.Set(1, 0)
	d := BlockDiag(a, b)
	if d.Rows != 4 || d.Cols != 4 {
		t.Fatalf("expected 4x4 block-diagonal, got %dx%d", d.Rows, d.Cols)
	}
	if !d.Get(0, 1) || !d.Get(3, 2) {
		t.Fatalf("expected both blocks to carry over into the diagonal")
	}
	if d.Get(0, 2) || d.Get(1, 3) {
		t.Fatalf("expected off-diagonal blocks to stay empty")
	}
}
