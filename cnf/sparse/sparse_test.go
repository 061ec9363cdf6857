package sparse

import "testing"

func TestMatrixEmpty(t *testing.T) {
	M := NewIntMatrix(4, 4)
	if v := M.Values(2, 3); v != nil {
		t.Errorf("expected empty matrix to return nil, got %v", v)
	}
	if M.ValueCount() != 0 {
		t.Errorf("expected value count of empty matrix to be 0, is %d", M.ValueCount())
	}
}

func TestMatrixAdd(t *testing.T) {
	M := NewIntMatrix(10, 10)
	M.Add(2, 3, 4711).Add(2, 3, 123)
	M.Add(0, 9, 1)
	M.Add(9, 0, 2)
	M.Add(2, 2, 3)
	v := M.Values(2, 3)
	if len(v) != 2 || v[0] != 4711 || v[1] != 123 {
		t.Errorf("expected M(2,3) to be [4711 123], is %v", v)
	}
	if M.ValueCount() != 4 {
		t.Errorf("expected 4 occupied positions, have %d", M.ValueCount())
	}
	for _, probe := range [][3]int{{0, 9, 1}, {9, 0, 2}, {2, 2, 3}} {
		v := M.Values(probe[0], probe[1])
		if len(v) != 1 || int(v[0]) != probe[2] {
			t.Errorf("expected M(%d,%d) to be [%d], is %v", probe[0], probe[1], probe[2], v)
		}
	}
	for k := 1; k < len(M.values); k++ {
		if !M.values[k-1].storedLeftOf(M.values[k].row, M.values[k].col) {
			t.Errorf("triplets out of order at %d: %v, %v", k, M.values[k-1], M.values[k])
		}
	}
}

func TestMatrixOutOfRange(t *testing.T) {
	M := NewIntMatrix(2, 2)
	defer func() {
		if recover() == nil {
			t.Errorf("expected Add outside of matrix to panic")
		}
	}()
	M.Add(2, 0, 1)
}
