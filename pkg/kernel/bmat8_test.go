package kernel

import "testing"

func TestBMat8GetPacking(t *testing.T) {
	m := NewBMat8FromRows([][]bool{
		{true, false, false},
		{false, true, false},
		{false, false, true},
	})
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := i == j
			if got := m.Get(i, j); got != want {
				t.Errorf("Get(%d,%d) = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestBMat8IdentityIsComposeUnit(t *testing.T) {
	m := NewBMat8FromRows([][]bool{
		{true, true},
		{false, true},
	})
	id := m.One(0).(BMat8)
	if !m.Compose(id).Equals(m) {
		t.Error("m*id != m")
	}
	if !id.Compose(m).Equals(m) {
		t.Error("id*m != m")
	}
}

func TestBMat8TransposeInvolution(t *testing.T) {
	m := NewBMat8FromRows([][]bool{
		{true, false, true},
		{false, true, false},
	})
	if m.Transpose().Transpose() != m {
		t.Error("transpose is not an involution")
	}
}

func TestBMat8ComposeAssociative(t *testing.T) {
	a := NewBMat8FromRows([][]bool{{true, false}, {true, true}})
	b := NewBMat8FromRows([][]bool{{false, true}, {true, false}})
	c := NewBMat8FromRows([][]bool{{true, true}, {false, true}})
	lhs := a.Compose(b).(BMat8).Compose(c)
	rhs := a.Compose(b.Compose(c))
	if lhs != rhs {
		t.Errorf("(a*b)*c = %v, a*(b*c) = %v", lhs, rhs)
	}
}
