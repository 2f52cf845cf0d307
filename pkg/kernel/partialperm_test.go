package kernel

import "testing"

func TestNewPartialPermRejectsNonInjective(t *testing.T) {
	if _, err := NewPartialPerm([]uint8{0, 0}); err == nil {
		t.Fatal("expected error for non-injective image table")
	}
}

func TestPartialPermInverse(t *testing.T) {
	p, err := NewPartialPerm([]uint8{1, Undefined, 0})
	if err != nil {
		t.Fatal(err)
	}
	inv := p.Inverse().(*PartialPerm)
	composed := p.Compose(inv)
	one := p.One(3)
	// p maps 0->1, 2->0; inverse maps 1->0, 0->2. p*inv restricted to
	// {0,2} should be identity there, and Undefined at 1 (p undefined
	// nowhere in domain {0,2}, but point 1 is outside p's domain).
	for _, x := range []int{0, 2} {
		if composed.(*PartialPerm).images[x] != one.(*PartialPerm).images[x] {
			t.Errorf("p*inv at %d = %d, want %d", x, composed.(*PartialPerm).images[x], one.(*PartialPerm).images[x])
		}
	}
	if composed.(*PartialPerm).images[1] != Undefined {
		t.Errorf("p*inv at 1 = %d, want Undefined", composed.(*PartialPerm).images[1])
	}
}
