package kernel

import "testing"

func TestNewTransformationValidates(t *testing.T) {
	if _, err := NewTransformation([]uint8{0, 5}); err == nil {
		t.Fatal("expected error for out-of-range image")
	}
	if _, err := NewTransformation(nil); err == nil {
		t.Fatal("expected error for empty image table")
	}
}

func TestTransformationComposeIdentity(t *testing.T) {
	id := Identity(3)
	a := MustTransformation(1, 2, 0)
	got := id.Compose(a)
	if !got.Equals(a) {
		t.Errorf("id*a = %v, want %v", got, a)
	}
	got2 := a.Compose(id)
	if !got2.Equals(a) {
		t.Errorf("a*id = %v, want %v", got2, a)
	}
}

func TestTransformationComposeConvention(t *testing.T) {
	// a: 0->1,1->2,2->0 ; b: 0->0,1->0,2->0 (constant)
	a := MustTransformation(1, 2, 0)
	b := MustTransformation(0, 0, 0)
	// (a*b)(x) = b(a(x)) = 0 for all x.
	got := a.Compose(b)
	want := MustTransformation(0, 0, 0)
	if !got.Equals(want) {
		t.Errorf("a*b = %v, want %v", got, want)
	}
}

func TestTransformationHashConsistentWithEquals(t *testing.T) {
	a := MustTransformation(1, 2, 0)
	b := MustTransformation(1, 2, 0)
	if !a.Equals(b) {
		t.Fatal("expected equal transformations")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal transformations must hash equal")
	}
}

func TestKernelPartitionDistinguishesTransformations(t *testing.T) {
	a := MustTransformation(0, 0, 1) // kernel: {0,1}|{2}
	b := MustTransformation(0, 1, 1) // kernel: {0}|{1,2}
	if a.KernelPartition().Equals(b.KernelPartition()) {
		t.Error("expected distinct kernel partitions")
	}
	c := MustTransformation(2, 2, 0) // same kernel shape as a: {0,1}|{2}
	if !a.KernelPartition().Equals(c.KernelPartition()) {
		t.Error("expected structurally identical kernel partitions to compare equal")
	}
}
