package kernel

import "fmt"

// Transformation is a full transformation of {0, ..., degree-1}: a total
// function from the domain to itself, stored as its image table. Degree is
// capped at 16 to match the bit-packed kernels named in spec.md §6; larger
// degrees are rejected at construction rather than silently accepted, since
// a plain []uint8 image table starts losing the packed-kernel performance
// story this family exists to demonstrate well above that size anyway.
type Transformation struct {
	images []uint8
}

const maxTransformationDegree = 16

// NewTransformation validates images the way the original's throw_if_not_ptransf
// does: every entry must be a valid point of the same degree as the table
// itself (a *full* transformation has no UNDEFINED entries).
func NewTransformation(images []uint8) (*Transformation, error) {
	n := len(images)
	if n == 0 {
		return nil, fmt.Errorf("transformation: degree must be positive")
	}
	if n > maxTransformationDegree {
		return nil, fmt.Errorf("transformation: degree %d exceeds max %d", n, maxTransformationDegree)
	}
	for i, v := range images {
		if int(v) >= n {
			return nil, fmt.Errorf("transformation: image[%d] = %d out of range [0,%d)", i, v, n)
		}
	}
	cp := make([]uint8, n)
	copy(cp, images)
	return &Transformation{images: cp}, nil
}

// MustTransformation is NewTransformation but panics on error; useful for
// literal transformations in tests and presentation catalogues.
func MustTransformation(images ...uint8) *Transformation {
	t, err := NewTransformation(images)
	if err != nil {
		panic(err)
	}
	return t
}

// Identity returns the identity transformation of the given degree.
func Identity(degree int) *Transformation {
	images := make([]uint8, degree)
	for i := range images {
		images[i] = uint8(i)
	}
	return &Transformation{images: images}
}

// Compose implements Element: (self*other)(x) = other(self(x)), the
// left-to-right composition convention used throughout libsemigroups for
// transformations acting on the right.
func (t *Transformation) Compose(other Element) Element {
	o := other.(*Transformation)
	if len(t.images) != len(o.images) {
		panic("transformation: composed elements have different degree")
	}
	out := make([]uint8, len(t.images))
	for i, v := range t.images {
		out[i] = o.images[v]
	}
	return &Transformation{images: out}
}

// Equals implements Element.
func (t *Transformation) Equals(other Element) bool {
	o, ok := other.(*Transformation)
	if !ok || len(o.images) != len(t.images) {
		return false
	}
	for i, v := range t.images {
		if o.images[i] != v {
			return false
		}
	}
	return true
}

// Hash implements Element with an FNV-1a style hash over the image table.
func (t *Transformation) Hash() uint64 {
	var h uint64 = 14695981039346656037
	for _, v := range t.images {
		h ^= uint64(v)
		h *= 1099511628211
	}
	return h
}

// Degree implements Element.
func (t *Transformation) Degree() int { return len(t.images) }

// Complexity implements Element: transformation composition is O(degree).
func (t *Transformation) Complexity() int { return len(t.images) }

// One implements Monoid.
func (t *Transformation) One(degree int) Element { return Identity(degree) }

// Image returns the point t maps i to.
func (t *Transformation) Image(i int) uint8 { return t.images[i] }

// ImageSet returns the distinct points in the image of t, as an
// ActionPoint usable by Konieczny's right action (image sets are acted on
// from the right: (imageSet)·t = {t(x) : x in imageSet}).
func (t *Transformation) ImageSet() ActionPoint {
	seen := make(map[uint8]bool, len(t.images))
	var pts []uint8
	for _, v := range t.images {
		if !seen[v] {
			seen[v] = true
			pts = append(pts, v)
		}
	}
	return PointSet(pts)
}

// RightAction implements RightActor: the image set of t composed with p's
// underlying transformation is the image set of t restricted then mapped by
// p — concretely, (imageSet · p) = { p(x) : x in imageSet }, which for a
// PointSet point and a Transformation actor p means mapping every point in
// the set through p's image table.
func (t *Transformation) RightAction(p ActionPoint) ActionPoint {
	ps := p.(PointSet)
	seen := make(map[uint8]bool, len(ps))
	var out []uint8
	for _, x := range ps {
		v := t.images[x]
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return PointSet(out)
}

// RightPoint implements kernel.RightPointer: a transformation's canonical
// right-action point is its own image set.
func (t *Transformation) RightPoint() ActionPoint { return t.ImageSet() }

// LeftPoint implements kernel.LeftPointer: a transformation's canonical
// left-action point is its own kernel partition.
func (t *Transformation) LeftPoint() ActionPoint { return t.KernelPartition() }

// KernelPartition returns t's kernel partition (the partition of the domain
// induced by "i ~ j iff t(i) == t(j)"), used as the L-point for Konieczny's
// left action.
func (t *Transformation) KernelPartition() ActionPoint {
	class := make(map[uint8]int, len(t.images))
	labels := make([]int, len(t.images))
	next := 0
	for i, v := range t.images {
		c, ok := class[v]
		if !ok {
			c = next
			class[v] = c
			next++
		}
		labels[i] = c
	}
	return KernelPartitionPoint(labels)
}

// LeftAction implements LeftActor: composing p on the left of t refines t's
// kernel partition by p's kernel.
func (t *Transformation) LeftAction(p ActionPoint) ActionPoint {
	kp := p.(KernelPartitionPoint)
	// (p * t) has kernel: i ~ j under (p*t) iff p(t)... here we directly
	// recompute the kernel of the composite acting element using t's
	// images, matching Compose's convention (self*other)(x)=other(self(x)).
	composite := make([]uint8, len(t.images))
	for i, v := range t.images {
		composite[i] = uint8(kp[v])
	}
	class := make(map[uint8]int, len(composite))
	labels := make([]int, len(composite))
	next := 0
	for i, v := range composite {
		c, ok := class[v]
		if !ok {
			c = next
			class[v] = c
			next++
		}
		labels[i] = c
	}
	return KernelPartitionPoint(labels)
}

// PointSet is an ActionPoint representing an unordered set of points,
// normalised (sorted, deduplicated) by Normalize before use as a map key.
type PointSet []uint8

// Normalize returns a canonical (sorted) copy of p.
func (p PointSet) Normalize() PointSet {
	out := make(PointSet, len(p))
	copy(out, p)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// Equals implements ActionPoint.
func (p PointSet) Equals(other ActionPoint) bool {
	o, ok := other.(PointSet)
	if !ok {
		return false
	}
	a, b := p.Normalize(), o.Normalize()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Hash implements ActionPoint.
func (p PointSet) Hash() uint64 {
	n := p.Normalize()
	var h uint64 = 14695981039346656037
	for _, v := range n {
		h ^= uint64(v)
		h *= 1099511628211
	}
	return h
}

// KernelPartitionPoint is an ActionPoint representing a set partition of
// {0,...,degree-1} as a slice of class labels, canonicalised by first
// occurrence order so that two structurally identical partitions compare
// equal regardless of label numbering.
type KernelPartitionPoint []int

func (kp KernelPartitionPoint) canonical() string {
	relabel := make(map[int]int, len(kp))
	next := 0
	buf := make([]byte, 0, len(kp)*2)
	for _, c := range kp {
		r, ok := relabel[c]
		if !ok {
			r = next
			relabel[c] = r
			next++
		}
		buf = append(buf, byte(r), ',')
	}
	return string(buf)
}

// Equals implements ActionPoint.
func (kp KernelPartitionPoint) Equals(other ActionPoint) bool {
	o, ok := other.(KernelPartitionPoint)
	if !ok {
		return false
	}
	return kp.canonical() == o.canonical()
}

// Hash implements ActionPoint.
func (kp KernelPartitionPoint) Hash() uint64 {
	var h uint64 = 14695981039346656037
	for _, b := range []byte(kp.canonical()) {
		h ^= uint64(b)
		h *= 1099511628211
	}
	return h
}
