package kernel

import "fmt"

// Undefined is the sentinel point value used by PartialPerm to mark a point
// outside the domain of definition, matching the UNDEFINED constant named
// throughout spec.md.
const Undefined = 255

// PartialPerm is an injective partial function on {0,...,degree-1}, stored
// as an image table with Undefined marking points outside the domain.
// Degree is capped at 16, matching the kernel family named in spec.md §6.
type PartialPerm struct {
	images []uint8
}

// NewPartialPerm validates that images is injective on its defined points
// (each non-Undefined value occurs at most once) and every defined value is
// in range, mirroring the original's throw_if_not_ptransf /
// throw_if_not_a_perm discipline for partial permutations.
func NewPartialPerm(images []uint8) (*PartialPerm, error) {
	n := len(images)
	if n == 0 || n > maxTransformationDegree {
		return nil, fmt.Errorf("partialperm: degree %d out of range (1..%d)", n, maxTransformationDegree)
	}
	seen := make(map[uint8]bool, n)
	for i, v := range images {
		if v == Undefined {
			continue
		}
		if int(v) >= n {
			return nil, fmt.Errorf("partialperm: image[%d] = %d out of range [0,%d)", i, v, n)
		}
		if seen[v] {
			return nil, fmt.Errorf("partialperm: image value %d repeated, not injective", v)
		}
		seen[v] = true
	}
	cp := make([]uint8, n)
	copy(cp, images)
	return &PartialPerm{images: cp}, nil
}

// Compose implements Element under the same left-to-right convention as
// Transformation: (self*other)(x) = other(self(x)), Undefined propagating.
func (p *PartialPerm) Compose(other Element) Element {
	o := other.(*PartialPerm)
	if len(p.images) != len(o.images) {
		panic("partialperm: composed elements have different degree")
	}
	out := make([]uint8, len(p.images))
	for i, v := range p.images {
		if v == Undefined {
			out[i] = Undefined
			continue
		}
		out[i] = o.images[v]
	}
	return &PartialPerm{images: out}
}

// Equals implements Element.
func (p *PartialPerm) Equals(other Element) bool {
	o, ok := other.(*PartialPerm)
	if !ok || len(o.images) != len(p.images) {
		return false
	}
	for i, v := range p.images {
		if o.images[i] != v {
			return false
		}
	}
	return true
}

// Hash implements Element.
func (p *PartialPerm) Hash() uint64 {
	var h uint64 = 14695981039346656037
	for _, v := range p.images {
		h ^= uint64(v)
		h *= 1099511628211
	}
	return h
}

// Degree implements Element.
func (p *PartialPerm) Degree() int { return len(p.images) }

// Complexity implements Element.
func (p *PartialPerm) Complexity() int { return len(p.images) }

// One implements Monoid: the identity partial permutation of the given
// degree (every point defined, mapped to itself).
func (p *PartialPerm) One(degree int) Element {
	images := make([]uint8, degree)
	for i := range images {
		images[i] = uint8(i)
	}
	return &PartialPerm{images: images}
}

// Inverse implements Invertible: the unique partial permutation q with
// q(p(x)) = x wherever p is defined, and Undefined elsewhere.
func (p *PartialPerm) Inverse() Element {
	out := make([]uint8, len(p.images))
	for i := range out {
		out[i] = Undefined
	}
	for i, v := range p.images {
		if v != Undefined {
			out[v] = uint8(i)
		}
	}
	return &PartialPerm{images: out}
}
