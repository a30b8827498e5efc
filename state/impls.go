package state

// Unit is the no-payload state for callers that want pure topology
// manipulation. All Units are identical.
type Unit struct{}

// UnitOps implements Ops[Unit]: subdivision yields empty units, merging
// yields an empty unit.
type UnitOps struct{}

// Subdivide returns `parts` empty units.
func (UnitOps) Subdivide(_ Unit, parts int) []Unit {
	return make([]Unit, parts)
}

// Merge returns the empty unit.
func (UnitOps) Merge(_ []Unit) Unit {
	return Unit{}
}

// Identity is the default Simulator: every leaf keeps its current state.
type Identity[S any] struct{}

// Simulate returns current unchanged.
func (Identity[S]) Simulate(current S, _ []S) S {
	return current
}

// Integer is the constraint satisfied by the built-in signed and unsigned
// integer kinds.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the constraint satisfied by the built-in float kinds.
type Float interface {
	~float32 | ~float64
}

// SumOps treats an integer state as an accumulating density: subdivision
// splits the value evenly across children and spreads the remainder over
// the leading children, so Merge(Subdivide(s, k)) == s exactly for every
// k ≥ 1. Merge sums. SumOps also implements Seeder: the super-state of a
// uniform leaf value is leaf·fanOut^levels.
type SumOps[T Integer] struct{}

// Subdivide splits s into `parts` near-equal shares summing to s.
// The leading children absorb the remainder, one unit each, so the shares
// always sum back to s (negative values included).
func (SumOps[T]) Subdivide(s T, parts int) []T {
	p := T(parts)
	quot, rem := s/p, s%p
	out := make([]T, parts)
	for i := range out {
		out[i] = quot
		switch {
		case rem > 0 && T(i) < rem:
			out[i]++
		case rem < 0 && T(i) < -rem:
			out[i]--
		}
	}

	return out
}

// Merge sums the parts.
func (SumOps[T]) Merge(parts []T) T {
	var total T
	for _, p := range parts {
		total += p
	}

	return total
}

// SuperState returns leaf·fanOut^levels, the root value whose uniform
// subdivision `levels` times reproduces leaf at every leaf.
func (SumOps[T]) SuperState(leaf T, fanOut, levels int) T {
	total := leaf
	for i := 0; i < levels; i++ {
		total *= T(fanOut)
	}

	return total
}

// FloatSumOps is SumOps for float states: subdivision divides evenly,
// merging sums. Conservation holds up to rounding.
type FloatSumOps[T Float] struct{}

// Subdivide returns `parts` equal shares of s.
func (FloatSumOps[T]) Subdivide(s T, parts int) []T {
	share := s / T(parts)
	out := make([]T, parts)
	for i := range out {
		out[i] = share
	}

	return out
}

// Merge sums the parts.
func (FloatSumOps[T]) Merge(parts []T) T {
	var total T
	for _, p := range parts {
		total += p
	}

	return total
}

// SuperState returns leaf·fanOut^levels.
func (FloatSumOps[T]) SuperState(leaf T, fanOut, levels int) T {
	total := leaf
	for i := 0; i < levels; i++ {
		total *= T(fanOut)
	}

	return total
}

// AnyOps treats a bool state as an occupancy flag: subdivision copies the
// flag to every child, merging ORs the children together.
type AnyOps struct{}

// Subdivide returns `parts` copies of s.
func (AnyOps) Subdivide(s bool, parts int) []bool {
	out := make([]bool, parts)
	for i := range out {
		out[i] = s
	}

	return out
}

// Merge reports whether any part is set.
func (AnyOps) Merge(parts []bool) bool {
	for _, p := range parts {
		if p {
			return true
		}
	}

	return false
}
