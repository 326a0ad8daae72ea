package coords

// Iso is a two-way conversion between equivalent representations. To and
// From are inverses of each other up to floating point rounding.
type Iso[A, B any] struct {
	To   func(A) B
	From func(B) A
}

// Inverse swaps the directions of i.
func (i Iso[A, B]) Inverse() Iso[B, A] {
	return Iso[B, A]{To: i.From, From: i.To}
}

// Compose chains ab and bc into a single conversion from A to C.
func Compose[A, B, C any](ab Iso[A, B], bc Iso[B, C]) Iso[A, C] {
	return Iso[A, C]{
		To:   func(a A) C { return bc.To(ab.To(a)) },
		From: func(c C) A { return ab.From(bc.From(c)) },
	}
}

// Over converts a, applies f in the target representation and converts back.
func Over[A, B any](i Iso[A, B], a A, f func(B) B) A {
	return i.From(f(i.To(a)))
}

// Lens focuses on one part A of a whole S.
type Lens[S, A any] struct {
	Get func(S) A
	Set func(S, A) S
}

// Over replaces the focused part of s with f applied to it.
func (l Lens[S, A]) Over(s S, f func(A) A) S {
	return l.Set(s, f(l.Get(s)))
}

// Through focuses l on values that convert to l's subject via i.
// Setting is a read-modify-write in the converted representation.
func Through[S, B, A any](i Iso[S, B], l Lens[B, A]) Lens[S, A] {
	return Lens[S, A]{
		Get: func(s S) A { return l.Get(i.To(s)) },
		Set: func(s S, a A) S { return i.From(l.Set(i.To(s), a)) },
	}
}

// WithField builds a lens on one field of the converted representation.
func WithField[S, B, A any](i Iso[S, B], get func(B) A, set func(B, A) B) Lens[S, A] {
	return Through(i, Lens[B, A]{Get: get, Set: set})
}
