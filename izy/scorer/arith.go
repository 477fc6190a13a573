package scorer

import (
	"errors"
	"math"

	"github.com/juliangruber/go-intersect"
)

// Op combines two scores.
type Op[S Number] func(a, b S) S

func Add[S Number](a, b S) S { return a + b }
func Sub[S Number](a, b S) S { return a - b }
func Mul[S Number](a, b S) S { return a * b }

// ErrDivisionByZero is the panic value of Div and Mod when an integer score
// is divided by zero. Float scores follow IEEE 754 instead.
var ErrDivisionByZero = errors.New("scorer: integer division by zero")

// Div floors for integer scores, so that Div(a, b)*b + Mod(a, b) == a.
// It panics with ErrDivisionByZero on an integer zero divisor.
func Div[S Number](a, b S) S {
	if !integral[S]() {
		return a / b
	}

	if b == 0 {
		panic(ErrDivisionByZero)
	}

	q := a / b
	if r := a - q*b; r != 0 && (r < 0) != (b < 0) {
		q--
	}

	return q
}

// Mod returns the floored remainder, which takes the sign of b. It panics
// with ErrDivisionByZero on an integer zero divisor.
func Mod[S Number](a, b S) S {
	var r S
	if integral[S]() {
		if b == 0 {
			panic(ErrDivisionByZero)
		}

		r = a - a/b*b
	} else {
		r = S(math.Mod(float64(a), float64(b)))
	}

	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}

	return r
}

func Pow[S Number](a, b S) S { return S(math.Pow(float64(a), float64(b))) }

func integral[S Number]() bool {
	var one, two S = 1, 2
	return one/two == 0
}

// Apply combines s with other item by item. Items missing from other keep
// their score; items only in other are ignored.
func (s *Scorer[K, S]) Apply(other *Scorer[K, S], op Op[S]) *Scorer[K, S] {
	out := s.Clone()
	for k, v := range s.All() {
		if o, ok := other.Lookup(k); ok {
			out.Set(k, op(v, o))
		}
	}

	return out
}

func (s *Scorer[K, S]) ApplyScalar(x S, op Op[S]) *Scorer[K, S] {
	out := s.empty()
	for k, v := range s.All() {
		out.Set(k, op(v, x))
	}

	return out
}

// Max is the union of s and other, keeping the larger score of common items.
func (s *Scorer[K, S]) Max(other *Scorer[K, S]) *Scorer[K, S] {
	out := s.Clone()
	for k, v := range other.All() {
		if mine, ok := s.Lookup(k); ok {
			out.Set(k, max(mine, v))
		} else {
			out.Set(k, v)
		}
	}

	return out
}

func (s *Scorer[K, S]) MaxScalar(x S) *Scorer[K, S] {
	return s.ApplyScalar(x, func(a, b S) S { return max(a, b) })
}

// Min is the intersection of s and other with the smaller score of each item.
// Order follows s.
func (s *Scorer[K, S]) Min(other *Scorer[K, S]) *Scorer[K, S] {
	common := make(map[any]struct{})
	for _, k := range intersect.Hash(s.keys, other.keys) {
		common[any(k)] = struct{}{}
	}

	out := s.empty()
	for k, v := range s.All() {
		if _, ok := common[any(k)]; ok {
			out.Set(k, min(v, other.Get(k)))
		}
	}

	return out
}

// Threshold drops the items scoring below x.
func (s *Scorer[K, S]) Threshold(x S) *Scorer[K, S] {
	return s.filter(func(v S) bool { return v >= x })
}

// Positive keeps the items scoring above zero.
func (s *Scorer[K, S]) Positive() *Scorer[K, S] {
	return s.filter(func(v S) bool { return v > 0 })
}

func (s *Scorer[K, S]) Neg() *Scorer[K, S] {
	return s.ApplyScalar(0, func(a, _ S) S { return -a })
}

func (s *Scorer[K, S]) Abs() *Scorer[K, S] {
	return s.ApplyScalar(0, func(a, _ S) S {
		if a < 0 {
			return -a
		}
		return a
	})
}

func (s *Scorer[K, S]) filter(keep func(S) bool) *Scorer[K, S] {
	out := s.empty()
	for k, v := range s.All() {
		if keep(v) {
			out.Set(k, v)
		}
	}

	return out
}
