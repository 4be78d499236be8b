package timed

import (
	"fmt"
	"slices"
)

// polynomial is an offset transform of degree 2 or lower. It is installed as
// a whole and never modified after.
type polynomial struct {
	coefficients []float64
	fn           func(t float64) float64
}

func newPolynomial(c []float64) (*polynomial, error) {
	p := &polynomial{coefficients: slices.Clone(c)}
	switch len(c) {
	case 0:
		return nil, nil
	case 1:
		c0 := c[0]
		if c0 == 0 {
			return nil, nil
		}
		p.fn = func(t float64) float64 { return c0 + t }
	case 2:
		c0, c1 := c[0], c[1]
		p.fn = func(t float64) float64 { return c0 + c1*t }
	case 3:
		c0, c1, c2 := c[0], c[1], c[2]
		p.fn = func(t float64) float64 { return c0 + c1*t + c2*t*t }
	default:
		return nil, fmt.Errorf("%w: got %d coefficients", ErrInvalidOffset, len(c))
	}
	return p, nil
}

// OffsetBy offsets the entire sequence by a polynomial of up to degree 2,
// given by its coefficients starting with the constant term. Items are not
// changed; their begin and end are recalculated on every read.
//
//	s.OffsetBy(10, 1.1, 0.01)
//	s.Offset(42) // 73.84
//
// No coefficients, or a single 0, restores the identity. On error the
// previous offset is kept.
func (s *Sequence) OffsetBy(c ...float64) error {
	p, err := newPolynomial(c)
	if err != nil {
		return err
	}
	s.offset = p
	return nil
}

// Offset applies the current offset of the sequence to t.
func (s *Sequence) Offset(t float64) float64 {
	if p := s.offset; p != nil {
		return p.fn(t)
	}
	return t
}

// Coefficients returns the coefficients of the installed offset, or nil for
// the identity.
func (s *Sequence) Coefficients() []float64 {
	if s.offset == nil {
		return nil
	}
	return slices.Clone(s.offset.coefficients)
}
