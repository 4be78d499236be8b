// Package moment defines the comparison contract shared by everything that
// begins and ends at a point in time.
package moment

import (
	"fmt"
	"reflect"
)

// Moment is anything with a numeric begin and end, where Begin() <= End().
type Moment interface {
	Begin() float64
	End() float64
}

// Instant is a moment with no duration. It is used wherever a bare point in
// time is compared with a moment.
type Instant float64

func (i Instant) Begin() float64 { return float64(i) }
func (i Instant) End() float64   { return float64(i) }

// Duration returns the time between the begin and the end of m.
func Duration(m Moment) float64 {
	return m.End() - m.Begin()
}

// Equal returns true if other is a Moment that begins and ends at exactly
// the same time as m. Values lacking begin and end are never equal, and
// neither are nil pointers.
func Equal(m Moment, other any) bool {
	o, ok := other.(Moment)
	if !ok || o == nil {
		return false
	}
	if v := reflect.ValueOf(o); v.Kind() == reflect.Pointer && v.IsNil() {
		return false
	}
	return m.Begin() == o.Begin() && m.End() == o.End()
}

// Before returns true if m ends before, or exactly when, other begins.
func Before(m, other Moment) bool {
	return m.End() <= other.Begin()
}

// After returns true if m begins after, or exactly when, other ends.
func After(m, other Moment) bool {
	return m.Begin() >= other.End()
}

// During returns true if the two moments overlap. Both ends are closed, so
// moments that only touch overlap.
func During(m, other Moment) bool {
	mb, me := m.Begin(), m.End()
	ob, oe := other.Begin(), other.End()

	// either one begins within the span of the other
	return ob <= mb && mb <= oe ||
		mb <= ob && ob <= me
}

// Intersect returns the span common to both moments. The second value is
// false when they do not intersect.
func Intersect(m, other Moment) (Span, bool) {
	b := max(m.Begin(), other.Begin())
	e := min(m.End(), other.End())
	if b > e {
		return Span{}, false
	}
	return Span{Start: b, Stop: e}, true
}

// Format renders m as "name   12.20 -> 15.50".
func Format(name string, m Moment) string {
	return fmt.Sprintf("%s %7.2f -> %.2f", name, m.Begin(), m.End())
}
