package moment

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Span is a plain range-like moment.
type Span struct {
	Start float64
	Stop  float64
}

func New(begin, end float64) Span {
	return Span{Start: begin, Stop: end}
}

// From copies the begin and end of any moment into a Span.
func From(m Moment) Span {
	return Span{Start: m.Begin(), Stop: m.End()}
}

func (r Span) Begin() float64 { return r.Start }
func (r Span) End() float64   { return r.Stop }

func ParseSpan(s string) (Span, error) {
	var r Span
	from, to, ok := strings.Cut(s, "..")
	if !ok {
		return r, fmt.Errorf("no separator in span %q", s)
	}
	begin, err := strconv.ParseFloat(strings.TrimSpace(from), 64)
	if err != nil {
		return r, fmt.Errorf("invalid begin %q in span %q", from, s)
	}
	end, err := strconv.ParseFloat(strings.TrimSpace(to), 64)
	if err != nil {
		return r, fmt.Errorf("invalid end %q in span %q", to, s)
	}
	return Span{Start: begin, Stop: end}, nil
}

func (r Span) String() string {
	return fmt.Sprintf("%s..%s",
		strconv.FormatFloat(r.Start, 'g', -1, 64),
		strconv.FormatFloat(r.Stop, 'g', -1, 64))
}

// IsValid returns true if both ends are finite and the span does not end
// before it begins.
func (r Span) IsValid() bool {
	return finite(r.Start) && finite(r.Stop) && r.Start <= r.Stop
}

func (r Span) IsZero() bool {
	return r == Span{}
}

// Less orders spans by begin, then by end.
func (r Span) Less(other Moment) bool {
	if r.Start != other.Begin() {
		return r.Start < other.Begin()
	}
	return r.Stop < other.End()
}

// EntirelyBefore returns whether r ends strictly before other begins.
func (r Span) EntirelyBefore(other Moment) bool {
	return r.Stop < other.Begin()
}

// CoveredBy returns whether r is entirely contained within other.
func (r Span) CoveredBy(other Moment) bool {
	return other.Begin() <= r.Start && r.Stop <= other.End()
}

// InMiddleOf returns whether r is inside other, but not touching the
// edges of other.
func (r Span) InMiddleOf(other Moment) bool {
	return other.Begin() < r.Start && r.Stop < other.End()
}

// OverlapsStartOf returns whether r overlaps the start of other, but not
// all of other.
func (r Span) OverlapsStartOf(other Moment) bool {
	return r.Start <= other.Begin() && r.Stop < other.End()
}

// OverlapsEndOf returns whether r overlaps the end of other, but not all
// of other.
func (r Span) OverlapsEndOf(other Moment) bool {
	return other.Begin() < r.Start && other.End() <= r.Stop
}

// Numeric converts v to a float64 if it holds a finite number of any of the
// Go numeric kinds or a time.Duration.
func Numeric(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case time.Duration:
		f = float64(x)
	case int:
		f = float64(x)
	case int8:
		f = float64(x)
	case int16:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint8:
		f = float64(x)
	case uint16:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case float32:
		f = float64(x)
	case float64:
		f = x
	case Instant:
		f = float64(x)
	default:
		return 0, false
	}
	return f, finite(f)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// MergeSpans returns the minimum and sorted set of spans that cover rr.
// Overlapping and touching spans are joined. The second value is false if
// any span is invalid.
func MergeSpans(rr []Span) (out []Span, valid bool) {
	// Always return a copy of rr, to avoid aliasing slice memory in
	// the caller.
	switch len(rr) {
	case 0:
		return nil, true
	case 1:
		if !rr[0].IsValid() {
			return nil, false
		}
		out = append(out, rr[0])
		return out, true
	}

	sorted := make([]Span, len(rr))
	copy(sorted, rr)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	out = make([]Span, 1, len(sorted))
	out[0] = sorted[0]
	for _, r := range sorted {
		prev := &out[len(out)-1]
		switch {
		case !r.IsValid():
			return nil, false
		case prev.Stop < r.Start:
			// No overlap and not touching, no merging possible.
			//
			//   prev       r
			// b------e  b-----e
			out = append(out, r)
		case prev.Stop < r.Stop:
			// Partial overlap or touching, extend prev.
			//
			//   prev
			// b------e
			//     b-----e
			//        r
			prev.Stop = r.Stop
		default:
			// r entirely contained in prev, nothing to do.
		}
	}
	return out, true
}
