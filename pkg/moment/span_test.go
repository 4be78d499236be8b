package moment

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpan(t *testing.T) {
	cases := map[string]struct {
		input       string
		expected    Span
		expectedErr bool
	}{
		"Integers":    {input: "1..5", expected: New(1, 5)},
		"Floats":      {input: "1.5..2.25", expected: New(1.5, 2.25)},
		"Negative":    {input: "-3..-1", expected: New(-3, -1)},
		"Spaces":      {input: " 1 .. 2 ", expected: New(1, 2)},
		"NoSeparator": {input: "1-5", expectedErr: true},
		"BadBegin":    {input: "a..5", expectedErr: true},
		"BadEnd":      {input: "1..z", expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseSpan(tc.input)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestSpanString(t *testing.T) {
	assert.Equal(t, "1.5..3", New(1.5, 3).String())
	r, err := ParseSpan(New(-2, 7.25).String())
	require.NoError(t, err)
	assert.Equal(t, New(-2, 7.25), r)
}

func TestSpanValidity(t *testing.T) {
	assert.True(t, New(1, 1).IsValid())
	assert.False(t, New(2, 1).IsValid())
	assert.False(t, New(math.NaN(), 1).IsValid())
	assert.False(t, New(0, math.Inf(1)).IsValid())
	assert.True(t, Span{}.IsZero())
	assert.False(t, New(0, 1).IsZero())
}

func TestSpanRelations(t *testing.T) {
	outer := New(0, 10)

	assert.True(t, New(2, 8).InMiddleOf(outer))
	assert.False(t, New(0, 8).InMiddleOf(outer))

	assert.True(t, New(0, 10).CoveredBy(outer))
	assert.False(t, New(0, 11).CoveredBy(outer))

	assert.True(t, New(-1, 5).OverlapsStartOf(outer))
	assert.False(t, New(-1, 10).OverlapsStartOf(outer))

	assert.True(t, New(5, 12).OverlapsEndOf(outer))
	assert.False(t, New(0, 12).OverlapsEndOf(outer))

	assert.True(t, New(-5, -1).EntirelyBefore(outer))
	assert.False(t, New(-5, 0).EntirelyBefore(outer))

	assert.True(t, New(0, 5).Less(New(1, 2)))
	assert.True(t, New(0, 5).Less(New(0, 6)))
	assert.False(t, New(0, 5).Less(New(0, 5)))
}

func TestNumeric(t *testing.T) {
	cases := map[string]struct {
		input    any
		expected float64
		ok       bool
	}{
		"Int":      {input: 3, expected: 3, ok: true},
		"Int8":     {input: int8(-3), expected: -3, ok: true},
		"Uint64":   {input: uint64(9), expected: 9, ok: true},
		"Float32":  {input: float32(1.5), expected: 1.5, ok: true},
		"Float64":  {input: 2.25, expected: 2.25, ok: true},
		"Duration": {input: time.Second, expected: 1e9, ok: true},
		"Instant":  {input: Instant(4), expected: 4, ok: true},
		"String":   {input: "1", ok: false},
		"Nil":      {input: nil, ok: false},
		"NaN":      {input: math.NaN(), ok: false},
		"Inf":      {input: math.Inf(-1), ok: false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, ok := Numeric(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}

func TestMergeSpans(t *testing.T) {
	cases := map[string]struct {
		input    []Span
		expected []Span
		valid    bool
	}{
		"Empty": {
			input: nil, expected: nil, valid: true,
		},
		"Single": {
			input: []Span{New(1, 2)}, expected: []Span{New(1, 2)}, valid: true,
		},
		"Disjoint": {
			input:    []Span{New(5, 6), New(1, 2)},
			expected: []Span{New(1, 2), New(5, 6)},
			valid:    true,
		},
		"Touching": {
			input:    []Span{New(2, 4), New(0, 2)},
			expected: []Span{New(0, 4)},
			valid:    true,
		},
		"Overlapping": {
			input:    []Span{New(0, 5), New(3, 8), New(10, 12), New(11, 11.5)},
			expected: []Span{New(0, 8), New(10, 12)},
			valid:    true,
		},
		"Invalid": {
			input: []Span{New(0, 5), New(9, 3)}, valid: false,
		},
		"SingleInvalid": {
			input: []Span{New(9, 3)}, valid: false,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, valid := MergeSpans(tc.input)
			assert.Equal(t, tc.valid, valid)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("-want, +got:\n%s", diff)
			}
		})
	}
}
