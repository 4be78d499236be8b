package timed

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidType   = errors.New("timespan begin and end must be numeric")
	ErrInvalidRange  = errors.New("timespan ends before it begins")
	ErrStructure     = errors.New("items must be sequential and not overlap")
	ErrInvalidOffset = errors.New("only polynomials of order 2 or lower are supported")
	ErrNotMember     = errors.New("item is not part of the sequence")
)

func IsInvalidTypeErr(err error) bool   { return errors.Is(err, ErrInvalidType) }
func IsInvalidRangeErr(err error) bool  { return errors.Is(err, ErrInvalidRange) }
func IsStructureErr(err error) bool     { return errors.Is(err, ErrStructure) }
func IsInvalidOffsetErr(err error) bool { return errors.Is(err, ErrInvalidOffset) }

func structureErr(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrStructure, fmt.Sprintf(format, a...))
}
