package strata

import "fmt"

// --- Spans ------------------------------------------------------------

// Span is a half-open interval [start, end) of document offsets. Every node
// of an interval graph and of a parse tree covers a span. Spans are totally
// ordered by (start, end).
type Span [2]int64 // [x…y)

// From returns the start offset of a span.
func (s Span) From() int64 {
	return s[0]
}

// To returns the end offset of a span, i.e. the offset just behind the last
// one covered.
func (s Span) To() int64 {
	return s[1]
}

// Len returns the number of offsets covered by s.
func (s Span) Len() int64 {
	return s[1] - s[0]
}

// IsEmpty is true for spans covering no offset at all.
func (s Span) IsEmpty() bool {
	return s[1] <= s[0]
}

// Precedes is true if other may immediately follow s in a linear reading:
// other starts at or after the end of s.
func (s Span) Precedes(other Span) bool {
	return other[0] >= s[1]
}

// Gap returns the number of uncovered offsets between s and other,
// given s precedes other.
func (s Span) Gap(other Span) int64 {
	return other[0] - s[1]
}

// Extend returns the smallest span covering both s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

// Compare orders spans by (start, end). It returns a negative number if s
// comes before other, zero for equal spans, a positive number otherwise.
func (s Span) Compare(other Span) int {
	if s[0] != other[0] {
		if s[0] < other[0] {
			return -1
		}
		return 1
	}
	if s[1] != other[1] {
		if s[1] < other[1] {
			return -1
		}
		return 1
	}
	return 0
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// S is a shorthand constructor for spans.
func S(from, to int64) Span {
	return Span{from, to}
}
