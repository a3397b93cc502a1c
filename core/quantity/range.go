// core/quantity/range.go
package quantity

// Bounds selects which ends of a Range are inclusive.
type Bounds uint8

const (
	Open      Bounds = iota // (lo, hi)
	LeftOpen                // (lo, hi]
	RightOpen               // [lo, hi)
	Closed                  // [lo, hi]
)

// Range is an interval on the real line.
type Range struct {
	Lo, Hi float64
	Bounds Bounds
}

func NewClosed(lo, hi float64) Range    { return Range{Lo: lo, Hi: hi, Bounds: Closed} }
func NewOpen(lo, hi float64) Range      { return Range{Lo: lo, Hi: hi, Bounds: Open} }
func NewLeftOpen(lo, hi float64) Range  { return Range{Lo: lo, Hi: hi, Bounds: LeftOpen} }
func NewRightOpen(lo, hi float64) Range { return Range{Lo: lo, Hi: hi, Bounds: RightOpen} }

// Contains reports whether v lies in the interval. NaN is never contained.
func (r Range) Contains(v float64) bool {
	var lo, hi bool
	switch r.Bounds {
	case Closed:
		lo, hi = v >= r.Lo, v <= r.Hi
	case Open:
		lo, hi = v > r.Lo, v < r.Hi
	case LeftOpen:
		lo, hi = v > r.Lo, v <= r.Hi
	case RightOpen:
		lo, hi = v >= r.Lo, v < r.Hi
	}
	return lo && hi
}

func (r Range) String() string {
	left, right := "[", "]"
	if r.Bounds == Open || r.Bounds == LeftOpen {
		left = "("
	}
	if r.Bounds == Open || r.Bounds == RightOpen {
		right = ")"
	}
	return left + FormatValue(r.Lo) + ", " + FormatValue(r.Hi) + right
}

// Validate returns a PreconditionError naming element when v is outside r.
func (r Range) Validate(element string, v float64) error {
	if r.Contains(v) {
		return nil
	}
	return NewPreconditionError(element, r.String(), v)
}
