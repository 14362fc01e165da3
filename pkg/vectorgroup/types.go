package vectorgroup

// WindingType represents a three-phase transformer winding connection
type WindingType int

const (
	// Wye is a star connection without an accessible neutral
	Wye WindingType = iota
	// WyeN is a star connection with a grounded neutral
	WyeN
	// Delta is a delta connection
	Delta
	// Zigzag is an interconnected-star connection without an accessible neutral
	Zigzag
	// ZigzagN is an interconnected-star connection with a grounded neutral
	ZigzagN
)

// String returns the string representation of the winding type
func (w WindingType) String() string {
	switch w {
	case Wye:
		return "wye"
	case WyeN:
		return "wye_n"
	case Delta:
		return "delta"
	case Zigzag:
		return "zigzag"
	case ZigzagN:
		return "zigzag_n"
	default:
		return "unknown"
	}
}

// Grounded reports whether the winding has an accessible grounded neutral
func (w WindingType) Grounded() bool {
	return w == WyeN || w == ZigzagN
}

// Clock number bounds: phase displacement is expressed in multiples of
// 30 degrees on a clock face, so only 0 through 12 are meaningful.
const (
	MinClock = 0
	MaxClock = 12
)
