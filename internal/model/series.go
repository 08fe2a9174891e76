package model

// Point is a single observation of the price series.
type Point struct {
	Time  int
	Price float64
}

// Series holds the (Time, Price) dataset driving the chart.
// Order is insertion order; Time values need not be unique or
// contiguous once user-edited.
type Series []Point

// Clone returns an independent copy of the series.
func (s Series) Clone() Series {
	out := make(Series, len(s))
	copy(out, s)
	return out
}
