package model

import "math"

// SeriesStats summarizes a series for the statistics strip.
type SeriesStats struct {
	StartPrice float64
	EndPrice   float64
	MaxPrice   float64
	MinPrice   float64
}

// Stats computes summary statistics over the series. Returns a zero
// value for an empty series.
func Stats(s Series) SeriesStats {
	if len(s) == 0 {
		return SeriesStats{}
	}
	st := SeriesStats{
		StartPrice: s[0].Price,
		EndPrice:   s[len(s)-1].Price,
		MaxPrice:   math.Inf(-1),
		MinPrice:   math.Inf(1),
	}
	for _, p := range s {
		if p.Price > st.MaxPrice {
			st.MaxPrice = p.Price
		}
		if p.Price < st.MinPrice {
			st.MinPrice = p.Price
		}
	}
	return st
}
