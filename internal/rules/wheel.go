package rules

import (
	"crypto/rand"
	"math/big"
)

type WheelSegment struct {
	ID     int
	Prize  int64
	Weight int64
	Label  string
}

func DefaultWheelSegments() []WheelSegment {
	return []WheelSegment{
		{ID: 1, Prize: 10, Weight: 300, Label: "10"},
		{ID: 2, Prize: 20, Weight: 250, Label: "20"},
		{ID: 3, Prize: 50, Weight: 200, Label: "50"},
		{ID: 4, Prize: 100, Weight: 120, Label: "100"},
		{ID: 5, Prize: 200, Weight: 70, Label: "200"},
		{ID: 6, Prize: 500, Weight: 40, Label: "500"},
		{ID: 7, Prize: 1_000, Weight: 15, Label: "1000"},
		{ID: 8, Prize: 5_000, Weight: 5, Label: "5000"},
	}
}

type Wheel struct {
	Segments []WheelSegment
	// randInt returns a uniform value in [0, n)
	randInt func(n int64) int64
}

func NewWheel() *Wheel {
	return &Wheel{
		Segments: DefaultWheelSegments(),
		randInt:  cryptoInt,
	}
}

// NewWheelWithSource builds a wheel drawing from randInt, used in tests.
func NewWheelWithSource(segments []WheelSegment, randInt func(n int64) int64) *Wheel {
	return &Wheel{Segments: segments, randInt: randInt}
}

func (w *Wheel) Spin() WheelSegment {
	var total int64
	for _, s := range w.Segments {
		total += s.Weight
	}
	if total <= 0 {
		return w.Segments[0]
	}

	n := w.randInt(total)
	for _, s := range w.Segments {
		if n < s.Weight {
			return s
		}
		n -= s.Weight
	}
	return w.Segments[len(w.Segments)-1]
}

func cryptoInt(n int64) int64 {
	v, err := rand.Int(rand.Reader, big.NewInt(n))
	if err != nil {
		return 0
	}
	return v.Int64()
}
