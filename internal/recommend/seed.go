package recommend

import "unicode/utf16"

// SeedFor derives the shuffle seed for a (user, date) pair from a 31-multiplier
// polynomial hash over the UTF-16 code units of userID+date, wrapped to a signed
// 32-bit integer. The absolute value of the hash is the seed.
func SeedFor(userID, date string) uint32 {
	var h int32
	for _, c := range utf16.Encode([]rune(userID + date)) {
		h = (h << 5) - h + int32(c)
	}
	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}
	return uint32(abs)
}

// lcg is the Numerical Recipes linear congruential generator modulo 2^32.
type lcg struct {
	state uint32
}

func newLCG(seed uint32) *lcg {
	return &lcg{state: seed}
}

// next advances the generator and returns a value in [0, 1).
func (g *lcg) next() float64 {
	g.state = g.state*1664525 + 1013904223
	return float64(g.state) / (1 << 32)
}

// shuffle permutes items in place with Fisher-Yates, drawing from g.
func shuffle[T any](items []T, g *lcg) {
	for i := len(items) - 1; i > 0; i-- {
		j := int(g.next() * float64(i+1))
		items[i], items[j] = items[j], items[i]
	}
}
