package utils

// Viewport maps world units (origin at the centre, +y up) to screen pixels
// (origin top-left, +y down).
type Viewport struct {
	Width, Height float64
}

// ToScreen converts a world point.
func (v Viewport) ToScreen(x, y float64) (float64, float64) {
	return x + v.Width/2, v.Height/2 - y
}

// RectToScreen returns the top-left pixel corner of a world box.
func (v Viewport) RectToScreen(b AABB) (x, y float64) {
	return v.ToScreen(b.X-b.Width/2, b.Top())
}

// ToRoman converts a positive integer to roman numerals.
func ToRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	out := make([]byte, 0, 16)
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			out = append(out, syb[i]...)
			num -= val[i]
		}
	}
	return string(out)
}
