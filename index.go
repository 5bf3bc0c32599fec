package bezier

// The three sequences of a Curve are tied together by fixed arithmetic:
// anchor a owns handles 2a and 2a+1 and sits at sample a·Interpolation, and
// segment i covers samples i·Interpolation through (i+1)·Interpolation.

// AnchorOfSample returns the index of the first anchor at or after sample i.
// For a sample strictly inside segment k this is k+1.
func (c *Curve) AnchorOfSample(i int) int {
	return floorDiv(i-1, c.cfg.interpolation) + 1
}

// SampleOfAnchor returns the index of the sample that coincides with anchor
// a.
func (c *Curve) SampleOfAnchor(a int) int {
	return a * c.cfg.interpolation
}

// windowPos returns the position of sample i within the sample window of
// its segment, in 1..Interpolation. A sample that coincides with an anchor
// maps to the end of the preceding window.
func (c *Curve) windowPos(i int) int {
	return floorMod(i-1, c.cfg.interpolation) + 1
}

// window returns the samples of segment i, both anchors included. The result
// aliases the curve's samples.
func (c *Curve) window(i int) []Point {
	s := c.SampleOfAnchor(i)
	return c.samples[s : s+c.cfg.interpolation+1]
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}
