package bezier

// Smooth rounds the corners of an open polyline by Chaikin corner cutting.
// Each iteration replaces every edge with two points at a quarter and three
// quarters of its length; the first and last point are kept so a smoothed
// stroke still starts and ends where it was drawn.
//
// Freehand strokes are smoothed once before fitting to suppress pointer
// jitter.
func Smooth(points []Point, iterations int) []Point {
	const offset = 0.25
	out := points
	for range iterations {
		if len(out) < 3 {
			break
		}
		next := make([]Point, 0, 2*len(out))
		next = append(next, out[0])
		for i := range len(out) - 1 {
			a, b := out[i], out[i+1]
			next = append(next, a.Lerp(b, offset), a.Lerp(b, 1-offset))
		}
		next = append(next, out[len(out)-1])
		out = next
	}
	return out
}
