package interp

// catmullRom returns the four uniform Catmull-Rom weights for parameter t in [0,1].
// At t=0 the weights are exactly [0 1 0 0] and at t=1 exactly [0 0 1 0], so the
// curve passes through its two middle control values.
func catmullRom(t float64) [4]float64 {
	t2 := t * t
	t3 := t2 * t
	return [4]float64{
		(-t3 + 2*t2 - t) / 2,
		(3*t3 - 5*t2 + 2) / 2,
		(-3*t3 + 4*t2 + t) / 2,
		(t3 - t2) / 2,
	}
}
