package coach

// gaugeSteps is the fixed frame count for animating a gauge toward its
// target.
const gaugeSteps = 20

// GaugeFrames returns the linear interpolation from current to target as
// exactly gaugeSteps values. The last frame is the target itself, not an
// accumulation of increments, so the animation always terminates exactly on
// the requested value.
func GaugeFrames(current, target float64) []float64 {
	frames := make([]float64, gaugeSteps)
	step := (target - current) / gaugeSteps
	for i := 0; i < gaugeSteps-1; i++ {
		frames[i] = current + step*float64(i+1)
	}
	frames[gaugeSteps-1] = target
	return frames
}
