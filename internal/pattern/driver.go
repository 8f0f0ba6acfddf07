package pattern

// StepScale converts the configured speed into a per-tick multiplier step.
const StepScale float32 = 0.00025

// Driver sweeps the live multiplier back and forth between 0 and a target.
type Driver struct {
	Current   float32
	Direction float32
	Step      float32
}

func NewDriver(speed, target float32) Driver {
	d := Driver{Direction: 1}
	d.Reset(speed, target)
	return d
}

// Reset re-derives the step and jumps back to target. Direction is left as
// is, so a sweep heading down keeps heading down after a config change.
func (d *Driver) Reset(speed, target float32) {
	d.Step = speed * StepScale
	d.Current = target
}

// Tick advances one frame at the base step.
func (d *Driver) Tick(target float32) float32 {
	return d.Advance(target, 1)
}

// Advance moves Current by tempo steps toward the current direction. On
// reaching either bound it clamps to [0, target] and turns around.
func (d *Driver) Advance(target, tempo float32) float32 {
	if d.Direction == 0 {
		d.Direction = 1
	}
	d.Current += d.Direction * d.Step * tempo
	if d.Current >= target || d.Current <= 0 {
		d.Current = max(0, min(d.Current, target))
		d.Direction = -d.Direction
	}
	return d.Current
}
