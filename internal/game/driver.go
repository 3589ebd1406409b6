package game

// simSpeeds are the selectable simulation rates, in ticks per frame.
var simSpeeds = []float64{0, 0.5, 1, 2, 4}

// Driver advances an arena once per host frame until the match stops. The
// host calls Frame from its refresh callback and renders afterwards; Frame is
// the only place ticks happen.
type Driver struct {
	arena     *Arena
	simSpeed  float64 // 0 = paused
	tickAccum float64 // fractional ticks carried between frames
	reported  bool
}

// NewDriver returns a driver running at one tick per frame.
func NewDriver(a *Arena) *Driver {
	return &Driver{arena: a, simSpeed: 1}
}

// Arena returns the driven arena.
func (d *Driver) Arena() *Arena { return d.arena }

// Frame runs the ticks owed for one host frame and returns how many ran.
// Speeds above 1 run several ticks; speeds below 1 accumulate fractions.
func (d *Driver) Frame() int {
	if !d.arena.Running() || d.simSpeed <= 0 {
		return 0
	}
	ran := 0
	d.tickAccum += d.simSpeed
	for d.tickAccum >= 1.0 && d.arena.Running() {
		d.tickAccum -= 1.0
		d.arena.Advance()
		ran++
	}
	if !d.arena.Running() {
		d.tickAccum = 0
	}
	return ran
}

// StoppedOverlay returns the end-of-match overlay the first time it is asked
// after the match stopped, and false every other time.
func (d *Driver) StoppedOverlay() (Lifecycle, bool) {
	life := d.arena.Lifecycle()
	if life.State != StateStopped || d.reported {
		return life, false
	}
	d.reported = true
	return life, true
}

// Speed returns the current ticks-per-frame multiplier.
func (d *Driver) Speed() float64 { return d.simSpeed }

// TogglePause pauses a running simulation or resumes it at normal speed.
func (d *Driver) TogglePause() {
	if d.simSpeed > 0 {
		d.simSpeed = 0
		return
	}
	d.simSpeed = 1
}

// Slower selects the next lower speed.
func (d *Driver) Slower() {
	for i, s := range simSpeeds {
		if s >= d.simSpeed && i > 0 {
			d.simSpeed = simSpeeds[i-1]
			return
		}
	}
}

// Faster selects the next higher speed.
func (d *Driver) Faster() {
	for _, s := range simSpeeds {
		if s > d.simSpeed {
			d.simSpeed = s
			return
		}
	}
}

// Paused reports whether the driver is holding the simulation still.
func (d *Driver) Paused() bool { return d.simSpeed <= 0 }

// MovePlayer forwards a movement intent unless the simulation is paused.
func (d *Driver) MovePlayer(dir Direction) bool {
	if d.Paused() {
		return false
	}
	return d.arena.MovePlayer(dir)
}

// FirePlayer forwards a fire intent unless the simulation is paused.
func (d *Driver) FirePlayer() bool {
	if d.Paused() {
		return false
	}
	return d.arena.FirePlayer()
}
