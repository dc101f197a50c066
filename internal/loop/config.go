package loop

import "time"

// Frame pacing. Velocities are expressed in units/tick, so the tick rate is
// part of gameplay tuning, not just presentation.
const targetFrameTime = time.Second / 60

// HUD layout (terminal cells).
const (
	hudCol      = 2
	hudFirstRow = 2
	hudRowStep  = 1
)

// Boost countdown bar width in cells.
const boostBarWidth = 20
