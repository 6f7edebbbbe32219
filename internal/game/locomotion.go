package game

// HorizontalSpeedSq returns the squared magnitude of the velocity projected
// onto the X/Z plane. Squared so callers compare against squared thresholds
// instead of paying for a sqrt every tick.
func (b *Body) HorizontalSpeedSq() float64 {
	return b.Vel.X*b.Vel.X + b.Vel.Z*b.Vel.Z
}

// StartRunning puts the character into the running state and stamps the
// run-start tick. Calling it while already running does not re-stamp.
func (c *Character) StartRunning(tick int64) {
	if c.Running {
		return
	}
	c.Running = true
	c.RunSinceTick = tick
}

// StopRunningIfSlow clears the running flag once the character has been at or
// below the run speed threshold after more than RunStopDelay seconds have
// passed since running began. Inside the grace window, or while the character
// is still fast, the flag is left untouched.
func StopRunningIfSlow(s *State, c *Character) {
	if !c.Running {
		return
	}
	if s.Elapsed(c.RunSinceTick) > RunStopDelay && c.Body.HorizontalSpeedSq() <= s.RunStopSpeedSq {
		c.Running = false
	}
}

// updateRunState handles the full running lifecycle for one tick: entering
// the state on run input while moving fast enough, dropping it on input
// release or stamina exhaustion, and the slow-speed timeout above.
func updateRunState(s *State, c *Character, inp Input) {
	if c.Dead {
		c.Running = false
		return
	}

	if !inp.Run || c.Stamina <= 0 {
		c.Running = false
	} else if c.Body.HorizontalSpeedSq() > s.RunStopSpeedSq {
		c.StartRunning(s.Tick)
	}

	StopRunningIfSlow(s, c)

	if c.Running {
		c.Stamina -= StaminaDrain * DeltaTime
		if c.Stamina < 0 {
			c.Stamina = 0
		}
	} else {
		c.Stamina += StaminaRegen * DeltaTime
		if c.Stamina > StaminaMax {
			c.Stamina = StaminaMax
		}
	}
}
