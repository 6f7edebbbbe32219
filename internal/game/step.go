package game

import "math"

// Step advances the simulation by one tick. Characters without an entry in
// inputs coast with empty input.
func Step(s *State, inputs map[int64]Input) {
	s.Tick++

	for uid, c := range s.Characters {
		inp := inputs[uid]
		if c.Dead {
			inp = Input{}
		}
		stepCharacter(s, c, inp)
	}
}

func stepCharacter(s *State, c *Character, inp Input) {
	b := &c.Body

	// Horizontal acceleration
	ax := inp.MoveX
	az := inp.MoveZ
	mag := math.Hypot(ax, az)
	if mag > 1 {
		ax /= mag
		az /= mag
	}
	accel := WalkAccel
	if inp.Run && c.Stamina > 0 {
		accel *= RunAccelMult
	}
	b.Vel.X += ax * accel * DeltaTime
	b.Vel.Z += az * accel * DeltaTime

	b.Vel.X /= DampingDiv
	b.Vel.Z /= DampingDiv

	maxSpeed := MaxWalkSpeed
	if inp.Run && c.Stamina > 0 {
		maxSpeed = MaxRunSpeed
	}
	if sq := b.HorizontalSpeedSq(); sq > maxSpeed*maxSpeed {
		scale := maxSpeed / math.Sqrt(sq)
		b.Vel.X *= scale
		b.Vel.Z *= scale
	}

	// Vertical: jump on ground, gravity in the air.
	if inp.Jump && b.OnGround {
		b.Vel.Y = JumpSpeed
		b.OnGround = false
	}
	if !b.OnGround {
		b.Vel.Y -= Gravity * DeltaTime
	}

	b.Pos.X += b.Vel.X * DeltaTime
	b.Pos.Y += b.Vel.Y * DeltaTime
	b.Pos.Z += b.Vel.Z * DeltaTime

	if b.Pos.Y <= GroundY {
		b.Pos.Y = GroundY
		b.Vel.Y = 0
		b.OnGround = true
	}

	// Map bounds on the ground plane
	if b.Pos.X < 0 {
		b.Pos.X = 0
	}
	if b.Pos.Z < 0 {
		b.Pos.Z = 0
	}
	if b.Pos.X > s.MapSize {
		b.Pos.X = s.MapSize
	}
	if b.Pos.Z > s.MapSize {
		b.Pos.Z = s.MapSize
	}

	updateRunState(s, c, inp)
}
