package game

import "testing"

func TestStepMovesCharacterAndAdvancesTick(t *testing.T) {
	s := NewState(0, 0)
	s.Characters[1] = NewCharacter(1, 100, 100)

	inputs := map[int64]Input{1: {MoveX: 1}}

	Step(s, inputs)
	if s.Tick != 1 {
		t.Fatalf("tick after 1 step = %d, want 1", s.Tick)
	}
	x1 := s.Characters[1].Body.Pos.X
	if x1 <= 100 {
		t.Fatalf("expected x to increase after 1 step, got %f", x1)
	}

	for i := 0; i < 4; i++ {
		Step(s, inputs)
	}
	if s.Tick != 5 {
		t.Fatalf("tick after 5 steps = %d, want 5", s.Tick)
	}
	x2 := s.Characters[1].Body.Pos.X
	if x2 <= x1 {
		t.Fatalf("expected x to keep increasing: x1=%f x2=%f", x1, x2)
	}
}

func TestStepClampsToMapBounds(t *testing.T) {
	s := NewState(200, 0)
	s.Characters[1] = NewCharacter(1, 199, 100)

	inputs := map[int64]Input{1: {MoveX: 1}}
	for i := 0; i < 5*TickRate; i++ {
		Step(s, inputs)
	}

	if got := s.Characters[1].Body.Pos.X; got != 200 {
		t.Fatalf("x after pushing into the wall = %f, want 200", got)
	}
}

func TestStepCapsHorizontalSpeed(t *testing.T) {
	s := NewState(0, 0)
	s.Characters[1] = NewCharacter(1, 100, 100)

	walk := map[int64]Input{1: {MoveX: 1}}
	for i := 0; i < 5*TickRate; i++ {
		Step(s, walk)
	}
	if sq := s.Characters[1].Body.HorizontalSpeedSq(); sq > MaxWalkSpeed*MaxWalkSpeed+1e-6 {
		t.Fatalf("walk speedSq=%f exceeds cap %f", sq, MaxWalkSpeed*MaxWalkSpeed)
	}

	run := map[int64]Input{1: {MoveX: 1, Run: true}}
	for i := 0; i < 2*TickRate; i++ {
		Step(s, run)
	}
	sq := s.Characters[1].Body.HorizontalSpeedSq()
	if sq <= MaxWalkSpeed*MaxWalkSpeed {
		t.Fatalf("run speedSq=%f should exceed the walk cap", sq)
	}
	if sq > MaxRunSpeed*MaxRunSpeed+1e-6 {
		t.Fatalf("run speedSq=%f exceeds cap %f", sq, MaxRunSpeed*MaxRunSpeed)
	}
}

func TestStepJumpAndLand(t *testing.T) {
	s := NewState(0, 0)
	s.Characters[1] = NewCharacter(1, 100, 100)

	Step(s, map[int64]Input{1: {Jump: true}})
	c := s.Characters[1]
	if c.Body.OnGround {
		t.Fatalf("expected character airborne after jump")
	}
	if c.Body.Pos.Y <= GroundY {
		t.Fatalf("expected positive height after jump, got %f", c.Body.Pos.Y)
	}

	// Holding jump in the air must not double-jump; gravity brings the
	// character back down within a couple of seconds.
	for i := 0; i < 3*TickRate; i++ {
		Step(s, map[int64]Input{1: {Jump: true}})
		if c.Body.Pos.Y == GroundY && c.Body.OnGround {
			return
		}
	}
	t.Fatalf("character never landed: y=%f", c.Body.Pos.Y)
}

func TestStepNormalizesDiagonalInput(t *testing.T) {
	s := NewState(0, 0)
	s.Characters[1] = NewCharacter(1, 100, 100)
	s.Characters[2] = NewCharacter(2, 100, 100)

	inputs := map[int64]Input{
		1: {MoveX: 1},
		2: {MoveX: 1, MoveZ: 1},
	}
	Step(s, inputs)

	straight := s.Characters[1].Body.HorizontalSpeedSq()
	diagonal := s.Characters[2].Body.HorizontalSpeedSq()
	if diagonal > straight+1e-9 {
		t.Fatalf("diagonal input faster than straight: %f > %f", diagonal, straight)
	}
}

func TestStepSkipsDeadCharacterInput(t *testing.T) {
	s := NewState(0, 0)
	c := NewCharacter(1, 100, 100)
	c.Dead = true
	s.Characters[1] = c

	Step(s, map[int64]Input{1: {MoveX: 1, Run: true}})
	if c.Body.Pos.X != 100 || c.Body.Vel.X != 0 {
		t.Fatalf("dead character moved: x=%f vx=%f", c.Body.Pos.X, c.Body.Vel.X)
	}
	if c.Running {
		t.Fatalf("dead character entered running state")
	}
}

func TestSegmentHitsCircle(t *testing.T) {
	cases := []struct {
		name              string
		x1, z1, x2, z2, w float64
		px, pz, pr        float64
		want              bool
	}{
		{"on segment", 0, 0, 100, 0, 20, 50, 0, 5, true},
		{"inside width", 0, 0, 100, 0, 20, 50, 9, 5, true},
		{"outside width", 0, 0, 100, 0, 20, 50, 40, 5, false},
		{"past endpoint", 0, 0, 100, 0, 20, 160, 0, 5, false},
		{"near endpoint", 0, 0, 100, 0, 20, 110, 0, 5, true},
		{"diagonal hit", 0, 0, 100, 100, 10, 52, 48, 5, true},
		{"diagonal miss", 0, 0, 100, 100, 10, 80, 20, 5, false},
		{"degenerate segment", 50, 50, 50, 50, 10, 53, 50, 2, true},
	}

	for _, tc := range cases {
		got := SegmentHitsCircle(tc.x1, tc.z1, tc.x2, tc.z2, tc.w, tc.px, tc.pz, tc.pr)
		if got != tc.want {
			t.Errorf("%s: SegmentHitsCircle=%v, want %v", tc.name, got, tc.want)
		}
	}
}
