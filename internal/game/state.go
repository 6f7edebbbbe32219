package game

// Authoritative simulation state. Pure data, no wall clock: time only exists
// as the tick counter, so replaying the same inputs yields the same state.

type Vec3 struct {
	X, Y, Z float64
}

// Body is the character's primary physical body. X/Z is the ground plane,
// Y points up.
type Body struct {
	Pos      Vec3
	Vel      Vec3
	OnGround bool
}

type Character struct {
	UID  int64
	Body Body

	HP    int32
	MaxHP int32
	Dead  bool

	Stamina float64

	// Locomotion state. RunSinceTick marks the tick at which running last
	// began; it is only re-stamped on a false->true transition of Running.
	Running      bool
	RunSinceTick int64
}

type State struct {
	Tick       int64
	MapSize    float64
	Characters map[int64]*Character

	// RunStopSpeedSq is the squared horizontal speed at or below which a
	// character is considered too slow to keep running.
	RunStopSpeedSq float64
}

type Input struct {
	MoveX, MoveZ float64 // -1..1 per axis
	Run          bool
	Jump         bool
}

func NewState(mapSize, runSpeedThreshold float64) *State {
	if mapSize <= 0 {
		mapSize = DefaultMap
	}
	if runSpeedThreshold <= 0 {
		runSpeedThreshold = DefaultRunSpeedThreshold
	}
	return &State{
		Tick:           0,
		MapSize:        mapSize,
		Characters:     make(map[int64]*Character),
		RunStopSpeedSq: runSpeedThreshold * runSpeedThreshold,
	}
}

func NewCharacter(uid int64, x, z float64) *Character {
	return &Character{
		UID: uid,
		Body: Body{
			Pos:      Vec3{X: x, Y: SpawnHeight, Z: z},
			OnGround: true,
		},
		HP:      100,
		MaxHP:   100,
		Stamina: StaminaMax,
	}
}

// Elapsed converts a tick span ending at the current tick into seconds.
func (s *State) Elapsed(sinceTick int64) float64 {
	return float64(s.Tick-sinceTick) * DeltaTime
}
