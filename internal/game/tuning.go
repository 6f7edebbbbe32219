package game

// Tick system constants
const (
	TickRate     = 64                      // Hz
	DeltaTime    = 1.0 / float64(TickRate) // seconds per tick
	DefaultMap   = 2000.0
	SpawnHeight  = 0.0
	GroundY      = 0.0
	CharacterHit = 20.0 // body radius used for beam collision
)

// Movement tuning. Speeds are units per second; the simulation scales by
// DeltaTime when integrating.
const (
	WalkAccel    = 60.0
	RunAccelMult = 1.8
	DampingDiv   = 1.12 // per-tick horizontal velocity divisor
	MaxWalkSpeed = 10.0
	MaxRunSpeed  = 22.0

	Gravity   = 30.0
	JumpSpeed = 12.0
)

// Stamina tuning, per second while running / recovering.
const (
	StaminaMax   = 100.0
	StaminaDrain = 25.0
	StaminaRegen = 12.0
)

// Running state tuning. A character that has been at or below
// DefaultRunSpeedThreshold (squared compare, no sqrt) for more than
// RunStopDelay seconds since running began drops out of the running state.
const (
	RunStopDelay             = 0.1
	DefaultRunSpeedThreshold = 3.0
)

// Beam attack tuning.
const (
	BeamLength       = 800.0
	BeamBaseWidth    = 20.0
	BeamWidthPerSec  = 50.0
	BeamMinDamage    = 5
	BeamMaxDamage    = 50
	BeamDamagePerSec = 100.0
	BeamLifetimeMs   = 300
)
