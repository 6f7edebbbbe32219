package protocol

// Messages sent by the server.

type Welcome struct {
	UID      int64 `json:"uid"`
	TickRate int   `json:"tickRate"`
}

type State struct {
	ServerTime int64            `json:"serverTime"` // unix ms
	Tick       int64            `json:"tick"`
	Players    []PlayerSnapshot `json:"players"`
	Beams      []BeamSnapshot   `json:"beams,omitempty"`
}

type PlayerSnapshot struct {
	UID      int64   `json:"uid"`
	Username string  `json:"username,omitempty"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	HP       int32   `json:"hp"`
	MaxHP    int32   `json:"maxHp"`
	Dead     bool    `json:"dead,omitempty"`
	Running  bool    `json:"running,omitempty"`
	Charging bool    `json:"charging,omitempty"`
	Stamina  float64 `json:"stamina"`
}

type BeamSnapshot struct {
	ID          string  `json:"id"`
	OwnerUID    int64   `json:"ownerUid"`
	StartX      float64 `json:"sx"`
	StartZ      float64 `json:"sz"`
	EndX        float64 `json:"ex"`
	EndZ        float64 `json:"ez"`
	Width       float64 `json:"w"`
	RemainingMs int32   `json:"remainingMs"`
}

// Event types.
const (
	EventPlayerDeath = "player_death"
	EventGameOver    = "game_over"
)

type Event struct {
	Type      string `json:"type"`
	TargetUID int64  `json:"targetUid"`
	Message   string `json:"message,omitempty"`
}
