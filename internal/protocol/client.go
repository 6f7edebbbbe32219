package protocol

// Messages sent by the client.

type Hello struct {
	V    int    `json:"v"`
	Name string `json:"name,omitempty"`
}

type Input struct {
	// TargetTick is the server tick the client wants this input applied at.
	// Zero means "derive from timestamp".
	TargetTick int64 `json:"targetTick,omitempty"`
	Timestamp  int64 `json:"ts,omitempty"` // client unix ms, fallback only

	MoveX float64 `json:"mx"` // -1..1
	MoveZ float64 `json:"mz"` // -1..1
	Run   bool    `json:"run,omitempty"`
	Jump  bool    `json:"jump,omitempty"`

	// Fire held = charging; release fires a beam along Aim (radians, X/Z plane).
	Fire bool    `json:"fire,omitempty"`
	Aim  float64 `json:"aim,omitempty"`
}
