package core

import (
	"arena/internal/protocol"
)

// Player is the per-connection state a room keeps next to the simulation's
// Character. Network-facing fields live here; physics lives in game.State.
type Player struct {
	UID      int64
	Username string
	Conn     Conn

	// Input buffer, drained once per tick by the room loop.
	InputQueue []*protocol.Input

	// Charged beam attack state, measured in server ticks.
	Charging        bool
	ChargeStartTick int64
	Aim             float64

	// Delay compensation bookkeeping.
	TargetTick        int64
	LastProcessedTick int64
}

func NewPlayer(uid int64, name string, conn Conn) *Player {
	return &Player{
		UID:        uid,
		Username:   name,
		Conn:       conn,
		InputQueue: make([]*protocol.Input, 0),
	}
}
