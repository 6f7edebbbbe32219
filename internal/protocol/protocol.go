package protocol

import "encoding/json"

// Message types carried in the envelope.
const (
	MsgHello   = "hello"
	MsgInput   = "input"
	MsgWelcome = "welcome"
	MsgState   = "state"
	MsgEvent   = "event"
)

// Envelope wraps every websocket message in both directions.
type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"`
}
