package core

import (
	"fmt"
	"log"
	"math"
	"sort"
	"sync"
	"time"

	"arena/internal/game"
	"arena/internal/mq"
	"arena/internal/protocol"
	"arena/pkg/config"
)

const (
	TickDuration       = time.Second / game.TickRate
	DelayCompensation  = 2 // inputs execute 2 ticks behind the current tick
	AcceptableLagTicks = 2 // window around the execution tick
	DefaultBroadcastHz = 32
)

// ClientMsg carries a decoded client message from the websocket read pump
// into the room loop, so all player state is mutated on one goroutine.
type ClientMsg struct {
	UID   int64
	Input *protocol.Input
	Name  string // non-empty for a hello rename
}

type Room struct {
	ID      string
	State   *game.State
	Players map[int64]*Player
	Beams   []*Beam

	Register   chan *Player
	Unregister chan int64
	Inbox      chan ClientMsg

	Mutex     sync.RWMutex
	Ticker    *time.Ticker
	StopChan  chan bool
	Done      chan struct{} // closed when Run exits
	IsRunning bool

	HostUID int64

	latestInputs   map[int64]game.Input
	broadcastEvery int64

	LastActiveTime int64
	CreatedAt      int64
}

type Beam struct {
	ID             string
	OwnerUID       int64
	StartX, StartZ float64
	EndX, EndZ     float64
	Width          float64
	ExpiresAt      int64 // unix ms, display lifetime only
}

func NewRoom(id string) *Room {
	var mapSize, threshold float64
	broadcastHz := DefaultBroadcastHz
	if config.AppConfig != nil {
		mapSize = config.AppConfig.Game.MapSize
		threshold = config.AppConfig.Game.RunSpeedThreshold
		if config.AppConfig.Game.BroadcastHz > 0 {
			broadcastHz = config.AppConfig.Game.BroadcastHz
		}
	}
	broadcastEvery := int64(game.TickRate / broadcastHz)
	if broadcastEvery <= 0 {
		broadcastEvery = 1
	}

	now := time.Now().Unix()
	return &Room{
		ID:             id,
		State:          game.NewState(mapSize, threshold),
		Players:        make(map[int64]*Player),
		Register:       make(chan *Player),
		Unregister:     make(chan int64),
		Inbox:          make(chan ClientMsg, 256),
		StopChan:       make(chan bool),
		Done:           make(chan struct{}),
		latestInputs:   make(map[int64]game.Input),
		broadcastEvery: broadcastEvery,
		LastActiveTime: now,
		CreatedAt:      now,
	}
}

func (r *Room) Run() {
	r.IsRunning = true
	r.Ticker = time.NewTicker(TickDuration)
	defer func() {
		r.Ticker.Stop()
		// Unblock handlers stuck on Register/Unregister, then drop the
		// room from the registry so the id can be reused.
		close(r.Done)
		releaseRoom(r)
	}()

	for {
		select {
		case <-r.StopChan:
			return

		case p := <-r.Register:
			r.Mutex.Lock()
			r.Players[p.UID] = p
			spawn := 100 + float64(time.Now().UnixNano()%1000)
			r.State.Characters[p.UID] = game.NewCharacter(p.UID, spawn, spawn)
			r.latestInputs[p.UID] = game.Input{}
			if r.HostUID == 0 {
				r.HostUID = p.UID
			}
			r.LastActiveTime = time.Now().Unix()
			r.Mutex.Unlock()
			log.Printf("Player %d joined room %s", p.UID, r.ID)

		case uid := <-r.Unregister:
			r.Mutex.Lock()
			delete(r.Players, uid)
			delete(r.State.Characters, uid)
			delete(r.latestInputs, uid)
			r.LastActiveTime = time.Now().Unix()

			if uid == r.HostUID && len(r.Players) > 0 {
				for newHostUID := range r.Players {
					r.HostUID = newHostUID
					log.Printf("Host transferred from %d to %d in room %s", uid, newHostUID, r.ID)
					break
				}
			}

			if len(r.Players) == 0 {
				r.IsRunning = false
				r.HostUID = 0
				r.Mutex.Unlock()
				return
			}
			r.Mutex.Unlock()

		case msg := <-r.Inbox:
			r.Mutex.Lock()
			if p, ok := r.Players[msg.UID]; ok {
				if msg.Input != nil {
					p.InputQueue = append(p.InputQueue, msg.Input)
				}
				if msg.Name != "" {
					p.Username = msg.Name
				}
			}
			r.Mutex.Unlock()

		case <-r.Ticker.C:
			r.GameLoop()
		}
	}
}

func (r *Room) GameLoop() {
	r.Mutex.Lock()
	defer r.Mutex.Unlock()

	// 1. Drain input queues into per-player held inputs (with delay
	// compensation) and resolve charge/fire edges.
	r.processInputs()

	// 2. Advance the simulation one tick.
	game.Step(r.State, r.latestInputs)

	// 3. Expire beam effects.
	now := time.Now().UnixMilli()
	activeBeams := r.Beams[:0]
	for _, b := range r.Beams {
		if b.ExpiresAt > now {
			activeBeams = append(activeBeams, b)
		}
	}
	r.Beams = activeBeams

	// 4. Check win condition.
	r.checkWinCondition()

	// 5. Broadcast a snapshot.
	if r.State.Tick%r.broadcastEvery == 0 {
		r.broadcastSnapshot()
	}
}

func (r *Room) processInputs() {
	execTick := r.State.Tick - DelayCompensation

	for uid, p := range r.Players {
		if len(p.InputQueue) == 0 {
			continue
		}

		validInputs := make([]*protocol.Input, 0, len(p.InputQueue))
		for _, input := range p.InputQueue {
			targetTick := input.TargetTick
			if targetTick == 0 {
				if input.Timestamp != 0 {
					targetTick = input.Timestamp / TickDuration.Milliseconds()
				} else {
					// Untimed inputs apply at the execution tick.
					targetTick = execTick
				}
				// The derived tick is what ordering and bookkeeping go by.
				input.TargetTick = targetTick
			}

			// Reject inputs too far in the past or the future.
			tickDiff := targetTick - execTick
			if tickDiff < -AcceptableLagTicks || tickDiff > AcceptableLagTicks {
				continue
			}

			validInputs = append(validInputs, input)
		}

		sort.Slice(validInputs, func(i, j int) bool {
			return validInputs[i].TargetTick < validInputs[j].TargetTick
		})

		c := r.State.Characters[uid]
		for _, input := range validInputs {
			p.TargetTick = input.TargetTick

			r.latestInputs[uid] = game.Input{
				MoveX: input.MoveX,
				MoveZ: input.MoveZ,
				Run:   input.Run,
				Jump:  input.Jump,
			}

			if c != nil && !c.Dead {
				if input.Fire {
					if !p.Charging {
						p.Charging = true
						p.ChargeStartTick = r.State.Tick
					}
					p.Aim = input.Aim
				} else if p.Charging {
					// Released: fire.
					chargeSec := r.State.Elapsed(p.ChargeStartTick)
					r.fireBeam(p, c, chargeSec)
					p.Charging = false
				}
			}
		}

		if len(validInputs) > 0 {
			p.LastProcessedTick = validInputs[len(validInputs)-1].TargetTick
		}

		p.InputQueue = p.InputQueue[:0]
	}
}

func (r *Room) fireBeam(owner *Player, c *game.Character, chargeSec float64) {
	damage := int32(chargeSec * game.BeamDamagePerSec)
	if damage > game.BeamMaxDamage {
		damage = game.BeamMaxDamage
	}
	if damage < game.BeamMinDamage {
		damage = game.BeamMinDamage
	}

	width := game.BeamBaseWidth + chargeSec*game.BeamWidthPerSec

	startX := c.Body.Pos.X
	startZ := c.Body.Pos.Z
	endX := startX + game.BeamLength*math.Cos(owner.Aim)
	endZ := startZ + game.BeamLength*math.Sin(owner.Aim)

	r.Beams = append(r.Beams, &Beam{
		ID:       fmt.Sprintf("%d-%d", owner.UID, time.Now().UnixNano()),
		OwnerUID: owner.UID,
		StartX:   startX, StartZ: startZ,
		EndX: endX, EndZ: endZ,
		Width:     width,
		ExpiresAt: time.Now().UnixMilli() + game.BeamLifetimeMs,
	})

	for uid, target := range r.State.Characters {
		if uid == owner.UID || target.Dead {
			continue
		}
		if game.SegmentHitsCircle(startX, startZ, endX, endZ, width,
			target.Body.Pos.X, target.Body.Pos.Z, game.CharacterHit) {
			target.HP -= damage
			if target.HP <= 0 {
				target.HP = 0
				target.Dead = true
				r.broadcastEvent(protocol.EventPlayerDeath, uid, "wasted")
			}
		}
	}
}

func (r *Room) checkWinCondition() {
	aliveCount := 0
	var lastSurvivor *game.Character

	for _, c := range r.State.Characters {
		if !c.Dead {
			aliveCount++
			lastSurvivor = c
		}
	}

	// Single-player rooms never end; useful for testing.
	if len(r.Players) > 1 && aliveCount <= 1 && r.IsRunning {
		winnerUID := int64(-1)
		if lastSurvivor != nil {
			winnerUID = lastSurvivor.UID
		}

		r.broadcastEvent(protocol.EventGameOver, winnerUID, "Game Over")
		r.IsRunning = false

		go mq.PublishMatchResult(mq.MatchResult{
			MatchID:   r.ID,
			Winner:    winnerUID,
			Timestamp: time.Now().Unix(),
		})

		// Close the room shortly after the result goes out.
		go func() {
			time.Sleep(5 * time.Second)
			select {
			case r.StopChan <- true:
			case <-r.Done:
			}
		}()
	}
}

func (r *Room) broadcastSnapshot() {
	snapshot := protocol.State{
		ServerTime: time.Now().UnixMilli(),
		Tick:       r.State.Tick,
		Players:    make([]protocol.PlayerSnapshot, 0, len(r.Players)),
		Beams:      make([]protocol.BeamSnapshot, 0, len(r.Beams)),
	}

	now := time.Now().UnixMilli()
	for uid, p := range r.Players {
		c := r.State.Characters[uid]
		if c == nil {
			continue
		}
		snapshot.Players = append(snapshot.Players, protocol.PlayerSnapshot{
			UID:      uid,
			Username: p.Username,
			X:        c.Body.Pos.X,
			Y:        c.Body.Pos.Y,
			Z:        c.Body.Pos.Z,
			HP:       c.HP,
			MaxHP:    c.MaxHP,
			Dead:     c.Dead,
			Running:  c.Running,
			Charging: p.Charging,
			Stamina:  c.Stamina,
		})
	}
	for _, b := range r.Beams {
		snapshot.Beams = append(snapshot.Beams, protocol.BeamSnapshot{
			ID:       b.ID,
			OwnerUID: b.OwnerUID,
			StartX:   b.StartX, StartZ: b.StartZ,
			EndX: b.EndX, EndZ: b.EndZ,
			Width:       b.Width,
			RemainingMs: int32(b.ExpiresAt - now),
		})
	}

	b, err := protocol.Encode(protocol.MsgState, snapshot)
	if err != nil {
		return
	}
	for _, p := range r.Players {
		p.Conn.Send(b)
	}
}

func (r *Room) broadcastEvent(evtType string, targetUID int64, msg string) {
	b, err := protocol.Encode(protocol.MsgEvent, protocol.Event{
		Type:      evtType,
		TargetUID: targetUID,
		Message:   msg,
	})
	if err != nil {
		return
	}
	for _, p := range r.Players {
		p.Conn.Send(b)
	}
}
