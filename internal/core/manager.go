package core

import (
	"sync"
	"time"
)

var (
	Rooms = make(map[string]*Room)
	mu    sync.RWMutex
)

func init() {
	go StartCleanupTask()
}

func StartCleanupTask() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		CleanupEmptyRooms()
	}
}

func CleanupEmptyRooms() {
	mu.Lock()
	defer mu.Unlock()

	now := time.Now().Unix()
	for _, room := range Rooms {
		room.Mutex.RLock()
		playerCount := len(room.Players)
		lastActive := room.LastActiveTime
		room.Mutex.RUnlock()

		if playerCount == 0 && (now-lastActive) > 60 {
			// Run's exit path releases the room; if it is mid-tick the
			// send misses and the next sweep retries.
			select {
			case room.StopChan <- true:
			default:
			}
		}
	}
}

func CreateRoom(roomID string) *Room {
	mu.Lock()
	defer mu.Unlock()
	if room, ok := Rooms[roomID]; ok {
		select {
		case <-room.Done:
			// Stopped but not yet released; replace it below.
		default:
			return room
		}
	}
	room := NewRoom(roomID)
	Rooms[roomID] = room
	go room.Run()
	return room
}

// releaseRoom is called by Run on exit. The identity check keeps a stopped
// room from deleting its replacement.
func releaseRoom(r *Room) {
	mu.Lock()
	defer mu.Unlock()
	if Rooms[r.ID] == r {
		delete(Rooms, r.ID)
	}
}
