package core

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"arena/internal/dao"
	"arena/internal/game"
	"arena/internal/protocol"
)

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

const (
	wsReadDeadline  = 60 * time.Second
	wsWriteDeadline = 10 * time.Second
	wsPingPeriod    = 30 * time.Second
)

func HandleWebSocket(c *gin.Context) {
	roomID := c.Query("room_id")
	token := c.Query("token")

	if roomID == "" || token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "room_id and token required"})
		return
	}

	// Check the room token against Redis before upgrading.
	if ok, err := dao.ValidateRoomToken(context.Background(), roomID, token); err != nil {
		log.Println("redis error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	} else if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid room token"})
		return
	}

	uidStr := c.Query("uid")
	if uidStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "uid required"})
		return
	}
	uid, err := strconv.ParseInt(uidStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid uid"})
		return
	}

	room := CreateRoom(roomID)

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("Upgrade failed:", err)
		return
	}
	defer ws.Close()

	conn := NewWSConn(ws)
	player := NewPlayer(uid, "Player", conn)

	// The room goroutine may stop at any time (win condition, cleanup);
	// select on Done so the handler never hangs on a dead room.
	select {
	case room.Register <- player:
	case <-room.Done:
		return
	}
	defer func() {
		select {
		case room.Unregister <- uid:
		case <-room.Done:
		}
	}()

	// Confirm the join before any snapshots arrive.
	if b, err := protocol.Encode(protocol.MsgWelcome, protocol.Welcome{
		UID:      uid,
		TickRate: game.TickRate,
	}); err == nil {
		conn.Send(b)
	}

	ws.SetReadDeadline(time.Now().Add(wsReadDeadline))
	ws.SetPongHandler(func(string) error {
		ws.SetReadDeadline(time.Now().Add(wsReadDeadline))
		return nil
	})

	pingTicker := time.NewTicker(wsPingPeriod)
	defer pingTicker.Stop()

	messageChan := make(chan []byte)
	doneChan := make(chan bool)

	go func() {
		defer close(doneChan)
		for {
			_, data, err := ws.ReadMessage()
			if err != nil {
				log.Println("Read error:", err)
				return
			}
			messageChan <- data
		}
	}()

	for {
		select {
		case <-pingTicker.C:
			// WriteControl is safe alongside the room's locked data writes.
			if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteDeadline)); err != nil {
				log.Println("Ping error:", err)
				return
			}

		case data := <-messageChan:
			ws.SetReadDeadline(time.Now().Add(wsReadDeadline))

			env, err := protocol.DecodeEnvelope(data)
			if err != nil {
				continue
			}

			switch env.T {
			case protocol.MsgInput:
				input, err := protocol.DecodePayload[protocol.Input](env)
				if err != nil {
					continue
				}
				room.Inbox <- ClientMsg{UID: uid, Input: &input}

			case protocol.MsgHello:
				hello, err := protocol.DecodePayload[protocol.Hello](env)
				if err != nil || hello.Name == "" {
					continue
				}
				room.Inbox <- ClientMsg{UID: uid, Name: hello.Name}
			}

		case <-doneChan:
			return
		}
	}
}
