package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"arena/internal/dao"
	"arena/pkg/config"
)

// Create Room
func HandleCreateRoom(c *gin.Context) {
	uid, _ := c.Get("uid")

	var req struct {
		RoomName   string `json:"room_name"`
		MaxPlayers int32  `json:"max_players"`
	}
	c.ShouldBindJSON(&req)

	roomID := uuid.New().String()
	token := uuid.New().String()

	roomName := "Room " + roomID[:8]
	if req.RoomName != "" {
		roomName = req.RoomName
	}

	maxPlayers := int32(8)
	if req.MaxPlayers > 0 {
		maxPlayers = req.MaxPlayers
	}

	srv := config.AppConfig.Server
	err := dao.SaveRoom(c.Request.Context(), roomID, map[string]interface{}{
		"room_name":       roomName,
		"max_players":     maxPlayers,
		"current_players": 0,
		"status":          "WAITING",
		"server_ip":       srv.PublicIP,
		"server_port":     srv.PublicPort,
		"token":           token,
		"creator_uid":     uid.(int64),
		"created_at":      time.Now().Unix(),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Create room failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"room_id":     roomID,
		"server_ip":   srv.PublicIP,
		"server_port": srv.PublicPort,
		"ticket":      token,
	})
}

// List Rooms
func HandleListRooms(c *gin.Context) {
	data, err := dao.GetAllRooms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "List rooms failed"})
		return
	}

	rooms := make([]gin.H, 0, len(data))
	for _, r := range data {
		cur, _ := strconv.Atoi(r["current_players"])
		max, _ := strconv.Atoi(r["max_players"])

		rooms = append(rooms, gin.H{
			"room_id":         r["room_id"],
			"room_name":       r["room_name"],
			"current_players": cur,
			"max_players":     max,
			"status":          r["status"],
		})
	}

	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// Join Room
func HandleJoinRoom(c *gin.Context) {
	var req struct {
		RoomId string `json:"room_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.RoomId == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "room_id is required"})
		return
	}

	ctx := c.Request.Context()
	roomData, err := dao.GetRoom(ctx, req.RoomId)
	if err != nil || len(roomData) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found or expired"})
		return
	}

	curPlayers, _ := strconv.Atoi(roomData["current_players"])
	maxPlayers, _ := strconv.Atoi(roomData["max_players"])
	if curPlayers >= maxPlayers {
		c.JSON(http.StatusConflict, gin.H{"error": "room is full"})
		return
	}

	if status := roomData["status"]; status != "WAITING" {
		c.JSON(http.StatusConflict, gin.H{"error": "room is not available, status: " + status})
		return
	}

	// The room keeps its token from creation; joiners receive the same
	// ticket so earlier joiners' websocket handshakes stay valid.
	if err := dao.UpdateRoom(ctx, req.RoomId, map[string]interface{}{
		"current_players": curPlayers + 1,
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Join room failed"})
		return
	}

	port, _ := strconv.Atoi(roomData["server_port"])
	c.JSON(http.StatusOK, gin.H{
		"room_id":     req.RoomId,
		"server_ip":   roomData["server_ip"],
		"server_port": port,
		"ticket":      roomData["token"],
	})
}
