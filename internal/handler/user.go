package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arena/internal/dao"
)

// Get History
func HandleGetHistory(c *gin.Context) {
	uid, _ := c.Get("uid")

	records, err := dao.GetHistory(uint(uid.(int64)), 1, 10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Fetch history failed"})
		return
	}

	history := make([]gin.H, 0, len(records))
	for _, r := range records {
		history = append(history, gin.H{
			"match_id":  r.MatchID,
			"is_winner": r.IsWinner,
			"kills":     r.Kills,
			"timestamp": r.Timestamp,
		})
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}
