package model

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"type:varchar(32);uniqueIndex;not null"`
	Password string `gorm:"type:varchar(100);not null"` // bcrypt hash
}

type MatchHistory struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null"`
	MatchID   string `gorm:"type:varchar(64);index"`
	IsWinner  bool
	Kills     int
	Timestamp int64
}
