package dao

import (
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"arena/model"
)

var DB *gorm.DB

func InitMySQL(dsn string) {
	var err error
	// TranslateError maps driver duplicate-key errors to gorm.ErrDuplicatedKey.
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("MySQL connect failed: %v", err)
	}
	DB.AutoMigrate(&model.User{}, &model.MatchHistory{})
}

// CreateUser inserts a new account; fails on duplicate username.
func CreateUser(u *model.User) error {
	return DB.Create(u).Error
}

func GetUserByUsername(username string) (*model.User, error) {
	var user model.User
	err := DB.Where("username = ?", username).First(&user).Error
	return &user, err
}

// GetHistory returns one page of match history, newest first.
func GetHistory(uid uint, page, limit int) ([]model.MatchHistory, error) {
	var history []model.MatchHistory
	offset := (page - 1) * limit
	err := DB.Where("user_id = ?", uid).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&history).Error
	return history, err
}

// AddHistory is called by the MQ consumer after a match ends.
func AddHistory(h *model.MatchHistory) error {
	return DB.Create(h).Error
}
