package dao

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"arena/pkg/config"
)

var RDB *redis.Client

const (
	KeyRoomList   = "rooms:available" // Set of room_id
	KeyRoomPrefix = "room:"           // Hash room:{id} -> details
)

func InitRedis() {
	cfg := config.AppConfig.Redis
	RDB = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := RDB.Ping(ctx).Result(); err != nil {
		log.Fatalf("Redis connect failed: %v", err)
	}
}

// SaveRoom stores the room hash and adds it to the available list. A TTL
// keeps dead rooms from accumulating.
func SaveRoom(ctx context.Context, roomID string, data map[string]interface{}) error {
	pipe := RDB.Pipeline()

	key := KeyRoomPrefix + roomID
	pipe.HMSet(ctx, key, data)
	pipe.Expire(ctx, key, 24*time.Hour)
	pipe.SAdd(ctx, KeyRoomList, roomID)

	_, err := pipe.Exec(ctx)
	return err
}

func GetRoom(ctx context.Context, roomID string) (map[string]string, error) {
	return RDB.HGetAll(ctx, KeyRoomPrefix+roomID).Result()
}

// GetAllRooms lists every advertised room with its details.
func GetAllRooms(ctx context.Context) ([]map[string]string, error) {
	ids, err := RDB.SMembers(ctx, KeyRoomList).Result()
	if err != nil {
		return nil, err
	}

	var rooms []map[string]string
	for _, id := range ids {
		data, err := RDB.HGetAll(ctx, KeyRoomPrefix+id).Result()
		if err == nil && len(data) > 0 {
			data["room_id"] = id
			rooms = append(rooms, data)
		}
	}
	return rooms, nil
}

func UpdateRoom(ctx context.Context, roomID string, data map[string]interface{}) error {
	return RDB.HMSet(ctx, KeyRoomPrefix+roomID, data).Err()
}

func RemoveRoom(ctx context.Context, roomID string) error {
	pipe := RDB.Pipeline()
	pipe.Del(ctx, KeyRoomPrefix+roomID)
	pipe.SRem(ctx, KeyRoomList, roomID)
	_, err := pipe.Exec(ctx)
	return err
}

// ValidateRoomToken checks whether the given token matches the stored room token.
func ValidateRoomToken(ctx context.Context, roomID, token string) (bool, error) {
	val, err := RDB.HGet(ctx, KeyRoomPrefix+roomID, "token").Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return val == token, nil
}
