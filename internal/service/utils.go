package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"arena/pkg/config"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateToken issues a signed JWT for the given account.
func GenerateToken(uid uint, username string) (string, error) {
	duration, err := time.ParseDuration(config.AppConfig.JWT.ExpireDuration)
	if err != nil {
		return "", fmt.Errorf("parse jwt expire_duration: %w", err)
	}

	claims := jwt.MapClaims{
		"uid":      uid,
		"username": username,
		"exp":      time.Now().Add(duration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWT.Secret))
}

// ParseToken validates a JWT and returns the uid and username claims.
func ParseToken(tokenStr string) (int64, string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.AppConfig.JWT.Secret), nil
	})
	if err != nil {
		return 0, "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, "", fmt.Errorf("invalid token")
	}

	uidF, ok := claims["uid"].(float64)
	if !ok {
		return 0, "", fmt.Errorf("token missing uid claim")
	}
	username, _ := claims["username"].(string)

	return int64(uidF), username, nil
}
