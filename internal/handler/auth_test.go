package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"arena/internal/dao"
	"arena/model"
	"arena/pkg/config"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}))

	oldDB := dao.DB
	dao.DB = db
	t.Cleanup(func() { dao.DB = oldDB })

	old := config.AppConfig
	config.AppConfig = &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpireDuration: "1h"},
	}
	t.Cleanup(func() { config.AppConfig = old })

	r := gin.New()
	r.POST("/api/auth/register", HandleRegister)
	r.POST("/api/auth/login", HandleLogin)
	return r
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	r := setupAuthRouter(t)

	creds := gin.H{"username": "alice", "password": "hunter2"}

	w, resp := doJSON(t, r, http.MethodPost, "/api/auth/register", creds)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, resp["uid"])

	w, _ = doJSON(t, r, http.MethodPost, "/api/auth/register", creds)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/auth/register",
		gin.H{"username": "bob", "password": "hunter2"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterReportsStorageFailure(t *testing.T) {
	r := setupAuthRouter(t)

	// A dead connection is a server error, not a name conflict.
	sqlDB, err := dao.DB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/register",
		gin.H{"username": "alice", "password": "hunter2"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestLoginRoundtrip(t *testing.T) {
	r := setupAuthRouter(t)

	creds := gin.H{"username": "alice", "password": "hunter2"}
	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", creds)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := doJSON(t, r, http.MethodPost, "/api/auth/login", creds)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, resp["token"])

	w, _ = doJSON(t, r, http.MethodPost, "/api/auth/login",
		gin.H{"username": "alice", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
