package main

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"arena/internal/core"
	"arena/internal/dao"
	handlers "arena/internal/handler"
	"arena/internal/middleware"
	"arena/internal/mq"
	"arena/pkg/config"
)

func main() {
	config.InitConfig()

	mysqlCfg := config.AppConfig.MySQL
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		mysqlCfg.Username, mysqlCfg.Password, mysqlCfg.Host, mysqlCfg.Port, mysqlCfg.Database)
	dao.InitMySQL(dsn)

	// Room registry and websocket ticket validation live in Redis.
	dao.InitRedis()

	mq.InitMQ()
	go mq.StartConsumer()

	if config.AppConfig.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middleware.Cors())

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", handlers.HandleLogin)
			auth.POST("/register", handlers.HandleRegister)
		}

		user := api.Group("/user")
		user.Use(middleware.AuthMiddleware())
		{
			user.GET("/history", handlers.HandleGetHistory)
		}

		match := api.Group("/match")
		match.Use(middleware.AuthMiddleware())
		{
			match.POST("/create", handlers.HandleCreateRoom)
			match.GET("/rooms", handlers.HandleListRooms)
			match.POST("/join", handlers.HandleJoinRoom)
		}
	}

	r.GET("/ws", core.HandleWebSocket)

	addr := fmt.Sprintf(":%d", config.AppConfig.Server.Port)
	fmt.Printf("Arena server running on %s\n", addr)
	r.Run(addr)
}
