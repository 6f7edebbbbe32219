package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	MySQL  MySQLConfig  `mapstructure:"mysql"`
	Redis  RedisConfig  `mapstructure:"redis"`
	MQ     MQConfig     `mapstructure:"mq"`
	JWT    JWTConfig    `mapstructure:"jwt"`
	Game   GameConfig   `mapstructure:"game"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
	// PublicIP/PublicPort are what the match API hands back to clients
	// so they know where to open the websocket.
	PublicIP   string `mapstructure:"public_ip"`
	PublicPort int    `mapstructure:"public_port"`
}

type MySQLConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type MQConfig struct {
	Url       string `mapstructure:"url"`
	QueueName string `mapstructure:"queue_name"`
}

type JWTConfig struct {
	Secret         string `mapstructure:"secret"`
	ExpireDuration string `mapstructure:"expire_duration"`
}

type GameConfig struct {
	MapSize float64 `mapstructure:"map_size"`
	// RunSpeedThreshold is in units per second. Squared before use so the
	// simulation never has to take a square root.
	RunSpeedThreshold float64 `mapstructure:"run_speed_threshold"`
	BroadcastHz       int     `mapstructure:"broadcast_hz"`
}

var AppConfig *Config

func InitConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config: %v", err)
	}
	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode config: %v", err)
	}
	log.Println("Config loaded successfully")
}
