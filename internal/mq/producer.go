package mq

import (
	"encoding/json"
	"log"

	"github.com/streadway/amqp"

	"arena/pkg/config"
)

var (
	Conn    *amqp.Connection
	Channel *amqp.Channel
)

// MatchResult travels from the room engine to the history consumer.
type MatchResult struct {
	MatchID   string `json:"match_id"`
	Winner    int64  `json:"winner"`
	Timestamp int64  `json:"timestamp"`
}

func InitMQ() {
	var err error
	Conn, err = amqp.Dial(config.AppConfig.MQ.Url)
	if err != nil {
		log.Fatalf("MQ connect failed: %v", err)
	}

	Channel, err = Conn.Channel()
	if err != nil {
		log.Fatalf("MQ channel failed: %v", err)
	}

	_, err = Channel.QueueDeclare(
		config.AppConfig.MQ.QueueName,
		true, false, false, false, nil,
	)
	if err != nil {
		log.Fatalf("MQ queue declare failed: %v", err)
	}
}

func PublishMatchResult(result MatchResult) {
	if Channel == nil {
		return // MQ not configured (tests, local runs)
	}

	body, _ := json.Marshal(result)
	err := Channel.Publish(
		"",
		config.AppConfig.MQ.QueueName,
		false, false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		log.Printf("Failed to publish result: %v", err)
	}
}
