package mq

import (
	"encoding/json"
	"log"

	"arena/internal/dao"
	"arena/model"
	"arena/pkg/config"
)

// StartConsumer drains match results off the queue and persists them as
// match history. Runs until the channel is closed.
func StartConsumer() {
	msgs, err := Channel.Consume(
		config.AppConfig.MQ.QueueName,
		"",
		false, // auto-ack
		false, false, false, nil,
	)
	if err != nil {
		log.Fatalf("Failed to register consumer: %v", err)
	}

	log.Printf("MQ Consumer started, waiting for messages on queue: %s", config.AppConfig.MQ.QueueName)

	for msg := range msgs {
		var result MatchResult
		if err := json.Unmarshal(msg.Body, &result); err != nil {
			log.Printf("Failed to unmarshal message: %v", err)
			msg.Nack(false, false)
			continue
		}

		if err := saveMatchResult(&result); err != nil {
			log.Printf("Failed to save match result: %v", err)
			msg.Nack(false, true) // requeue
			continue
		}

		msg.Ack(false)
		log.Printf("Match result saved: match_id=%s, winner=%d", result.MatchID, result.Winner)
	}
}

func saveMatchResult(result *MatchResult) error {
	history := &model.MatchHistory{
		MatchID:   result.MatchID,
		UserID:    uint(result.Winner),
		IsWinner:  true,
		Timestamp: result.Timestamp,
	}
	return dao.AddHistory(history)
}
