// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type CensusRefreshEvent struct {
	RequestID     uuid.UUID `json:"request_id"`
	StateFIPS     string    `json:"state_fips"`
	FacilityNames []string  `json:"facility_names,omitempty"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	stateFIPS := flag.String("state", "13", "State FIPS code to refresh")
	facility := flag.String("facility", "hospitals", "Facility name, empty for all")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Тестовое событие
	event := CensusRefreshEvent{
		RequestID: uuid.New(),
		StateFIPS: *stateFIPS,
	}
	if *facility != "" {
		event.FacilityNames = []string{*facility}
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:census:refresh",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: stream:census:refresh\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Request ID: %s\n", event.RequestID)
	fmt.Printf("   State FIPS: %s\n", event.StateFIPS)

	// Ожидание ответа
	fmt.Printf("\n⏳ Waiting for response in stream:census:done...\n")

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	lastID := "0"
	for {
		select {
		case <-timeout:
			fmt.Println("❌ Timeout waiting for response")
			return
		case <-ticker.C:
			results, err := client.XRead(ctx, &redis.XReadArgs{
				Streams: []string{"stream:census:done", lastID},
				Count:   10,
				Block:   100 * time.Millisecond,
			}).Result()

			if err != nil && err != redis.Nil {
				continue
			}

			for _, stream := range results {
				for _, msg := range stream.Messages {
					lastID = msg.ID
					dataStr, ok := msg.Values["data"].(string)
					if !ok {
						continue
					}

					var done struct {
						RequestID uuid.UUID `json:"request_id"`
						StateFIPS string    `json:"state_fips"`
						Summaries int       `json:"summaries"`
						Error     string    `json:"error,omitempty"`
					}
					if err := json.Unmarshal([]byte(dataStr), &done); err != nil {
						continue
					}
					if done.RequestID != event.RequestID {
						continue
					}

					if done.Error != "" {
						fmt.Printf("❌ Refresh failed: %s\n", done.Error)
					} else {
						fmt.Printf("✅ Refreshed %d summaries for state %s\n", done.Summaries, done.StateFIPS)
					}
					return
				}
			}
		}
	}
}
