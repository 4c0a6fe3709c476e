package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-inventory/internal/entities/save"
	"github.com/KirkDiggler/rpg-inventory/internal/repositories/gamesave"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for corrupted game saves...")

	iter := client.Scan(ctx, 0, gamesave.Key("*"), 0).Iterator()

	var corruptedKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		if problem := checkSave(data); problem != "" {
			fmt.Printf("✗ %s: %s\n", key, problem)
			corruptedKeys = append(corruptedKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d corrupted entries\n", checkedCount, len(corruptedKeys))

	if len(corruptedKeys) == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	fmt.Println("\nCorrupted keys:")
	for _, key := range corruptedKeys {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDo you want to DELETE these corrupted entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range corruptedKeys {
		pipe := client.TxPipeline()
		pipe.Del(ctx, key)
		if id, ok := gamesave.IDFromKey(key); ok {
			pipe.SRem(ctx, gamesave.IndexKey, id)
		}
		if _, err := pipe.Exec(ctx); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete!")
}

// checkSave returns a description of what is wrong with a stored save, or
// an empty string when it would load cleanly
func checkSave(data string) string {
	var gs save.GameSave
	if err := json.Unmarshal([]byte(data), &gs); err != nil {
		return "corrupted JSON"
	}
	if gs.ID == "" {
		return "missing save ID"
	}

	for objectID, obj := range gs.Objects {
		if obj == nil {
			return fmt.Sprintf("object %s is null", objectID)
		}
		for scene, sceneSave := range obj.Scenes {
			if sceneSave == nil {
				continue
			}
			for i, slot := range sceneSave.Inventory {
				if !slot.IsValid() {
					return fmt.Sprintf("object %s scene %s slot %d holds code %d with quantity %d",
						objectID, scene, i, slot.ItemCode, slot.Quantity)
				}
			}
		}
	}
	return ""
}
