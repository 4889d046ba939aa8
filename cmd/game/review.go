package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"dndadventure/internal/logging"
)

// runReviewMode prints the most recent logged narrations so prompt tweaks
// can be judged against real output.
func runReviewMode() {
	logger, err := logging.NewNarrationLogger()
	if err != nil {
		fmt.Printf("Failed to open narration database: %v\n", err)
		return
	}
	defer logger.Close()

	narrations, err := logger.Recent(10)
	if err != nil {
		fmt.Printf("Failed to get narrations: %v\n", err)
		return
	}

	if len(narrations) == 0 {
		fmt.Println("No narrations found. Play the game first to generate data!")
		return
	}

	fmt.Printf("Recent narrations (%d):\n\n", len(narrations))

	for _, entry := range narrations {
		var metadata logging.NarrationMetadata
		if err := json.Unmarshal([]byte(entry.Metadata), &metadata); err == nil {
			fmt.Printf("[%d] %s | %s | %s | %v\n",
				entry.ID,
				entry.Timestamp.Format("15:04:05"),
				entry.Event,
				metadata.Model,
				metadata.ResponseTime)
			if metadata.Error != nil {
				fmt.Printf("Error: %s\n", *metadata.Error)
			}
		} else {
			fmt.Printf("[%d] %s | %s\n", entry.ID, entry.Timestamp.Format("15:04:05"), entry.Event)
		}

		if entry.Response != "" {
			fmt.Printf("Response: %s\n", entry.Response)
		}
		fmt.Println(strings.Repeat("-", 50))
	}
}
