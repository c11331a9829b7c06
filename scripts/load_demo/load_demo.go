package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"exam-command-center/be/models"
	"exam-command-center/be/store"

	"github.com/joho/godotenv"
)

// Replays the demo dataset against a running server through the public API.
// Useful as a smoke check, or to fill an instance started with
// SEED_DEMO_DATA=false.
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080/api/v1"
	}

	client := &http.Client{Timeout: 10 * time.Second}
	seed := store.SeedState()

	for _, room := range seed.Rooms {
		created, err := createRoom(client, baseURL, room)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", room.Name, err)
		}
		fmt.Printf("Created %s (id %d)\n", created.Name, created.ID)

		for _, camera := range room.Cameras {
			if err := createCamera(client, baseURL, created.ID, camera); err != nil {
				log.Fatalf("Failed to create %s in %s: %v", camera.Name, room.Name, err)
			}
			fmt.Printf("  Added %s\n", camera.Name)
		}
	}

	fmt.Println("Demo dataset loaded successfully")
}

func createRoom(client *http.Client, baseURL string, room models.Room) (*models.Room, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"name":     room.Name,
		"capacity": room.Capacity,
		"floor":    room.Floor,
		"status":   room.Status,
		"note":     room.Note,
	})
	if err != nil {
		return nil, err
	}

	resp, err := client.Post(baseURL+"/rooms", "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var created models.Room
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func createCamera(client *http.Client, baseURL string, roomID uint, camera models.Camera) error {
	payload, err := json.Marshal(map[string]interface{}{
		"name":       camera.Name,
		"status":     camera.Status,
		"stream_url": camera.StreamURL,
		"note":       camera.Note,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/rooms/%d/cameras", baseURL, roomID)
	resp, err := client.Post(url, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
