package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/segmentio/kafka-go"
)

// Steps:
// 1. Register a web hook on PING for the token's user through the API
// 2. Publish a ping for that user to the inbound ping topic
// 3. Read the web destination topic until the envelope for the hook shows up
// 4. Remove the hook

const (
	baseURL     = "http://localhost:8080"
	broker      = "localhost:9092"
	pingTopic   = "device.ping"
	webTopic    = "hooks.web"
	hookName    = "e2e-ping"
	readTimeout = time.Minute
)

type envelope struct {
	DeviceEvent struct {
		UnitID string `json:"unitId"`
	} `json:"deviceEvent"`
	Hook struct {
		Name   string `json:"name"`
		UserID string `json:"userId"`
	} `json:"hook"`
}

func main() {
	token := os.Getenv("AUTH_TOKEN")
	userID := os.Getenv("USER_ID")
	if token == "" || userID == "" {
		fmt.Println("AUTH_TOKEN and USER_ID are required")
		os.Exit(1)
	}

	body, _ := json.Marshal(map[string]string{
		"type":      "web",
		"eventType": "PING",
		"name":      hookName,
		"url":       "https://example.com/e2e",
	})
	req, _ := http.NewRequest(http.MethodPost, baseURL+"/hooks", bytes.NewReader(body))
	req.Header.Set("X-Auth-Token", token)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	resp.Body.Close()
	fmt.Println("POST /hooks status:", resp.Status)
	defer func() {
		req, _ := http.NewRequest(http.MethodDelete, baseURL+"/hooks/"+hookName, nil)
		req.Header.Set("X-Auth-Token", token)
		if resp, err := http.DefaultClient.Do(req); err == nil {
			resp.Body.Close()
			fmt.Println("DELETE /hooks status:", resp.Status)
		}
	}()

	// start reading before publishing so the envelope is not missed
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       webTopic,
		StartOffset: kafka.LastOffset,
	})
	defer reader.Close()

	unitID := fmt.Sprintf("e2e-%d", time.Now().UnixNano())
	ping, _ := json.Marshal(map[string]any{
		"userId": userID,
		"unitId": unitID,
		"request": map[string]any{
			"userId":           userID,
			"unitId":           unitID,
			"customClientData": map[string]any{},
		},
		"response": map[string]any{},
	})

	writer := &kafka.Writer{Addr: kafka.TCP(broker), Topic: pingTopic, AllowAutoTopicCreation: true}
	defer writer.Close()
	if err := writer.WriteMessages(context.TODO(), kafka.Message{Key: []byte(unitID), Value: ping}); err != nil {
		panic(err)
	}
	fmt.Println("Published ping for unit", unitID)

	ctx, cancel := context.WithTimeout(context.Background(), readTimeout)
	defer cancel()
	for {
		m, err := reader.ReadMessage(ctx)
		if err != nil {
			fmt.Println("No envelope received:", err)
			os.Exit(1)
		}
		var e envelope
		if err := json.Unmarshal(m.Value, &e); err != nil {
			continue
		}
		if e.DeviceEvent.UnitID == unitID && e.Hook.Name == hookName {
			fmt.Printf("Received envelope on %s for hook %s of user %s\n", webTopic, e.Hook.Name, e.Hook.UserID)
			return
		}
	}
}
