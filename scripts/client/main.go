package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Walks the hook endpoints of a running service: create, read, list,
// rename, delete. AUTH_TOKEN must be accepted by the authorization service.

type hook struct {
	Type      string `json:"type"`
	EventType string `json:"eventType"`
	Name      string `json:"name"`
	URL       string `json:"url,omitempty"`
}

var (
	baseURL = "http://localhost:8080"
	token   = os.Getenv("AUTH_TOKEN")
)

func call(method, path string, body any) (int, []byte) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Auth-Token", token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	fmt.Printf("%s %s -> %s %s\n", method, path, resp.Status, string(data))
	return resp.StatusCode, data
}

func expect(got, want int) {
	if got != want {
		fmt.Printf("expected status %d, got %d\n", want, got)
		os.Exit(1)
	}
}

func main() {
	if v := os.Getenv("BASE_URL"); v != "" {
		baseURL = v
	}

	status, _ := call(http.MethodPost, "/hooks", hook{Type: "web", EventType: "PING", Name: "smoke", URL: "https://example.com/ping"})
	expect(status, http.StatusCreated)

	status, _ = call(http.MethodPost, "/hooks", hook{Type: "web", EventType: "PING", Name: "smoke", URL: "https://example.com/ping"})
	expect(status, http.StatusConflict)

	status, _ = call(http.MethodGet, "/hooks/smoke", nil)
	expect(status, http.StatusOK)

	status, _ = call(http.MethodGet, "/hooks?page=0&size=20", nil)
	expect(status, http.StatusOK)

	status, _ = call(http.MethodPut, "/hooks/smoke", hook{Type: "web", EventType: "ENROLLMENT", Name: "smoke-renamed", URL: "https://example.com/enroll"})
	expect(status, http.StatusOK)

	status, _ = call(http.MethodDelete, "/hooks/smoke-renamed", nil)
	expect(status, http.StatusNoContent)

	status, _ = call(http.MethodGet, "/hooks/smoke-renamed", nil)
	expect(status, http.StatusNotFound)

	fmt.Println("All hook endpoints behaved as expected")
}
