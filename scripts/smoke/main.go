// Command smoke signs in against a running instance and walks the main API
// surface, reporting one line per endpoint. Intended for post-deploy checks.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type target struct {
	method string
	path   string
	want   int
}

func main() {
	var (
		base     string
		email    string
		password string
		timeout  time.Duration
	)
	flag.StringVar(&base, "base", "http://localhost:8080", "API base URL")
	flag.StringVar(&email, "email", "admin@harmonylane.example", "admin email")
	flag.StringVar(&password, "password", "changeme", "admin password")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "per-request timeout")
	flag.Parse()

	client := &http.Client{Timeout: timeout}

	token, err := login(client, base, email, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "login failed: %v\n", err)
		os.Exit(1)
	}

	targets := []target{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/api/v1/auth/me", http.StatusOK},
		{http.MethodGet, "/api/v1/students", http.StatusOK},
		{http.MethodGet, "/api/v1/teachers", http.StatusOK},
		{http.MethodGet, "/api/v1/batches", http.StatusOK},
		{http.MethodGet, "/api/v1/courses", http.StatusOK},
		{http.MethodGet, "/api/v1/exports/students?format=csv", http.StatusOK},
	}

	failures := 0
	for _, tg := range targets {
		status, err := hit(client, tg.method, base+tg.path, token)
		switch {
		case err != nil:
			failures++
			fmt.Printf("FAIL %-6s %-40s %v\n", tg.method, tg.path, err)
		case status != tg.want:
			failures++
			fmt.Printf("FAIL %-6s %-40s got %d want %d\n", tg.method, tg.path, status, tg.want)
		default:
			fmt.Printf("OK   %-6s %-40s %d\n", tg.method, tg.path, status)
		}
	}

	if failures > 0 {
		fmt.Printf("%d of %d checks failed\n", failures, len(targets))
		os.Exit(1)
	}
	fmt.Printf("all %d checks passed\n", len(targets))
}

func login(client *http.Client, base, email, password string) (string, error) {
	payload, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := client.Post(base+"/api/v1/auth/login", "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}

	var envelope struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", err
	}
	if envelope.Data.AccessToken == "" {
		return "", fmt.Errorf("empty access token")
	}
	return envelope.Data.AccessToken, nil
}

func hit(client *http.Client, method, url, token string) (int, error) {
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	io.Copy(io.Discard, resp.Body) //nolint:errcheck
	resp.Body.Close()
	return resp.StatusCode, nil
}
