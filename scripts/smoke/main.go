// Command smoke exercises a running server end to end: it logs in with a
// seeded teacher account and walks the core read endpoints, failing on any
// unexpected status.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

type check struct {
	Method string
	Path   string
	Want   int
}

var checks = []check{
	{http.MethodGet, "/health", http.StatusOK},
	{http.MethodGet, "/ready", http.StatusOK},
	{http.MethodGet, "/metrics", http.StatusOK},
	{http.MethodGet, "/api/v1/teachers", http.StatusOK},
	{http.MethodGet, "/api/v1/parents", http.StatusOK},
	{http.MethodGet, "/api/v1/students", http.StatusOK},
	{http.MethodGet, "/api/v1/assignments", http.StatusOK},
	{http.MethodGet, "/api/v1/exams", http.StatusOK},
	{http.MethodGet, "/api/v1/messages", http.StatusOK},
}

func main() {
	var (
		base     string
		username string
		password string
		timeout  time.Duration
	)

	flag.StringVar(&base, "base", "http://localhost:8080", "API base URL")
	flag.StringVar(&username, "username", "MathTeacher", "Login username")
	flag.StringVar(&password, "password", "Math", "Login password")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	client := &http.Client{Timeout: timeout}

	token, err := login(client, base, username, password)
	if err != nil {
		log.Fatalf("login failed: %v", err)
	}

	failed := 0
	for _, c := range checks {
		status, dur, err := perform(client, base, token, c)
		switch {
		case err != nil:
			failed++
			fmt.Printf("FAIL %-6s %-28s %v\n", c.Method, c.Path, err)
		case status != c.Want:
			failed++
			fmt.Printf("FAIL %-6s %-28s got %d want %d (%s)\n", c.Method, c.Path, status, c.Want, dur)
		default:
			fmt.Printf("ok   %-6s %-28s %d (%s)\n", c.Method, c.Path, status, dur)
		}
	}

	fmt.Printf("Failed checks: %d of %d\n", failed, len(checks))
	if failed > 0 {
		os.Exit(1)
	}
}

func login(client *http.Client, base, username, password string) (string, error) {
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	resp, err := client.Post(base+"/api/v1/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("status %d: %s", resp.StatusCode, raw)
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
		return "", fmt.Errorf("response carried no access token")
	}
	return envelope.Data.AccessToken, nil
}

func perform(client *http.Client, base, token string, c check) (int, time.Duration, error) {
	req, err := http.NewRequest(c.Method, base+c.Path, nil)
	if err != nil {
		return 0, 0, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	start := time.Now()
	resp, err := client.Do(req)
	dur := time.Since(start)
	if err != nil {
		return 0, dur, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body) //nolint:errcheck
	return resp.StatusCode, dur, nil
}
