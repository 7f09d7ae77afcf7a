package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"reflect"
	"strings"
	"time"
)

// Compares the gateway's cached list responses against the upstream
// collections they mirror. A diff usually means a stale snapshot or a
// normalization regression.

var collections = []string{
	"students", "teachers", "departments", "courses",
	"enrollments", "schedules", "exams", "payments",
}

type result struct {
	Collection string
	Match      bool
	Gateway    int
	Upstream   int
	Err        error
}

func main() {
	var (
		gatewayBase  string
		upstreamBase string
		token        string
		timeout      time.Duration
	)

	flag.StringVar(&gatewayBase, "gateway", "http://localhost:8080/api/v1", "gateway API base URL")
	flag.StringVar(&upstreamBase, "upstream", "http://localhost:8000/api", "upstream API base URL")
	flag.StringVar(&token, "token", "", "bearer token for the upstream (defaults to the session file)")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "HTTP client timeout")
	flag.Parse()

	if token == "" {
		token = tokenFromSessionFile("./.session/tokens.json")
	}

	client := &http.Client{Timeout: timeout}
	diffs := 0

	fmt.Println("Gateway Consistency Report")
	fmt.Println("==========================")
	for _, col := range collections {
		res := compare(client, gatewayBase, upstreamBase, token, col)
		status := "OK"
		if res.Err != nil {
			status = "ERROR"
			diffs++
		} else if !res.Match {
			status = "DIFF"
			diffs++
		}
		fmt.Printf("[%s] %s (gateway: %d rows, upstream: %d rows)\n", status, col, res.Gateway, res.Upstream)
		if res.Err != nil {
			fmt.Printf("  %v\n", res.Err)
		}
	}

	if diffs > 0 {
		os.Exit(1)
	}
}

func compare(client *http.Client, gatewayBase, upstreamBase, token, col string) result {
	res := result{Collection: col}

	gatewayRows, err := fetchGatewayList(client, strings.TrimRight(gatewayBase, "/")+"/"+col)
	if err != nil {
		res.Err = fmt.Errorf("gateway: %w", err)
		return res
	}
	upstreamRows, err := fetchUpstreamList(client, strings.TrimRight(upstreamBase, "/")+"/"+col+"/", token)
	if err != nil {
		res.Err = fmt.Errorf("upstream: %w", err)
		return res
	}

	res.Gateway = len(gatewayRows)
	res.Upstream = len(upstreamRows)
	res.Match = reflect.DeepEqual(gatewayRows, upstreamRows)
	return res
}

// fetchGatewayList unwraps the gateway's response envelope.
func fetchGatewayList(client *http.Client, url string) ([]interface{}, error) {
	body, err := fetch(client, url, "")
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Data []interface{} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// fetchUpstreamList accepts both a bare array and a results wrapper.
func fetchUpstreamList(client *http.Client, url, token string) ([]interface{}, error) {
	body, err := fetch(client, url, token)
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		var rows []interface{}
		if err := json.Unmarshal(body, &rows); err != nil {
			return nil, err
		}
		return rows, nil
	}
	var wrapper struct {
		Results []interface{} `json:"results"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, err
	}
	return wrapper.Results, nil
}

func fetch(client *http.Client, url, token string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func tokenFromSessionFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var tokens struct {
		Access string `json:"access_token"`
	}
	if err := json.Unmarshal(data, &tokens); err != nil {
		log.Printf("unreadable session file %s: %v", path, err)
		return ""
	}
	return tokens.Access
}
