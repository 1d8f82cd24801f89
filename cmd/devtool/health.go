package main

import (
	"fmt"
	"net/http"
	"os"
	"time"
)

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Probe a running server's liveness and readiness endpoints"
}

func (c *HealthCheckCommand) Run(args []string) error {
	baseURL := apiURL()
	if len(args) > 0 {
		baseURL = args[0]
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", baseURL))

	client := &http.Client{Timeout: 5 * time.Second}
	for _, path := range []string{"/healthz", "/readyz"} {
		start := time.Now()
		status, err := checkEndpoint(client, baseURL+path)
		duration := time.Since(start)
		if err != nil {
			PrintError("%s: %v", path, err)
			return err
		}
		if status != http.StatusOK {
			PrintError("%s returned %d", path, status)
			return fmt.Errorf("%s returned %d", path, status)
		}

		if duration > time.Second {
			PrintWarning("%s ok but slow (%v)", path, duration)
		} else {
			PrintSuccess("%s ok (%v)", path, duration)
		}
	}
	return nil
}

func checkEndpoint(client *http.Client, url string) (int, error) {
	resp, err := client.Get(url)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

func apiURL() string {
	if u := os.Getenv("API_URL"); u != "" {
		return u
	}
	return "http://localhost:8080"
}
