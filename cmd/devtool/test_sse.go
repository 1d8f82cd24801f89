package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

type WatchEventsCommand struct{}

func (c *WatchEventsCommand) Name() string {
	return "watch-events"
}

func (c *WatchEventsCommand) Description() string {
	return "Print the server's event stream for a while"
}

func (c *WatchEventsCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	duration := fs.Duration("for", 30*time.Second, "How long to listen")
	types := fs.String("types", "", "Comma-separated event types (default all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	url := apiURL() + "/api/v1/events"
	if *types != "" {
		url += "?types=" + *types
	}

	PrintHeader(fmt.Sprintf("Watching %s for %v", url, *duration))

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	if key := os.Getenv("API_KEY"); key != "" {
		req.Header.Set("X-API-Key", key)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	count := 0
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if event, ok := strings.CutPrefix(line, "event: "); ok {
			count++
			PrintInfo("%s %s", time.Now().Format(time.TimeOnly), event)
		} else if data, ok := strings.CutPrefix(line, "data: "); ok {
			fmt.Println("   " + data)
		}
	}

	PrintSuccess("Received %d event(s)", count)
	return nil
}
