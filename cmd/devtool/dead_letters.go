package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/osse101/DecisionSpinner_Go/internal/config"
	"github.com/osse101/DecisionSpinner_Go/internal/domain"
	"github.com/osse101/DecisionSpinner_Go/internal/event"
)

type DeadLettersCommand struct{}

func (c *DeadLettersCommand) Name() string {
	return "dead-letters"
}

func (c *DeadLettersCommand) Description() string {
	return "List events the server could not deliver"
}

func (c *DeadLettersCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	path := fs.String("path", "", "Dead-letter file (default EVENT_DEADLETTER_PATH)")
	eventType := fs.String("type", "", "Only show this event type, e.g. spin.settled")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *path == "" {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		*path = cfg.EventDeadLetterPath
	}

	PrintHeader(fmt.Sprintf("Dead letters in %s", *path))
	entries, err := event.ReadDeadLetters(*path)
	if err != nil {
		return err
	}

	shown := writeDeadLetters(os.Stdout, entries, event.Type(*eventType))
	if shown == 0 {
		PrintSuccess("No undelivered events")
		return nil
	}
	PrintWarning("%d undelivered event(s)", shown)
	return nil
}

// writeDeadLetters prints one row per entry matching filter (all when
// empty) followed by per-type totals, and returns the number of rows
func writeDeadLetters(w io.Writer, entries []event.DeadLetterEntry, filter event.Type) int {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	totals := make(map[event.Type]int)
	shown := 0

	for _, entry := range entries {
		if filter != "" && entry.EventType != filter {
			continue
		}
		shown++
		totals[entry.EventType]++
		fmt.Fprintf(tw, "%s\t%s\t%s\tattempts=%d\t%s\n",
			entry.Timestamp.Format(time.RFC3339),
			entry.EventType,
			describeDeadLetter(entry),
			entry.Attempts,
			entry.LastError)
	}

	if shown > 0 {
		types := make([]string, 0, len(totals))
		for typ := range totals {
			types = append(types, string(typ))
		}
		sort.Strings(types)
		fmt.Fprintln(tw)
		for _, typ := range types {
			fmt.Fprintf(tw, "%s\t%d\n", typ, totals[event.Type(typ)])
		}
	}
	_ = tw.Flush()
	return shown
}

func describeDeadLetter(entry event.DeadLetterEntry) string {
	switch entry.EventType {
	case event.SpinSettled:
		if p, err := event.PayloadAs[domain.SpinSettledPayload](entry.Event); err == nil {
			return fmt.Sprintf("spin %s won by %q of %d", p.SpinID, p.Winner.Text, p.TotalOptions)
		}
	case event.OptionsChanged:
		if p, err := event.PayloadAs[domain.OptionsChangedPayload](entry.Event); err == nil {
			return fmt.Sprintf("%s to %d option(s), revision %d", p.Action, p.OptionCount, p.Revision)
		}
	case event.HistoryRecorded:
		if p, err := event.PayloadAs[domain.HistoryRecordedPayload](entry.Event); err == nil {
			return fmt.Sprintf("history entry %q, %d stored", p.Entry.Winner.Text, p.Count)
		}
	}
	if entry.SpinID != "" {
		return "spin " + entry.SpinID
	}
	return "-"
}
