package main

import (
	"os"

	"github.com/joho/godotenv"
)

func newRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CheckDepsCommand{})
	r.Register(&CheckStorageCommand{})
	r.Register(&CheckCoverageCommand{})
	r.Register(&DeadLettersCommand{})
	r.Register(&HealthCheckCommand{})
	r.Register(&WatchEventsCommand{})
	return r
}

func main() {
	_ = godotenv.Load()

	registry := newRegistry()
	if len(os.Args) < 2 {
		registry.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		PrintError("Unknown command %q", os.Args[1])
		registry.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	if err := cmd.Run(os.Args[2:]); err != nil {
		PrintError("%s failed: %v", cmd.Name(), err)
		os.Exit(1)
	}
}
