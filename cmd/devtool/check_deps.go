package main

import (
	"fmt"
	"strings"
)

type CheckDepsCommand struct{}

func (c *CheckDepsCommand) Name() string {
	return "check-deps"
}

func (c *CheckDepsCommand) Description() string {
	return "Check for required development tools"
}

type toolCheck struct {
	name     string
	args     []string
	required bool
	hint     string
}

var toolChecks = []toolCheck{
	{"go", []string{"version"}, true, "Install from: https://go.dev/dl/"},
	{"docker", []string{"--version"}, false, "Needed for the Postgres integration tests: https://docs.docker.com/get-docker/"},
	{"make", []string{"--version"}, false, "Install via package manager (e.g., sudo apt install make)"},
	{"goose", []string{"--version"}, false, "Run: go install github.com/pressly/goose/v3/cmd/goose"},
	{"swag", []string{"--version"}, false, "Run: go install github.com/swaggo/swag/cmd/swag"},
}

func (c *CheckDepsCommand) Run(_ []string) error {
	PrintHeader("Checking dependencies...")

	missing := 0
	for _, tc := range toolChecks {
		out, err := getCommandOutput(tc.name, tc.args...)
		if err == nil {
			PrintSuccess("%s installed: %s", tc.name, toolVersion(out))
			continue
		}
		if tc.required {
			PrintError("%s not found!", tc.name)
			missing++
		} else {
			PrintWarning("%s not found (optional)", tc.name)
		}
		fmt.Println("   " + tc.hint)
	}

	if missing > 0 {
		return fmt.Errorf("%d required tool(s) missing", missing)
	}
	PrintSuccess("Environment check complete!")
	return nil
}

// toolVersion picks the version token out of a --version line, e.g.
// "go version go1.24.0 linux/amd64" or "goose version:v3.26.0"
func toolVersion(out string) string {
	line := strings.SplitN(out, "\n", 2)[0]
	for _, f := range strings.Fields(line) {
		f = strings.TrimPrefix(strings.TrimRight(f, ","), "version:")
		if isVersion(f) {
			return f
		}
	}
	return line
}

func isVersion(f string) bool {
	f = strings.TrimPrefix(f, "go")
	f = strings.TrimPrefix(f, "v")
	return f != "" && f[0] >= '0' && f[0] <= '9'
}
