package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

type CheckCoverageCommand struct{}

func (c *CheckCoverageCommand) Name() string {
	return "check-coverage"
}

func (c *CheckCoverageCommand) Description() string {
	return "Run tests with coverage and check against threshold"
}

type coverageConfig struct {
	file      string
	threshold float64
	runTests  bool
	html      bool
	smart     bool
	packages  []string
}

func (c *CheckCoverageCommand) Run(args []string) error {
	cfg, err := parseCoverageArgs(args)
	if err != nil {
		return err
	}

	if cfg.smart {
		changed, err := getChangedPackages()
		if err != nil {
			return fmt.Errorf("failed to get changed packages: %w", err)
		}
		if len(changed) == 0 {
			PrintInfo("Smart mode: no changes detected. Skipping tests.")
			return nil
		}
		PrintInfo("Smart mode: testing changed packages: %v", changed)
		cfg.packages = dedupe(append(cfg.packages, changed...))
	}

	PrintHeader(fmt.Sprintf("Checking coverage threshold (%.1f%%)...", cfg.threshold))

	if err := ensureCoverage(cfg); err != nil {
		return err
	}

	out, err := getCommandOutput("go", "tool", "cover", "-func="+cfg.file) // #nosec G204
	if err != nil {
		return fmt.Errorf("error running go tool cover: %w", err)
	}
	coverage, err := parseCoverageTotal(out)
	if err != nil {
		return err
	}

	PrintInfo("Total Coverage: %.1f%%", coverage)

	if cfg.html {
		htmlFile := strings.TrimSuffix(cfg.file, ".out") + ".html"
		if err := runCommand("go", "tool", "cover", "-html="+cfg.file, "-o", htmlFile); err != nil {
			PrintWarning("Failed to generate HTML report: %v", err)
		} else {
			PrintSuccess("HTML report generated: %s", htmlFile)
		}
	}

	if coverage < cfg.threshold {
		PrintError("Coverage is below threshold.")
		return fmt.Errorf("coverage below threshold")
	}

	PrintSuccess("Coverage meets threshold.")
	return nil
}

// parseCoverageArgs reads [flags] [file] [threshold] [packages...]
func parseCoverageArgs(args []string) (coverageConfig, error) {
	fs := flag.NewFlagSet("check-coverage", flag.ContinueOnError)
	runTests := fs.Bool("run", false, "Run tests before checking coverage")
	html := fs.Bool("html", false, "Generate an HTML coverage report")
	smart := fs.Bool("smart", false, "Run tests only on changed packages")
	pkgs := fs.String("pkgs", "", "Comma-separated list of packages to test")

	if err := fs.Parse(args); err != nil {
		return coverageConfig{}, err
	}

	cfg := coverageConfig{
		file:      "logs/coverage.out",
		threshold: 80,
		runTests:  *runTests,
		html:      *html,
		smart:     *smart,
	}

	positional := fs.Args()
	if len(positional) > 0 {
		cfg.file = filepath.Clean(positional[0])
	}
	if len(positional) > 1 {
		t, err := strconv.ParseFloat(positional[1], 64)
		if err != nil {
			return coverageConfig{}, fmt.Errorf("invalid threshold '%s'", positional[1])
		}
		cfg.threshold = t
		cfg.packages = append(cfg.packages, positional[2:]...)
	}

	if strings.Contains(cfg.file, "..") || filepath.IsAbs(cfg.file) {
		return coverageConfig{}, fmt.Errorf("invalid path '%s': must be relative and within project", cfg.file)
	}

	for _, p := range strings.Split(*pkgs, ",") {
		if p = strings.TrimSpace(p); p != "" {
			cfg.packages = append(cfg.packages, p)
		}
	}
	cfg.packages = dedupe(cfg.packages)
	return cfg, nil
}

func ensureCoverage(cfg coverageConfig) error {
	// A profile on disk may cover other packages, so explicit packages always rerun
	shouldRun := cfg.runTests || len(cfg.packages) > 0
	if _, err := os.Stat(cfg.file); os.IsNotExist(err) {
		PrintInfo("Coverage file '%s' not found. Running tests...", cfg.file)
		shouldRun = true
	}
	if !shouldRun {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.file), 0o755); err != nil {
		return fmt.Errorf("failed to create coverage directory: %w", err)
	}

	PrintInfo("Running tests with coverage...")

	testArgs := []string{"test"}
	if len(cfg.packages) > 0 {
		testArgs = append(testArgs, cfg.packages...)
	} else {
		testArgs = append(testArgs, "./...")
	}
	testArgs = append(testArgs, "-coverprofile="+cfg.file, "-covermode=atomic", "-race")

	// #nosec G204 - file and packages are validated
	cmd := exec.Command("go", testArgs...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("tests failed: %w", err)
	}
	PrintSuccess("Tests passed and coverage profile generated.")
	return nil
}

// parseCoverageTotal finds the percentage on the "total:" line of
// go tool cover -func output
func parseCoverageTotal(out string) (float64, error) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "total:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return 0, fmt.Errorf("unexpected output format")
		}
		pct := strings.TrimSuffix(fields[len(fields)-1], "%")
		coverage, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, fmt.Errorf("could not parse coverage percentage '%s'", pct)
		}
		return coverage, nil
	}
	return 0, fmt.Errorf("could not determine coverage from output")
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, it := range items {
		if !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	return out
}
