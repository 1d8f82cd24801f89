package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// getChangedPackages returns the Go packages with local changes against HEAD
func getChangedPackages() ([]string, error) {
	//nolint:forbidigo
	out, err := getCommandOutput("git", "diff", "HEAD", "--name-only", "--diff-filter=ACMR")
	if err != nil {
		return nil, fmt.Errorf("failed to get changed files: %w", err)
	}

	if out == "" {
		return []string{}, nil
	}

	return packagesFromFiles(strings.Split(out, "\n")), nil
}

// packagesFromFiles maps changed file paths to go test package patterns.
// A changed go.mod or go.sum means everything.
func packagesFromFiles(files []string) []string {
	packageSet := make(map[string]bool)
	testAll := false

	for _, file := range files {
		file = strings.TrimSpace(file)
		if file == "" {
			continue
		}

		if file == "go.mod" || file == "go.sum" {
			testAll = true
			break
		}

		if strings.HasSuffix(file, ".go") {
			dir := filepath.Dir(file)
			// Convert to slash for Go package path consistency
			dir = filepath.ToSlash(dir)

			// Ensure path starts with ./ for go test
			if !strings.HasPrefix(dir, "./") && dir != "." {
				dir = "./" + dir
			} else if dir == "." {
				dir = "./"
			}
			packageSet[dir] = true
		}
	}

	if testAll {
		return []string{"./..."}
	}

	packages := make([]string, 0, len(packageSet))
	for pkg := range packageSet {
		packages = append(packages, pkg)
	}
	sort.Strings(packages)

	return packages
}
