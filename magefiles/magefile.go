// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build mage

// Package main contains Mage build targets for content-analysis developer tooling.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// projectDirs lists the working directories the CLI expects.
var projectDirs = []string{
	".content-analysis",
	".secrets",
}

const (
	binDir     = "bin"
	binName    = "content-analysis"
	cmdPkg     = "./cmd/content-analysis"
	sampleDir  = "testdata"
	configFile = "content-analysis.yaml"
)

const sampleConfig = `# content-analysis configuration
analysis:
  default_locale: en_US
  workers: 4
store:
  index_dir: .content-analysis
fetch:
  timeout: 30s
  max_retries: 5
suggest:
  model: claude-sonnet-4-5
  max_fragments: 5
`

// Init creates the working directories and a starter config file.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := os.WriteFile(configFile, []byte(sampleConfig), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", configFile, err)
		}
		fmt.Println("  ", configFile)
	}
	fmt.Println("Project initialized.")
	return nil
}

// Build compiles the CLI binary into bin/, stamping the version from git.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-ldflags", "-X main.version="+version, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s (%s)\n", out, version)
	return nil
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Analyze builds the CLI and runs every assessment on the sample pages.
func Analyze() error {
	mg.Deps(Build)

	entries, err := os.ReadDir(sampleDir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", sampleDir, err)
	}
	args := []string{"analyze", "--marks"}
	for _, e := range entries {
		if !e.IsDir() {
			args = append(args, filepath.Join(sampleDir, e.Name()))
		}
	}
	return sh.RunV(filepath.Join(binDir, binName), args...)
}

// Stats prints project metrics: Go packages, source and test files, test
// functions and documentation word count.
func Stats() error {
	var s stats
	err := filepath.WalkDir(".", func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != "." && (strings.HasPrefix(d.Name(), ".") || strings.HasPrefix(d.Name(), "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		return s.add(path)
	})
	if err != nil {
		return err
	}

	fmt.Printf("Packages (Go):           %d\n", len(s.packages))
	fmt.Printf("Files (Go, production):  %d\n", s.prodFiles)
	fmt.Printf("Files (Go, tests):       %d\n", s.testFiles)
	fmt.Printf("Test functions:          %d\n", s.testFuncs)
	fmt.Printf("Words (documentation):   %d\n", s.docWords)
	return nil
}

type stats struct {
	packages  map[string]bool
	prodFiles int
	testFiles int
	testFuncs int
	docWords  int
}

func (s *stats) add(path string) error {
	switch filepath.Ext(path) {
	case ".go":
		if s.packages == nil {
			s.packages = map[string]bool{}
		}
		s.packages[filepath.Dir(path)] = true
		if !strings.HasSuffix(path, "_test.go") {
			s.prodFiles++
			return nil
		}
		s.testFiles++
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		sc := bufio.NewScanner(bytes.NewReader(data))
		for sc.Scan() {
			if strings.HasPrefix(sc.Text(), "func Test") {
				s.testFuncs++
			}
		}
		return sc.Err()
	case ".md":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		s.docWords += len(strings.Fields(string(data)))
	}
	return nil
}
