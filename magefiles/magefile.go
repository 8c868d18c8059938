//go:build mage

// Package main contains Mage build targets for puml2drawio.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir       = "bin"
	binName      = "puml2drawio"
	cmdPkg       = "./cmd/puml2drawio"
	buildinfoPkg = "github.com/matzehuels/puml2drawio/pkg/buildinfo"
)

// ldflags stamps version, commit and build date into pkg/buildinfo.
func ldflags() string {
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || version == "" {
		version = "dev"
	}
	commit, err := sh.Output("git", "rev-parse", "HEAD")
	if err != nil || commit == "" {
		commit = "none"
	}
	date := time.Now().UTC().Format(time.RFC3339)

	return strings.Join([]string{
		"-X " + buildinfoPkg + ".Version=" + version,
		"-X " + buildinfoPkg + ".Commit=" + commit,
		"-X " + buildinfoPkg + ".Date=" + date,
	}, " ")
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-ldflags", ldflags(), "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Install installs the CLI into GOBIN.
func Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), cmdPkg)
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Check vets the module and runs the tests.
func Check() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	mg.Deps(Test)
	return nil
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}
