//go:build mage

// Package main contains Mage build targets for zenodo-mirror developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	dataDir = "data"
	binDir  = "bin"
	binName = "zenodo-mirror"
	cmdPkg  = "./cmd/zenodo-mirror"
)

// Init creates the local data directory the mirror writes into.
func Init() error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dataDir, err)
	}
	fmt.Println("  ", dataDir)
	fmt.Println("Data directory initialized.")
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// All builds the binary and runs the tests.
func All() {
	mg.Deps(Build, Test)
}

// Clean removes build output. Mirrored data is never touched.
func Clean() error {
	return sh.Rm(binDir)
}
