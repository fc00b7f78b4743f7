//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - run the test suite
var Default = Test

// Build compiles every package
func Build() error {
	return sh.RunV("go", "build", "./...")
}

// Test runs the test suite with race detection
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Cover writes a coverage profile and prints the per-function summary
func Cover() error {
	if err := sh.RunV("go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func=coverage.out")
}

// Lint runs go vet plus staticcheck when installed
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	return runOptionalTool("go install honnef.co/go/tools/cmd/staticcheck@latest",
		"staticcheck", "./...")
}

// runOptionalTool runs a linter that may not be installed. Only the
// not-found case is tolerated; a tool that ran and failed fails the target.
func runOptionalTool(install string, cmd string, args ...string) error {
	err := sh.RunV(cmd, args...)
	if err == nil || sh.CmdRan(err) {
		return err
	}
	fmt.Printf("⚠️  %s not found (install: %s)\n", cmd, install)
	return nil
}

// Fmt formats the tree
func Fmt() error {
	return sh.RunV("go", "fmt", "./...")
}

// CI runs everything the pipeline runs
func CI() error {
	mg.Deps(Fmt, Lint)
	return Test()
}
