//go:build mage

package main

import (
	"testing"
)

func TestRunOptionalTool_ReturnsError_When_ToolRanAndFailed(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	// `go` exists everywhere this runs, and vet on a missing package path
	// runs and exits nonzero.
	err := runOptionalTool("n/a", "go", "vet", "./no/such/package")
	if err == nil {
		t.Fatal("expected an error from a tool that ran and exited nonzero")
	}
}

func TestRunOptionalTool_SwallowsError_When_ToolMissing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	err := runOptionalTool("n/a", "no-such-linter-binary")
	if err != nil {
		t.Fatalf("expected a missing tool to be tolerated, got: %v", err)
	}
}
