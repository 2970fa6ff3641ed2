// ABOUTME: Tests for version command
// ABOUTME: Verifies build information is printed
package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCmd_Output(t *testing.T) {
	old := versionInfo
	t.Cleanup(func() { versionInfo = old })
	SetVersion("1.2.3", "abc123", "2026-01-02")

	cmd := NewRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	out := output.String()
	for _, want := range []string{"vibemem 1.2.3", "abc123", "2026-01-02"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q should contain %q", out, want)
		}
	}
}

func TestNewMCPCmd(t *testing.T) {
	cmd := NewMCPCmd()

	if cmd.Use != "mcp" {
		t.Errorf("Use = %q, want mcp", cmd.Use)
	}
	if !strings.Contains(cmd.Long, "MCP") {
		t.Error("Long description should mention MCP")
	}
	if !strings.Contains(cmd.Long, "stdio") {
		t.Error("Long description should mention stdio")
	}
	if cmd.Example == "" {
		t.Error("Example should show desktop configuration")
	}
}
