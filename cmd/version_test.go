package cmd

import "testing"

func TestResolveVersion(t *testing.T) {
	old := version
	defer func() { version = old }()

	version = "v1.4.0"
	if got := resolveVersion(); got != "v1.4.0" {
		t.Errorf("resolveVersion() = %q, want %q", got, "v1.4.0")
	}

	version = ""
	if got := resolveVersion(); got == "" {
		t.Error("resolveVersion() returned an empty string")
	}
}
