package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()

	var out, errOut bytes.Buffer
	root := Root()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		t.Fatalf("ruin %s: %v", strings.Join(args, " "), err)
	}

	return out.String()
}

func TestRootReport(t *testing.T) {
	out := execute(t, "--seed", "42")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines of output, want 2:\n%s", len(lines), out)
	}

	if !strings.HasPrefix(lines[0], "It took ") || !strings.HasSuffix(lines[0], " cycles for 1 player to win.") {
		t.Errorf("bad cycle count line %q", lines[0])
	}

	if !strings.HasPrefix(lines[1], "The winner is ") || !strings.HasSuffix(lines[1], ": 50") {
		t.Errorf("bad winner line %q", lines[1])
	}
}

func TestRootSeedReproducible(t *testing.T) {
	if first, second := execute(t, "--seed", "3"), execute(t, "--seed", "3"); first != second {
		t.Fatalf("same seed gave different reports:\n%s\n%s", first, second)
	}
}

func TestRootRejectsArgs(t *testing.T) {
	root := Root()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"extra"})

	if err := root.Execute(); err == nil {
		t.Fatalf("ruin accepted a positional argument")
	}
}

func TestRootRejectsBadSeed(t *testing.T) {
	root := Root()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--seed", "heads"})

	if err := root.Execute(); err == nil {
		t.Fatalf("ruin accepted a non-numeric seed")
	}
}
