package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestRunRows(t *testing.T) {
	c := qt.New(t)
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-rows", "-n", "3", "-w", "12", "-tps", "1000", "-seed", "7"}, &stdout, &stderr)
	c.Assert(err, qt.IsNil)
	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	c.Assert(lines, qt.HasLen, 4)
	for _, line := range lines {
		c.Assert([]rune(line), qt.HasLen, 12)
		c.Assert(strings.Trim(line, "□■"), qt.Equals, "")
	}
	c.Assert(stderr.String(), qt.Contains, "starting")
}

func TestRunLatticeFrames(t *testing.T) {
	c := qt.New(t)
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-n", "2", "-w", "6", "-tps", "1000", "-clear=false"}, &stdout, &stderr)
	c.Assert(err, qt.IsNil)
	c.Assert(strings.Count(stdout.String(), "\n"), qt.Equals, 12)
	c.Assert(stdout.String(), qt.Not(qt.Contains), clearScreen)
}

func TestRunRejectsBadInput(t *testing.T) {
	c := qt.New(t)
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-w", "0"}, &stdout, &stderr)
	c.Assert(err, qt.ErrorMatches, "width must be positive")

	err = run(context.Background(), []string{"-w", "8", "-dir", "3"}, &stdout, &stderr)
	c.Assert(err, qt.ErrorMatches, ".*invalid direction")
	c.Assert(stdout.String(), qt.Equals, "")
}

func TestRunStopsOnCancel(t *testing.T) {
	c := qt.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout, stderr bytes.Buffer
	err := run(ctx, []string{"-rows", "-w", "8", "-tps", "1"}, &stdout, &stderr)
	c.Assert(err, qt.IsNil)
}

func TestRunLogsPacingAtDebug(t *testing.T) {
	c := qt.New(t)
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-rows", "-n", "1", "-w", "8", "-tps", "50", "-log", "debug"}, &stdout, &stderr)
	c.Assert(err, qt.IsNil)
	c.Assert(stderr.String(), qt.Contains, "pacing")
	c.Assert(stderr.String(), qt.Contains, "20ms")
}
