package app

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestParseLevel(t *testing.T) {
	c := qt.New(t)
	for name, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	} {
		c.Assert(ParseLevel(name), qt.Equals, want, qt.Commentf("level %q", name))
	}
}

func TestNewLoggerFiltersAndFormats(t *testing.T) {
	c := qt.New(t)
	var buf bytes.Buffer
	log := NewLogger(&buf, slog.LevelInfo)
	log.Debug("hidden")
	log.Info("tick", "generation", 3)
	log.Error("renew failed", "err", errors.New("boom"))

	out := buf.String()
	c.Assert(out, qt.Not(qt.Contains), "hidden")
	c.Assert(out, qt.Contains, "tick")
	c.Assert(out, qt.Contains, "generation")
	c.Assert(out, qt.Contains, "boom")
}
