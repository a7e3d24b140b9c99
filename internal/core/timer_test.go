package core

import (
	"context"
	"testing"
	"time"
)

func TestFixedStepFirstCallSteps(t *testing.T) {
	fs := NewFixedStep(30)
	if fs.Step() != time.Second/30 {
		t.Fatalf("step = %v, want %v", fs.Step(), time.Second/30)
	}
	if !fs.ShouldStep() {
		t.Fatal("first ShouldStep must report a pending tick")
	}
	fs.SetTPS(0)
	if fs.Step() != time.Second/60 {
		t.Fatalf("SetTPS(0) step = %v, want default 60 TPS", fs.Step())
	}
}

func TestFixedStepWaitHonoursContext(t *testing.T) {
	fs := NewFixedStep(1)
	if err := fs.Wait(context.Background()); err != nil {
		t.Fatalf("first Wait: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := fs.Wait(ctx); err != context.Canceled {
		t.Fatalf("Wait after cancel = %v, want context.Canceled", err)
	}
}
