package core

import "testing"

func newTestEnv() *Env {
	cfg := DefaultConfig()
	cfg.Seed = 7
	return NewEnv(cfg, nil, nil, nil)
}

func TestEnvStatusTransitions(t *testing.T) {
	e := newTestEnv()
	e.Bind("best_test")

	if e.Status() != StatusIdle || !e.Paused() {
		t.Fatalf("bound env should be idle and paused, got %v", e.Status())
	}

	e.TogglePause()
	if e.Status() != StatusIdle {
		t.Error("toggle should be ignored while idle")
	}

	e.Start()
	if e.Paused() {
		t.Fatal("running env should not be paused")
	}

	e.TogglePause()
	if e.Status() != StatusPaused {
		t.Errorf("status = %v, expected paused", e.Status())
	}
	e.Resume()
	if e.Status() != StatusRunning {
		t.Errorf("status = %v, expected running", e.Status())
	}

	e.GameOver(3)
	if !e.Over() || !e.Paused() {
		t.Error("game over should suspend updates")
	}
	e.TogglePause()
	if !e.Over() {
		t.Error("toggle should not leave game over")
	}
}

func TestEnvGameOverKeepsBestMonotonic(t *testing.T) {
	bests := NewMemoryBests()
	bests.SetBest("best_test", 40)

	e := NewEnv(DefaultConfig(), nil, nil, bests)
	e.Bind("best_test")
	e.Start()
	e.GameOver(25)
	if got := bests.Best("best_test"); got != 40 {
		t.Errorf("best = %d, expected 40 (never decreases)", got)
	}

	e.Start()
	e.GameOver(55)
	if got := e.Best(); got != 55 {
		t.Errorf("best = %d, expected 55", got)
	}

	// A second call in the same session is ignored.
	e.GameOver(90)
	if got := e.Best(); got != 55 {
		t.Errorf("best = %d after repeated game over, expected 55", got)
	}
}

func TestMemoryBestsKeepsMaximum(t *testing.T) {
	bests := NewMemoryBests()
	bests.SetBest("best_test", 50)
	bests.SetBest("best_test", 20)
	if got := bests.Best("best_test"); got != 50 {
		t.Errorf("best = %d, expected 50", got)
	}
}

func TestEnvUnboundBestIsZero(t *testing.T) {
	e := newTestEnv()
	e.SetBest(10)
	if e.Best() != 0 {
		t.Error("env without a key should not store bests")
	}
}

func TestStatusString(t *testing.T) {
	tests := map[Status]string{
		StatusIdle:    "idle",
		StatusRunning: "running",
		StatusPaused:  "paused",
		StatusOver:    "game over",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("%d.String() = %q, expected %q", s, s.String(), want)
		}
	}
}

func TestScoreInt(t *testing.T) {
	if Score(12.98).Int() != 12 {
		t.Error("Score should floor")
	}
}
