package components

import (
	"image/color"
	"testing"
)

var red = color.RGBA{R: 255, A: 255}

func TestScoreboardAddPlayer(t *testing.T) {
	s := NewScoreboard(0.5)
	if !s.AddPlayer(1, "Ferris1", red) {
		t.Fatal("AddPlayer returned false for a new id")
	}
	s.Increment(1, 2)

	if s.AddPlayer(1, "Other", color.RGBA{}) {
		t.Fatal("AddPlayer accepted a duplicate id")
	}
	entries := s.Entries()
	if len(entries) != 1 || entries[0].Name != "Ferris1" || entries[0].Score != 2 {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestScoreboardIncrementUnknownPanics(t *testing.T) {
	s := NewScoreboard(0.5)
	defer func() {
		if recover() == nil {
			t.Error("Increment on an unknown id did not panic")
		}
	}()
	s.Increment(9, 1)
}

func TestScoreboardNegativeIncrementPanics(t *testing.T) {
	s := NewScoreboard(0.5)
	s.AddPlayer(1, "Ferris1", red)
	defer func() {
		if recover() == nil {
			t.Error("negative Increment did not panic")
		}
	}()
	s.Increment(1, -1)
}

func TestScoreboardWinnerOnce(t *testing.T) {
	s := NewScoreboard(0.5)
	s.AddPlayer(1, "Ferris1", red)
	s.AddPlayer(2, "Ferris2", color.RGBA{B: 255, A: 255})

	calls := 0
	s.OnWinner = func(e ScoreEntry) {
		calls++
		if e.ID != 1 {
			t.Errorf("OnWinner got id %d", e.ID)
		}
	}

	if _, ok := s.Winner(); ok {
		t.Fatal("winner before any was declared")
	}
	if !s.ShowWinnerScreen(1) {
		t.Fatal("first ShowWinnerScreen returned false")
	}
	if s.ShowWinnerScreen(2) || s.ShowWinnerScreen(1) {
		t.Fatal("ShowWinnerScreen took effect twice")
	}
	if calls != 1 {
		t.Errorf("OnWinner called %d times", calls)
	}

	w, ok := s.Winner()
	if !ok || w.ID != 1 || w.Color != red {
		t.Errorf("winner = %+v", w)
	}
}

func TestScoreboardWinnerFade(t *testing.T) {
	s := NewScoreboard(0.5)
	s.AddPlayer(1, "Ferris1", red)
	s.ShowWinnerScreen(1)

	w, _ := s.Winner()
	if w.Alpha != 0 {
		t.Fatalf("alpha at start = %v", w.Alpha)
	}
	for i := 0; i < 20; i++ {
		s.Advance(0.05)
	}
	w, _ = s.Winner()
	if w.Alpha < 0.99 {
		t.Errorf("alpha after fade = %v, want 1", w.Alpha)
	}
}

func TestScoreboardInstantFade(t *testing.T) {
	s := NewScoreboard(0)
	s.AddPlayer(1, "Ferris1", red)
	s.ShowWinnerScreen(1)
	s.Advance(1)
	if w, _ := s.Winner(); w.Alpha != 1 {
		t.Errorf("alpha = %v, want 1", w.Alpha)
	}
}
