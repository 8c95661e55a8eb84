package components

import (
	"fmt"
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ScoreEntry is one player's row on the scoreboard
type ScoreEntry struct {
	ID    int
	Name  string
	Color color.RGBA
	Score int
}

// WinnerData is the declared winner and the fade state of its overlay
type WinnerData struct {
	ScoreEntry
	Alpha float32 // overlay opacity, 0 - 1
	fade  *gween.Tween
}

// ScoreboardData tracks every joined player and the session's winner.
// Scores only ever grow and the winner is declared at most once.
type ScoreboardData struct {
	entries []ScoreEntry
	index   map[int]int
	winner  *WinnerData

	// FadeSeconds is how long the winner overlay takes to fade in
	FadeSeconds float32
	// OnWinner, if set, is called once when the winner is declared
	OnWinner func(ScoreEntry)
}

// NewScoreboard returns an empty scoreboard.
func NewScoreboard(fadeSeconds float32) *ScoreboardData {
	return &ScoreboardData{
		index:       make(map[int]int),
		FadeSeconds: fadeSeconds,
	}
}

// AddPlayer registers a player with a score of 0. It returns false and keeps
// the existing entry when the id is already registered.
func (s *ScoreboardData) AddPlayer(id int, name string, c color.RGBA) bool {
	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = len(s.entries)
	s.entries = append(s.entries, ScoreEntry{ID: id, Name: name, Color: c})
	return true
}

// Has reports whether id is registered.
func (s *ScoreboardData) Has(id int) bool {
	_, ok := s.index[id]
	return ok
}

// Increment adds amount to a player's score. Unknown ids and negative amounts
// are programming errors.
func (s *ScoreboardData) Increment(id, amount int) int {
	if amount < 0 {
		panic(fmt.Sprintf("scoreboard: negative increment %d for player %d", amount, id))
	}
	e := s.mustEntry(id)
	e.Score += amount
	return e.Score
}

// Score returns a player's current score.
func (s *ScoreboardData) Score(id int) int {
	return s.mustEntry(id).Score
}

// ShowWinnerScreen declares id the winner and starts the overlay fade. Only
// the first call has any effect; later calls return false.
func (s *ScoreboardData) ShowWinnerScreen(id int) bool {
	if s.winner != nil {
		return false
	}
	e := *s.mustEntry(id)
	s.winner = &WinnerData{
		ScoreEntry: e,
		fade:       gween.New(0, 1, s.FadeSeconds, ease.OutQuad),
	}
	if s.FadeSeconds <= 0 {
		s.winner.Alpha = 1
	}
	if s.OnWinner != nil {
		s.OnWinner(e)
	}
	return true
}

// Winner returns the declared winner, if any.
func (s *ScoreboardData) Winner() (WinnerData, bool) {
	if s.winner == nil {
		return WinnerData{}, false
	}
	return *s.winner, true
}

// Advance moves the winner overlay fade forward by dt seconds.
func (s *ScoreboardData) Advance(dt float32) {
	if s.winner == nil || s.FadeSeconds <= 0 {
		return
	}
	s.winner.Alpha, _ = s.winner.fade.Update(dt)
}

// Entries returns a copy of all rows in join order.
func (s *ScoreboardData) Entries() []ScoreEntry {
	out := make([]ScoreEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of registered players.
func (s *ScoreboardData) Len() int {
	return len(s.entries)
}

func (s *ScoreboardData) mustEntry(id int) *ScoreEntry {
	i, ok := s.index[id]
	if !ok {
		panic(fmt.Sprintf("scoreboard: unknown player %d", id))
	}
	return &s.entries[i]
}
