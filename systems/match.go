package systems

import "time"

// UpdateScoreboard advances the winner overlay fade.
func UpdateScoreboard(s *Session) {
	s.Scoreboard.Advance(float32(s.Delta.Seconds()))
}

// TimeToNextStar reports how long until the spawner fires again.
func TimeToNextStar(s *Session) time.Duration {
	return s.StarTimer.Remaining()
}
