package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScoreState is the authoritative score of both teams.
// It is only ever replaced wholesale by a feed snapshot.
type ScoreState struct {
	BlueScore  int `json:"blueScore"`
	WhiteScore int `json:"whiteScore"`
}

// Validate rejects snapshots with negative scores.
func (s ScoreState) Validate() error {
	if s.BlueScore < 0 || s.WhiteScore < 0 {
		return fmt.Errorf("%w: blue=%d white=%d", ErrInvalidScore, s.BlueScore, s.WhiteScore)
	}
	return nil
}

// Of returns the score of the given team.
func (s ScoreState) Of(team TeamID) int {
	if team == TeamBlue {
		return s.BlueScore
	}
	return s.WhiteScore
}

// Change describes how one team's score moved between two snapshots.
type Change int

const (
	Unchanged Change = iota
	Increase
	Decrease
)

// String returns a human-readable representation of the change.
func (c Change) String() string {
	switch c {
	case Increase:
		return "increase"
	case Decrease:
		return "decrease"
	default:
		return "unchanged"
	}
}

// TeamChange is the movement of a single team's score.
type TeamChange struct {
	Team   TeamID
	Change Change
}

// Diff compares two snapshots team by team.
// The result always holds one entry per team, blue first, then white.
func Diff(prev, next ScoreState) [2]TeamChange {
	var out [2]TeamChange
	for i, team := range Teams {
		c := Unchanged
		switch {
		case next.Of(team) > prev.Of(team):
			c = Increase
		case next.Of(team) < prev.Of(team):
			c = Decrease
		}
		out[i] = TeamChange{Team: team, Change: c}
	}
	return out
}

// FinalScoreSnapshot is the score captured when a game ends.
// It lives independently of the live ScoreState and survives a reset.
type FinalScoreSnapshot struct {
	GameID   uuid.UUID     `json:"gameId"`
	Blue     int           `json:"blue"`
	White    int           `json:"white"`
	Duration time.Duration `json:"duration"`
	EndedAt  time.Time     `json:"endedAt"`
}

// Winner returns the team with more goals; ok is false on a draw.
func (f FinalScoreSnapshot) Winner() (team TeamID, ok bool) {
	switch {
	case f.Blue > f.White:
		return TeamBlue, true
	case f.White > f.Blue:
		return TeamWhite, true
	default:
		return 0, false
	}
}
