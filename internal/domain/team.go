package domain

import (
	"strconv"
	"strings"
)

// TeamID identifies a side of the table.
// The numeric values are the ones the table API expects in the team query parameter.
type TeamID int

const (
	TeamWhite TeamID = 0
	TeamBlue  TeamID = 1
)

// Teams lists both sides in the order score changes are evaluated.
var Teams = [2]TeamID{TeamBlue, TeamWhite}

// String returns a human-readable team name.
func (t TeamID) String() string {
	switch t {
	case TeamWhite:
		return "white"
	case TeamBlue:
		return "blue"
	default:
		return "unknown"
	}
}

// Valid reports whether t is one of the two known teams.
func (t TeamID) Valid() bool {
	return t == TeamWhite || t == TeamBlue
}

// ParseTeam accepts "white", "blue" or their wire values "0" and "1".
func ParseTeam(s string) (TeamID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", strconv.Itoa(int(TeamWhite)):
		return TeamWhite, nil
	case "blue", strconv.Itoa(int(TeamBlue)):
		return TeamBlue, nil
	default:
		return 0, ErrBadTeam
	}
}

// ScoreAction is a manual score correction sent to the table API.
type ScoreAction string

const (
	ActionAdd ScoreAction = "add"
	ActionSub ScoreAction = "sub"
)

// ParseScoreAction accepts "add" or "sub".
func ParseScoreAction(s string) (ScoreAction, error) {
	switch ScoreAction(strings.ToLower(strings.TrimSpace(s))) {
	case ActionAdd:
		return ActionAdd, nil
	case ActionSub:
		return ActionSub, nil
	default:
		return "", ErrBadAction
	}
}
