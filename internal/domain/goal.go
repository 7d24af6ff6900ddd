package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Goal is a single scoring event inferred from a score increase.
type Goal struct {
	ID   uuid.UUID `json:"id"`
	Team TeamID    `json:"teamID"`

	// Elapsed is the stopwatch reading when the goal was detected.
	Elapsed time.Duration `json:"elapsed"`

	// Timestamp is the display form of Elapsed, e.g. "time: 3:7".
	Timestamp string `json:"timestamp"`
}

// NewGoal creates a goal for team stamped with the given elapsed time.
func NewGoal(team TeamID, elapsed time.Duration) Goal {
	return Goal{
		ID:        uuid.New(),
		Team:      team,
		Elapsed:   elapsed,
		Timestamp: "time: " + FormatElapsed(elapsed),
	}
}

// FormatElapsed renders a duration as unpadded minutes and seconds ("M:S").
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%d", total/60, total%60)
}

// GoalLog is the chronological record of goals.
// The zero value is an empty log. All operations return a new log and leave
// the receiver untouched; Version increases by one on every change.
type GoalLog struct {
	goals   []Goal
	version uint64
}

// Append returns a log with g added after the last entry.
func (l GoalLog) Append(g Goal) GoalLog {
	goals := make([]Goal, len(l.goals), len(l.goals)+1)
	copy(goals, l.goals)
	return GoalLog{goals: append(goals, g), version: l.version + 1}
}

// RemoveLast returns a log without the most recent entry and the removed goal.
// ok is false, and the log is returned unchanged, when the log is empty.
func (l GoalLog) RemoveLast() (GoalLog, Goal, bool) {
	if len(l.goals) == 0 {
		return l, Goal{}, false
	}
	last := l.goals[len(l.goals)-1]
	goals := make([]Goal, len(l.goals)-1)
	copy(goals, l.goals)
	return GoalLog{goals: goals, version: l.version + 1}, last, true
}

// Clear returns an empty log.
func (l GoalLog) Clear() GoalLog {
	return GoalLog{version: l.version + 1}
}

// Len returns the number of goals in the log.
func (l GoalLog) Len() int {
	return len(l.goals)
}

// Version returns the number of changes applied since the zero log.
func (l GoalLog) Version() uint64 {
	return l.version
}

// Goals returns a copy of the entries in insertion order.
func (l GoalLog) Goals() []Goal {
	out := make([]Goal, len(l.goals))
	copy(out, l.goals)
	return out
}

// Last returns the most recent goal, or false if the log is empty.
func (l GoalLog) Last() (Goal, bool) {
	if len(l.goals) == 0 {
		return Goal{}, false
	}
	return l.goals[len(l.goals)-1], true
}

// CountFor returns how many entries belong to team.
func (l GoalLog) CountFor(team TeamID) int {
	n := 0
	for _, g := range l.goals {
		if g.Team == team {
			n++
		}
	}
	return n
}
