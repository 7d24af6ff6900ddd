package domain

import (
	"testing"
	"time"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:0"},
		{7 * time.Second, "0:7"},
		{3*time.Minute + 7*time.Second, "3:7"},
		{12*time.Minute + 45*time.Second + 900*time.Millisecond, "12:45"},
		{-time.Second, "0:0"},
	}

	for _, tt := range tests {
		if got := FormatElapsed(tt.d); got != tt.want {
			t.Errorf("FormatElapsed(%v) = %s, want %s", tt.d, got, tt.want)
		}
	}
}

func TestNewGoal(t *testing.T) {
	g := NewGoal(TeamBlue, 65*time.Second)

	if g.Team != TeamBlue {
		t.Errorf("Team = %v, want blue", g.Team)
	}
	if g.Timestamp != "time: 1:5" {
		t.Errorf("Timestamp = %q, want %q", g.Timestamp, "time: 1:5")
	}
	if g.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("goal ID not set")
	}
}

func TestGoalLog_AppendDoesNotMutateReceiver(t *testing.T) {
	var empty GoalLog
	one := empty.Append(NewGoal(TeamBlue, 0))
	two := one.Append(NewGoal(TeamWhite, time.Second))

	if empty.Len() != 0 || one.Len() != 1 || two.Len() != 2 {
		t.Fatalf("lengths = %d/%d/%d, want 0/1/2", empty.Len(), one.Len(), two.Len())
	}
	if two.Version() != 2 {
		t.Errorf("Version() = %d, want 2", two.Version())
	}

	// Appending to the same parent twice must not share storage.
	a := one.Append(NewGoal(TeamBlue, time.Second))
	b := one.Append(NewGoal(TeamWhite, time.Second))
	if a.Goals()[1].Team != TeamBlue || b.Goals()[1].Team != TeamWhite {
		t.Error("sibling logs share backing storage")
	}
}

func TestGoalLog_RemoveLast(t *testing.T) {
	blue := NewGoal(TeamBlue, time.Second)
	white := NewGoal(TeamWhite, 2*time.Second)
	log := GoalLog{}.Append(blue).Append(white)

	next, removed, ok := log.RemoveLast()
	if !ok {
		t.Fatal("RemoveLast() ok = false, want true")
	}
	if removed.ID != white.ID {
		t.Errorf("removed %v, want the white goal", removed.Team)
	}
	if next.Len() != 1 || log.Len() != 2 {
		t.Errorf("lengths after remove = %d (new) %d (old), want 1 and 2", next.Len(), log.Len())
	}
	if last, _ := next.Last(); last.ID != blue.ID {
		t.Error("remaining entry is not the blue goal")
	}
}

func TestGoalLog_RemoveLastEmpty(t *testing.T) {
	var log GoalLog
	next, _, ok := log.RemoveLast()
	if ok {
		t.Error("RemoveLast() on empty log reported a removal")
	}
	if next.Version() != 0 {
		t.Errorf("Version() = %d, want 0 for a no-op", next.Version())
	}
}

func TestGoalLog_ClearAndCount(t *testing.T) {
	log := GoalLog{}.
		Append(NewGoal(TeamBlue, 0)).
		Append(NewGoal(TeamBlue, 0)).
		Append(NewGoal(TeamWhite, 0))

	if got := log.CountFor(TeamBlue); got != 2 {
		t.Errorf("CountFor(blue) = %d, want 2", got)
	}
	if got := log.CountFor(TeamWhite); got != 1 {
		t.Errorf("CountFor(white) = %d, want 1", got)
	}

	cleared := log.Clear()
	if cleared.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", cleared.Len())
	}
	if cleared.Version() != log.Version()+1 {
		t.Errorf("Version() after Clear = %d, want %d", cleared.Version(), log.Version()+1)
	}
}

func TestGoalLog_GoalsReturnsCopy(t *testing.T) {
	log := GoalLog{}.Append(NewGoal(TeamBlue, 0))
	goals := log.Goals()
	goals[0].Team = TeamWhite

	if last, _ := log.Last(); last.Team != TeamBlue {
		t.Error("modifying Goals() result changed the log")
	}
}
