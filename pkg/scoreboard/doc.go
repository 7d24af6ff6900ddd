// Package scoreboard provides an embeddable scoreboard agent for a kicker
// (table football) table.
//
// A Scoreboard subscribes to the table's live score feed over WebSocket and
// keeps a chronological goal log in sync with the authoritative score: each
// increase of a team's score appends one goal stamped with the game clock,
// each decrease removes the most recent goal. It also runs the game actions
// (start, end, dismiss statistics, reset) and manual score corrections
// through the table's REST API.
//
// # Basic Usage
//
//	cfg := scoreboard.DefaultConfig()
//	cfg.WSBaseURL = "ws://table.local:3000"
//	cfg.APIBaseURL = "http://table.local:3000"
//
//	sb, err := scoreboard.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := sb.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer sb.Stop()
//
//	_ = sb.StartGame(ctx)
//	// ... goals arrive through the feed ...
//	final, _ := sb.EndGame()
//
// # Game States
//
// A game is Idle, Running or Ended. StartGame is allowed from any state and
// discards the previous history; EndGame requires a running game;
// DismissStatistics requires an ended one. Feed snapshots update the log in
// every state.
//
// # Events
//
// Implement [EventHandler] (or embed [BaseEventHandler]) and pass it with
// [WithEventHandler] to follow game and score changes. Game and score events
// carry a [View] taken right after the change.
//
// # Agent States
//
// The feed loop runs in the background and is in one of [StateStopped],
// [StateStarting], [StateRunning], [StateStopping] or [StateCrashed]. With
// Config.Reconnect disabled, the first feed error moves the agent to
// StateCrashed.
package scoreboard
