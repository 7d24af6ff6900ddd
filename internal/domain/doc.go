// Package domain contains the core domain entities and value objects for the
// kicker scoreboard.
//
// This package represents the innermost layer of the application. It has no
// dependencies on infrastructure concerns (WebSocket, HTTP, logging) and
// contains only scoreboard rules.
//
// # Entities
//
//   - [ScoreState]: The authoritative score of both teams, as pushed by the table
//   - [Goal]: A single inferred scoring event with its elapsed-time stamp
//   - [GoalLog]: The chronological, versioned record of goals
//   - [FinalScoreSnapshot]: A point-in-time copy of the score taken at game end
//
// # Design Principles
//
// Domain values are immutable after construction. [GoalLog] operations return
// a new log instead of mutating the receiver, so a log handed to a view can
// never change underneath it.
package domain
