// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// Ports are the boundaries between the scoreboard core and the outside world.
// They define what the application needs from external systems without
// specifying how those needs are fulfilled.
//
// # Port Interfaces
//
//   - [ScoreFeed]: Connects to the table's live score feed
//   - [ScoreStream]: Delivers score snapshots from one feed connection
//   - [TableAPI]: Requests goal corrections and game resets from the table
//   - [Notifier]: Shows acknowledgement and error messages to the operator
//   - [Logger]: Structured logging abstraction
//   - [HTTPClient]: HTTP request abstraction for dependency injection
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with gorilla
// WebSocket, net/http and console output.
package ports
