// Package lifecycle tracks the run state of the scoreboard agent.
//
// A Manager moves through Stopped, Starting, Running, Stopping and Crashed,
// counts background workers and bounds graceful shutdown:
//
//	m := lifecycle.NewManager(clockwork.NewRealClock(), logger, nil)
//	if err := m.TransitionTo(lifecycle.StateStarting, "start"); err != nil {
//	    return err
//	}
//	m.AddWorker()
//	go func() {
//	    defer m.WorkerDone()
//	    // ...
//	}()
//	_ = m.TransitionTo(lifecycle.StateRunning, "started")
//
//	m.Cancel()
//	if err := m.WaitWithTimeout(lifecycle.ShutdownTimeout); err != nil {
//	    // workers did not stop in time
//	}
//
// Valid transitions:
//   - Stopped -> Starting
//   - Starting -> Running, Crashed
//   - Running -> Stopping, Crashed
//   - Stopping -> Stopped, Crashed
//   - Crashed -> Starting, Stopping
package lifecycle
