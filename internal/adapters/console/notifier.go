// Package console implements the operator-facing terminal front-end:
// synchronous alerts, the gameplay and statistics views, and the command loop.
package console

import (
	"fmt"
	"io"
	"sync"
)

// Notifier prints operator alerts to a writer.
type Notifier struct {
	mu sync.Mutex
	w  io.Writer
}

// NewNotifier creates a notifier writing to w.
func NewNotifier(w io.Writer) *Notifier {
	return &Notifier{w: w}
}

// Notify implements ports.Notifier. It returns once the message is written.
func (n *Notifier) Notify(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.w, "! %s\n", msg)
}
