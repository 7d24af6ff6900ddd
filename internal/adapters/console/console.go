package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/smartkickers/kicker/internal/app"
	"github.com/smartkickers/kicker/internal/domain"
	"github.com/smartkickers/kicker/internal/ports"
)

// Controller is the set of game actions the console drives.
type Controller interface {
	StartGame(ctx context.Context) error
	EndGame() (domain.FinalScoreSnapshot, error)
	DismissStatistics() error
	ResetGame(ctx context.Context) error
	UpdateGoal(ctx context.Context, team domain.TeamID, action domain.ScoreAction) error
	View() app.View
}

const helpText = `Commands:
  start                    start a new game (clears history, resets the table)
  end                      end the game and show statistics
  dismiss                  close statistics
  reset                    reset the table score
  goal <add|sub> <team>    correct the score of white or blue
  score                    show the scoreboard
  history                  show the goal history
  help                     show this help
  quit                     exit
`

// Console reads operator commands line by line and runs them against a
// Controller.
type Console struct {
	in       io.Reader
	out      io.Writer
	ctrl     Controller
	renderer *Renderer
	logger   ports.Logger
}

// New creates a console reading from in and writing to out.
func New(in io.Reader, out io.Writer, ctrl Controller, renderer *Renderer, logger ports.Logger) *Console {
	return &Console{
		in:       in,
		out:      out,
		ctrl:     ctrl,
		renderer: renderer,
		logger:   logger,
	}
}

// errQuit ends the command loop.
var errQuit = errors.New("quit")

// Run processes commands until quit, end of input or ctx cancellation.
// Action errors are printed and never end the loop. Table API failures are
// left to the controller's notifier.
func (c *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	fmt.Fprint(c.out, helpText)
	c.renderer.Render(c.ctrl.View())

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			return err
		case line := <-lines:
			if err := c.Exec(ctx, line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				fmt.Fprintf(c.out, "error: %v\n", err)
			}
		}
	}
}

// Exec runs a single command line.
func (c *Console) Exec(ctx context.Context, line string) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}

	c.logger.Debug("console command", ports.String("command", fields[0]))

	switch fields[0] {
	case "start":
		return c.ctrl.StartGame(ctx)
	case "end":
		_, err := c.ctrl.EndGame()
		return err
	case "dismiss":
		return c.ctrl.DismissStatistics()
	case "reset":
		// API failures reach the operator through the notifier.
		_ = c.ctrl.ResetGame(ctx)
	case "goal":
		if len(fields) != 3 {
			return errors.New("usage: goal <add|sub> <white|blue>")
		}
		action, err := domain.ParseScoreAction(fields[1])
		if err != nil {
			return err
		}
		team, err := domain.ParseTeam(fields[2])
		if err != nil {
			return err
		}
		_ = c.ctrl.UpdateGoal(ctx, team, action)
	case "score":
		c.renderer.Render(c.ctrl.View())
	case "history":
		c.renderer.History(c.ctrl.View().Goals)
	case "quit", "exit":
		return errQuit
	case "help":
		fmt.Fprint(c.out, helpText)
	default:
		fmt.Fprintf(c.out, "unknown command %q\n", fields[0])
		fmt.Fprint(c.out, helpText)
	}
	return nil
}
