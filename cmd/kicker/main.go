package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/smartkickers/kicker/internal/adapters/console"
	"github.com/smartkickers/kicker/internal/cliconfig"
	"github.com/smartkickers/kicker/internal/domain"
	"github.com/smartkickers/kicker/pkg/log"
	"github.com/smartkickers/kicker/pkg/scoreboard"
	"github.com/smartkickers/kicker/plugins/configwatcher"
)

const longHelp = `Operator scoreboard for a smart kicker table.

Follows the table's live score feed, keeps the goal history in sync with the
score and lets the operator start, end and reset games and correct the score.

Configuration is read from $HOME/.kicker/config.toml, a .env file, KICKER_*
environment variables and flags, each overriding the previous one.`

var exampleUsage = strings.TrimSpace(`
  kicker --ws-url ws://table.local:3000 --api-url http://table.local:3000
  kicker goal add blue
  kicker reset
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// loader resolves the effective configuration for a command.
type loader struct {
	cfg     cliconfig.Config
	cfgPath string
}

func (l *loader) load(cmd *cobra.Command) (cliconfig.Config, string, error) {
	cfg := l.cfg

	cfgFile := l.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return cfg, "", fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
			return cfg, "", err
		}
	} else {
		cfgFile = ""
	}

	// Values from the env file only fill variables that are not already set.
	if err := cliconfig.LoadEnvFile(cfg.EnvFile); err != nil {
		return cfg, "", err
	}
	if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
		return cfg, "", err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, "", err
	}
	if err := log.SetLevel(cfg.LogLevel); err != nil {
		return cfg, "", err
	}
	return cfg, cfgFile, nil
}

func newScoreboard(cfg cliconfig.Config, cfgFile string, logger zerolog.Logger, opts ...scoreboard.Option) (*scoreboard.Scoreboard, error) {
	libCfg := scoreboard.Config{
		WSBaseURL:        cfg.WSBaseURL,
		APIBaseURL:       cfg.APIBaseURL,
		Greeting:         cfg.Greeting,
		HTTPTimeout:      cfg.HTTPTimeout,
		DialTimeout:      cfg.DialTimeout,
		Reconnect:        cfg.Reconnect,
		ReconnectInitial: cfg.ReconnectInitial,
		ReconnectMax:     cfg.ReconnectMax,
		ConfigPath:       cfgFile,
	}

	opts = append([]scoreboard.Option{
		scoreboard.WithLogger(log.NewZerologAdapterWithLogger(logger)),
		scoreboard.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
	}, opts...)
	return scoreboard.New(libCfg, opts...)
}

func main() {
	l := &loader{cfg: cliconfig.DefaultConfig()}
	logger := cliconfig.Logger()

	root := &cobra.Command{
		Use:           "kicker",
		Short:         "Operator scoreboard for a smart kicker table",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cfgFile, err := l.load(cmd)
			if err != nil {
				return err
			}
			logger.Info().Interface("config", cfg).Msg("configuration")
			return runConsole(cfg, cfgFile, logger)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&l.cfgPath, "config", "", "path to config file (default: $HOME/.kicker/config.toml)")
	f.StringVar(&l.cfg.EnvFile, "env-file", l.cfg.EnvFile, "dotenv file with KICKER_* variables")
	f.StringVar(&l.cfg.WSBaseURL, "ws-url", l.cfg.WSBaseURL, "base URL of the live score feed")
	f.StringVar(&l.cfg.APIBaseURL, "api-url", l.cfg.APIBaseURL, "base URL of the table REST API")
	f.StringVar(&l.cfg.Greeting, "greeting", l.cfg.Greeting, "message sent when the feed connects")
	f.DurationVar(&l.cfg.HTTPTimeout, "http-timeout", l.cfg.HTTPTimeout, "timeout of table API calls")
	f.DurationVar(&l.cfg.DialTimeout, "dial-timeout", l.cfg.DialTimeout, "feed handshake timeout")
	f.BoolVar(&l.cfg.Reconnect, "reconnect", l.cfg.Reconnect, "reconnect to the feed after it drops")
	f.DurationVar(&l.cfg.ReconnectInitial, "reconnect-initial", l.cfg.ReconnectInitial, "first reconnect delay")
	f.DurationVar(&l.cfg.ReconnectMax, "reconnect-max", l.cfg.ReconnectMax, "maximum reconnect delay")
	f.StringVar(&l.cfg.LogLevel, "log-level", l.cfg.LogLevel, "log level (debug, info, warn, error)")
	if err := f.MarkHidden("greeting"); err != nil {
		logger.Info().Err(err).Msg("failed to hide greeting flag")
	}

	root.AddCommand(newGoalCommand(l, logger), newResetCommand(l, logger))

	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("kicker")
		os.Exit(1)
	}
}

func runConsole(cfg cliconfig.Config, cfgFile string, logger zerolog.Logger) error {
	renderer := console.NewRenderer(os.Stdout)
	opts := []scoreboard.Option{
		scoreboard.WithNotifier(console.NewNotifier(os.Stdout)),
		scoreboard.WithEventHandler(console.NewEvents(renderer)),
	}
	if cfgFile != "" {
		opts = append(opts, configwatcher.WithConfigWatcher(configwatcher.Config{
			OnChange: reloadLogLevel,
		}))
	}

	sb, err := newScoreboard(cfg, cfgFile, logger, opts...)
	if err != nil {
		return fmt.Errorf("create scoreboard: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := sb.Start(ctx); err != nil {
		return fmt.Errorf("start scoreboard: %w", err)
	}

	// Leave the console once the feed agent gives up.
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if sb.Status() == scoreboard.StateCrashed {
					cancel()
					return
				}
			}
		}
	}()

	con := console.New(os.Stdin, os.Stdout, sb, renderer, log.NewZerologAdapterWithLogger(logger).With("console"))
	runErr := con.Run(ctx)

	crashed := sb.Status() == scoreboard.StateCrashed
	if err := sb.Stop(); err != nil {
		return fmt.Errorf("stop scoreboard: %w", err)
	}
	if runErr != nil {
		return runErr
	}
	if crashed {
		return fmt.Errorf("score feed lost")
	}
	return nil
}

// reloadLogLevel applies the log level of a changed config file.
func reloadLogLevel(path string) error {
	fc, err := cliconfig.LoadFileConfig(path)
	if err != nil {
		return err
	}
	if fc.LogLevel == "" {
		return nil
	}
	return log.SetLevel(fc.LogLevel)
}

func newGoalCommand(l *loader, logger zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "goal <add|sub> <white|blue>",
		Short: "Add or subtract one goal for a team on the table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := domain.ParseScoreAction(args[0])
			if err != nil {
				return err
			}
			team, err := domain.ParseTeam(args[1])
			if err != nil {
				return err
			}

			cfg, _, err := l.load(cmd)
			if err != nil {
				return err
			}
			sb, err := newScoreboard(cfg, "", logger)
			if err != nil {
				return err
			}
			if err := sb.UpdateGoal(cmd.Context(), team, action); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s goal for %s sent\n", action, team)
			return nil
		},
	}
}

func newResetCommand(l *loader, logger zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the score on the table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := l.load(cmd)
			if err != nil {
				return err
			}
			sb, err := newScoreboard(cfg, "", logger)
			if err != nil {
				return err
			}
			if err := sb.ResetGame(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "table reset")
			return nil
		},
	}
}
