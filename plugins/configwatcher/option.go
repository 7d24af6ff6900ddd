package configwatcher

import "github.com/smartkickers/kicker/pkg/scoreboard"

// WithConfigWatcher returns a scoreboard Option that enables config file
// watching.
//
// Usage:
//
//	sb, err := scoreboard.New(cfg,
//	    configwatcher.WithConfigWatcher(configwatcher.Config{
//	        DebounceDelay: 100 * time.Millisecond,
//	        OnChange: func(path string) error {
//	            fc, err := cliconfig.LoadFileConfig(path)
//	            if err != nil {
//	                return err
//	            }
//	            return log.SetLevel(fc.LogLevel)
//	        },
//	    }),
//	)
func WithConfigWatcher(cfg Config) scoreboard.Option {
	return scoreboard.WithPlugin(New(cfg))
}
