package scoreboard

import "context"

// Plugin extends a Scoreboard with optional behaviour.
// Plugins are initialized in registration order when the scoreboard starts
// and shut down in reverse order when it stops.
type Plugin interface {
	Name() string
	Initialize(ctx context.Context, cfg PluginConfig) error
	Shutdown(ctx context.Context) error
}

// PluginConfig is handed to plugins on Initialize.
type PluginConfig struct {
	WSBaseURL  string
	APIBaseURL string
	ConfigPath string
	Logger     Logger
}

// BasePlugin provides no-op Initialize and Shutdown for embedding.
type BasePlugin struct {
	PluginName string
}

// Name returns PluginName.
func (b BasePlugin) Name() string { return b.PluginName }

// Initialize does nothing.
func (BasePlugin) Initialize(ctx context.Context, cfg PluginConfig) error { return nil }

// Shutdown does nothing.
func (BasePlugin) Shutdown(ctx context.Context) error { return nil }
