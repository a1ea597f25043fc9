package commands

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/mkpy/internal/config"
	"git.home.luguber.info/inful/mkpy/internal/logfields"
)

// logLevel is shared by the default handler so the configured log_level can
// be applied after the config file has been read.
var logLevel = new(slog.LevelVar)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
	Out    io.Writer // user-facing output; defaults to stdout
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

func (g *Global) logger() *slog.Logger {
	if g == nil || g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string `short:"c" help:"Configuration file path (defaults to mkpy.yaml when present)"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Serve   ServeCmd   `cmd:"" help:"Serve documentation over HTTP"`
	Build   BuildCmd   `cmd:"" help:"Render documentation to static HTML files"`
	Init    InitCmd    `cmd:"" help:"Write an example configuration file"`
	Check   CheckCmd   `cmd:"" help:"Report internal links that point nowhere"`
	Version VersionCmd `cmd:"" help:"Show version and exit"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	if c.Verbose {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)
	return nil
}

// SiteFlags are the site options shared by commands that load a site.
// Zero values leave the configuration untouched.
type SiteFlags struct {
	Folder string `short:"f" help:"Path to folder containing markdown files"`
	Title  string `short:"t" help:"Documentation title"`
	Theme  string `help:"Theme: light or dark"`
	NoNav  bool   `name:"no-nav" help:"Disable navigation menu"`
}

func (f SiteFlags) apply(cfg *config.Config) {
	if f.Folder != "" {
		cfg.Folder = f.Folder
	}
	if f.Title != "" {
		cfg.Title = f.Title
	}
	if f.Theme != "" {
		cfg.Theme = config.Theme(f.Theme)
	}
	if f.NoNav {
		cfg.ShowNav = false
	}
}

// loadConfig resolves the configuration file: an explicit path (positional
// argument, then --config) must exist, while the implicit mkpy.yaml is optional.
func loadConfig(root *CLI, explicit string) (config.Config, error) {
	path := explicit
	if path == "" && root != nil {
		path = root.Config
	}
	if path == "" {
		if _, err := os.Stat(config.DefaultConfigFile); err == nil {
			path = config.DefaultConfigFile
		} else if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Cannot inspect default config file", logfields.Path(config.DefaultConfigFile), logfields.Error(err))
		}
	}

	var cfg config.Config
	if path == "" {
		config.LoadEnv()
		cfg = config.Default()
	} else {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	if root == nil || !root.Verbose {
		level, err := config.ParseLogLevel(cfg.LogLevel)
		if err != nil {
			return config.Config{}, err
		}
		logLevel.Set(level)
	}
	return cfg, nil
}
