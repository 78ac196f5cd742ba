package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/obfeed"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Configs obfeed.ConfigLoader
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Run     RunCmd     `cmd:"" help:"Convert every configured blog into a feed file"`
	Preview PreviewCmd `cmd:"" help:"Show the feed a blog page would produce, without writing it"`
	Check   CheckCmd   `cmd:"" help:"Parse feed files and report what readers will see"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Config    string        `short:"c" default:"config.json" help:"Configuration file listing the blogs"`
	Out       string        `short:"o" help:"Output directory (overrides the configuration)"`
	Format    string        `short:"f" help:"Feed format: atom or rss (overrides the configuration)"`
	Timezone  string        `help:"Time zone of article dates (overrides the configuration)"`
	UserAgent string        `env:"OBFEED_USER_AGENT" help:"User agent sent to blogs (overrides the configuration)"`
	Timeout   time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Rate      float64       `default:"1" help:"Requests per second per host (0 disables the limit)"`
	KeepGoing bool          `short:"k" help:"Continue with the next blog when one fails"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	URL       string        `arg:"" help:"Blog home page URL"`
	UserAgent string        `short:"u" env:"OBFEED_USER_AGENT" help:"User agent sent to the blog"`
	Timezone  string        `help:"Time zone of article dates (default Europe/Paris)"`
	Timeout   time.Duration `short:"t" default:"10s" help:"Fetch timeout"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Files []string `arg:"" type:"path" help:"Feed files to parse"`
}
