package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	_ "time/tzdata"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/obfeed"
	"github.com/fwojciec/obfeed/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Configs loads the configuration file. Set before calling Run() to
	// replace the file-based loader.
	Configs obfeed.ConfigLoader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Configs: yaml.NewConfigLoader(),
	}
}

// Run executes the CLI with the given arguments. A returned error has
// already been reported on stderr.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	err := m.run(ctx, args, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", errorText(err))
	}
	return err
}

func (m *Main) run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Configs: m.Configs,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("obfeed"),
		kong.Description("Turn blog home pages into Atom and RSS feeds"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'obfeed --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	return kongCtx.Run(deps)
}

// errorText returns the message of a bare domain error and the full chain
// of anything wrapped.
func errorText(err error) string {
	if e, ok := err.(*obfeed.Error); ok {
		return e.Message
	}
	return err.Error()
}
