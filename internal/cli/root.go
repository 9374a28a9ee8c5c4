package cli

import (
	"io"
	"os"

	"github.com/vburojevic/moncov/internal/config"
	"github.com/vburojevic/moncov/internal/logging"
	"go.uber.org/zap"
)

// CLI is the root command structure for moncov
type CLI struct {
	// Global flags
	Quiet   bool `short:"q" help:"Suppress status lines and warnings (only emit the report)"`
	Verbose bool `short:"v" help:"Show debug output (loaded rows, output files)"`

	// Commands
	Report     ReportCmd     `cmd:"" default:"withargs" help:"Compute monitoring coverage and render a report"`
	View       ViewCmd       `cmd:"" help:"Browse the coverage report in an interactive pager"`
	Config     ConfigCmd     `cmd:"" help:"Show or manage configuration"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completions"`
}

// Globals holds shared state for all commands
type Globals struct {
	Quiet   bool
	Verbose bool
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *config.Config
	Logger  *zap.Logger
}

// NewGlobals creates a new Globals instance from CLI flags
func NewGlobals(cli *CLI) *Globals {
	return NewGlobalsWithConfig(cli, config.Default())
}

// NewGlobalsWithConfig creates a new Globals instance with config fallbacks
func NewGlobalsWithConfig(cli *CLI, cfg *config.Config) *Globals {
	if cfg == nil {
		cfg = config.Default()
	}
	g := &Globals{
		Quiet:   cli.Quiet || cfg.Quiet,
		Verbose: cli.Verbose || cfg.Verbose,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  cfg,
	}
	g.Logger = logging.New(g.Stderr, g.Verbose, g.Quiet)
	return g
}

// log returns the command logger, falling back to a no-op logger.
func (g *Globals) log() *zap.Logger {
	if g == nil || g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}

// VersionCmd shows version information
type VersionCmd struct {
	JSON bool `help:"Output as JSON"`
}

// Run executes the version command
func (v *VersionCmd) Run(globals *Globals) error {
	if v.JSON {
		_, err := io.WriteString(globals.Stdout, `{"type":"version","version":"`+Version+`","commit":"`+Commit+`"}`+"\n")
		return err
	}
	_, err := io.WriteString(globals.Stdout, "moncov version "+Version+" ("+Commit+")\n")
	return err
}

// Version information (set at build time)
var (
	Version = "dev"
	Commit  = "none"
)
