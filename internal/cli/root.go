// Package cli wires the junctions commands: it reads a point set, runs the
// clustering engine and prints the answers.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/junctionforest/internal/config"
	"github.com/katalvlaran/junctionforest/junction"
	"github.com/katalvlaran/junctionforest/space"
)

// app is the state shared by all subcommands of one root command.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg    config.Config
	logger *slog.Logger
}

// NewRootCommand builds the command tree. I/O streams are injected so tests
// can drive the CLI without touching the process environment.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "junctions",
		Short: "Cluster 3-D points by distance and find the edge that connects them all",
		Long: "junctions reads points written as \"x,y,z\" (one per line) and joins the closest pairs.\n" +
			"cluster joins a fixed number of pairs and multiplies the three largest group sizes;\n" +
			"connect builds a minimum spanning tree and reports the edge that closes it.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().String("config", "", "config file (default .junctions.yaml)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log every join at debug level")
	root.PersistentFlags().Bool("path-compression", false, "compress union-find paths (same answers, faster)")

	root.AddCommand(newSolveCommand(a), newClusterCommand(a), newConnectCommand(a))

	return root
}

// Execute runs the CLI against the process streams and exits non-zero on error.
func Execute() {
	root := NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setup resolves configuration for the command being run. Flags win over
// environment, which wins over the config file and defaults.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	v, err := config.New(cfgFile)
	if err != nil {
		return err
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	return nil
}

// options translates the resolved config into engine options.
func (a *app) options() []junction.Option {
	return []junction.Option{
		junction.WithLogger(a.logger),
		junction.WithPathCompression(a.cfg.PathCompression),
	}
}

// readPoints parses the file named by args[0], or stdin when no file or "-" is given.
func (a *app) readPoints(args []string) (space.PointSet, error) {
	var (
		ps  space.PointSet
		err error
		src = "stdin"
	)
	if len(args) == 0 || args[0] == "-" {
		ps, err = space.Parse(a.stdin)
	} else {
		src = args[0]
		ps, err = space.ParseFile(src)
	}
	if err != nil {
		return nil, fmt.Errorf("read points from %s: %w", src, err)
	}
	a.logger.Debug("points loaded", "source", src, "count", ps.Len())

	return ps, nil
}
