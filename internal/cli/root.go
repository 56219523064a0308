// Package cli implements the command-line interface for nxncube.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxncube/internal/config"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath     string
	configPath string
	verbose    bool

	// Set by the root command before any subcommand runs.
	cfg    config.Config
	logger *slog.Logger
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "nxncube",
	Short: "N×N×N cube simulator",
	Long: `nxncube - A command-line simulator for N×N×N Rubik's cubes.

Create cubes of any size, turn rows, columns and face slices, scramble and
undo, keep named snapshots, and replay sessions stored in a local SQLite
database.

Moves use layer notation (H<row>, V<col>, S<slice>, with ' for
counter-clockwise) or outer-face letters U D L R F B with ' and 2.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.nxncube/nxncube.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.nxncube/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	if dbPath != "" {
		loaded.DBPath = dbPath
	}
	cfg = loaded

	logger.Debug("loaded config",
		slog.String("path", path),
		slog.Int("default_size", cfg.DefaultSize),
		slog.Int("scramble_moves", cfg.ScrambleMoves),
	)
	return nil
}
