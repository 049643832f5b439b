package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"gridbot/internal/simulator"
)

var rootCmd = &cobra.Command{
	Use:   "gridbot [script...]",
	Short: "Simulate a toy robot on a bounded grid",
	Long: `Reads robot commands (PLACE X,Y,F / MOVE / LEFT / RIGHT / REPORT),
one per line, and prints REPORT output to stdout. Each script file is
run as its own session with a fresh robot; with no arguments commands
are read from stdin.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")
		levelStr, _ := cmd.Flags().GetString("log-level")

		logger := newLogger(levelStr, os.Stderr)

		grid, err := simulator.NewGrid(width, height)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			runSession(grid, os.Stdin, "stdin", logger)
			return nil
		}

		failed := false
		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				logger.Error("cannot open script", "path", path, "err", err)
				failed = true
				continue
			}
			runSession(grid, f, path, logger)
			f.Close()
		}
		if failed {
			return fmt.Errorf("some scripts could not be read")
		}
		return nil
	},
}

// runSession feeds every line of r to a fresh session. Parse failures
// are logged and skipped; they never abort the rest of the stream.
func runSession(grid simulator.Grid, r io.Reader, name string, logger *slog.Logger) {
	session := simulator.NewSession(grid, &simulator.ConsoleDisplay{Out: os.Stdout})
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		_, err := session.Run(scanner.Text())
		var invalid *simulator.InvalidCommandError
		switch {
		case err == nil:
		case errors.Is(err, simulator.ErrEmptyInput):
			logger.Debug("skipping blank line", "script", name, "line", lineNo)
		case errors.As(err, &invalid):
			logger.Warn("invalid command", "script", name, "line", lineNo, "token", invalid.Token)
		default:
			logger.Error("command failed", "script", name, "line", lineNo, "err", err)
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Error("reading script", "script", name, "err", err)
	}
}

func newLogger(levelStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func init() {
	rootCmd.Flags().Int("width", simulator.DefaultGrid.Width, "grid width")
	rootCmd.Flags().Int("height", simulator.DefaultGrid.Height, "grid height")
	rootCmd.Flags().String("log-level", "info", "log level (debug|info|warn|error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
