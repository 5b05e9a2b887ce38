package main

import (
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"svw.info/hanoi/internal/config"
	"svw.info/hanoi/internal/hint"
	"svw.info/hanoi/internal/logging"
	"svw.info/hanoi/internal/solver"
	"svw.info/hanoi/internal/usecase"
	"svw.info/hanoi/internal/validator"
)

// --- Global Command Variables ---
var (
	configPath string
	logLevel   string

	solvePegs   int
	solveDisks  int
	solveVerify bool
	solveFormat string

	playDisks int
	playPlain bool

	cfg    *config.Config
	logger *slog.Logger

	rootCmd = &cobra.Command{
		Use:               "hanoi",
		Short:             "Solve or play the Tower of Hanoi",
		Long:              "hanoi prints optimal move lists for the 3- and 4-peg puzzle and hosts an interactive 3-peg game.",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Print the move sequence for n disks on 3 or 4 pegs",
		Args:  cobra.NoArgs,
		RunE:  runSolve, // Defined in cmd_solve.go
	}

	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Play the 3-peg puzzle in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runPlay, // Defined in cmd_play.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug|info|warn|error (overrides config)")

	solveCmd.Flags().IntVar(&solvePegs, "pegs", 0, "number of pegs: 3 or 4 (prompted when omitted)")
	solveCmd.Flags().IntVar(&solveDisks, "disks", 0, "number of disks, 1 or greater (prompted when omitted)")
	solveCmd.Flags().BoolVar(&solveVerify, "verify", false, "replay the solution against a stack model before printing")
	solveCmd.Flags().StringVar(&solveFormat, "format", "text", "output format: text|json|yaml")

	playCmd.Flags().IntVar(&playDisks, "disks", 0, "number of disks for the first game (prompted when omitted)")
	playCmd.Flags().BoolVar(&playPlain, "plain", false, "use the line-mode game even on a terminal")

	rootCmd.AddCommand(solveCmd, playCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		c.Log.Level = logLevel
	}
	l, err := logging.New(os.Stderr, c.Log.Level, c.Log.Format)
	if err != nil {
		return err
	}
	cfg, logger = c, l
	logger.Debug("configuration loaded", "path", configPath, "log_level", c.Log.Level)
	return nil
}

// newService wires solvers, validator and hinter into the use-case layer.
func newService() *usecase.Service {
	svc := usecase.NewService(solver.NewThreePeg(), solver.NewFourPeg(), validator.New(), hint.NewOptimal())
	svc.MaxSolveDisks = cfg.Solver.MaxDisks
	return svc
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
