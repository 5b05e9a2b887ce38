package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"svw.info/hanoi/internal/console"
	"svw.info/hanoi/internal/logging"
	"svw.info/hanoi/internal/tui"
)

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc := newService()

	if playPlain || cfg.UI.Plain || !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		logger.Debug("starting line-mode game")
		return console.New(cmd.InOrStdin(), cmd.OutOrStdout(), svc, cfg.Game, logger).Run(ctx, playDisks)
	}

	// stderr shares the terminal with the TUI, so the model logs nowhere.
	m := tui.New(ctx, svc, cfg.Game, logging.Discard(), playDisks)
	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(tui.Model); ok {
		logger.Info("session finished", "games", fm.Played())
	}
	return nil
}
