package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/render"
)

func runSolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	pegs, disks := solvePegs, solveDisks

	if pegs == 0 || disks == 0 {
		if !isTerminal(os.Stdin) {
			return errors.New("--pegs and --disks are required when stdin is not a terminal")
		}
		if err := promptSolve(&pegs, &disks); err != nil {
			return err
		}
	}

	variant, err := domain.ParseVariant(pegs)
	if err != nil {
		return err
	}
	svc := newService()
	sol, st, err := svc.Solve(ctx, variant, disks)
	if err != nil {
		return fmt.Errorf("solve %s with %d disks: %w", variant, disks, err)
	}
	logger.Debug("solved", "variant", variant.String(), "disks", disks, "moves", len(sol.Moves), "nodes", st.Nodes, "dur", st.Duration)

	if solveVerify || cfg.Solver.Verify {
		ok, conflicts, err := svc.Verify(ctx, sol)
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		if !ok {
			logger.Error("solution failed verification", "conflicts", conflicts)
			return fmt.Errorf("solution failed verification at step %d (%s)", conflicts[0].Step, conflicts[0].Kind)
		}
		logger.Info("solution verified", "moves", len(sol.Moves))
	}
	return writeSolution(cmd.OutOrStdout(), sol, solveFormat)
}

func writeSolution(w io.Writer, sol *domain.Solution, format string) error {
	switch strings.ToLower(format) {
	case "", "text":
		fmt.Fprintln(w, render.Rule())
		fmt.Fprintln(w, render.Section("SOLUTION"))
		return render.WriteMoves(w, sol.Moves)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sol)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sol); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// promptSolve asks for whichever of pegs and disks is still unset.
func promptSolve(pegs, disks *int) error {
	var fields []huh.Field
	if *pegs == 0 {
		*pegs = 3
		fields = append(fields, huh.NewSelect[int]().
			Title("Number of pegs").
			Options(huh.NewOptions(3, 4)...).
			Value(pegs))
	}
	var diskText string
	if *disks == 0 {
		fields = append(fields, huh.NewInput().
			Title("Number of disks (integer 1 or greater)").
			Value(&diskText).
			Validate(func(s string) error {
				n, err := strconv.Atoi(strings.TrimSpace(s))
				if err != nil || n < 1 {
					return errors.New("enter an integer 1 or greater")
				}
				return nil
			}))
	}
	fmt.Fprintln(os.Stderr, render.Styles.Title.Render("TOWER OF HANOI SOLVER"))
	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return err
	}
	if *disks == 0 {
		n, err := strconv.Atoi(strings.TrimSpace(diskText))
		if err != nil {
			return err
		}
		*disks = n
	}
	return nil
}
