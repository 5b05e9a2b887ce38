// Package console runs the game as a plain line-oriented loop. It is used
// when stdin is not a terminal or when the plain UI is requested.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"svw.info/hanoi/internal/config"
	"svw.info/hanoi/internal/game"
	"svw.info/hanoi/internal/render"
	"svw.info/hanoi/internal/usecase"
)

// ErrInputClosed is returned when input ends before a game is solved.
var ErrInputClosed = errors.New("input closed before the game was solved")

type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	svc    *usecase.Service
	limits config.GameConfig
	log    *slog.Logger

	// Now is the clock used for the elapsed time report.
	Now func() time.Time
}

func New(in io.Reader, out io.Writer, svc *usecase.Service, limits config.GameConfig, logger *slog.Logger) *Console {
	return &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		svc:    svc,
		limits: limits,
		log:    logger,
		Now:    time.Now,
	}
}

// Run plays games until the player declines a replay. A positive disks
// value skips the prompt for the first game.
func (c *Console) Run(ctx context.Context, disks int) error {
	for {
		c.println(render.Rule())
		c.println(render.Styles.Title.Render("TOWER OF HANOI"))
		c.println(render.Rule())
		c.println(render.Rules())
		c.println(render.Rule())
		c.println(render.Section("SETTINGS"))

		n := disks
		disks = 0
		if c.limits.CheckDisks(n) != nil {
			var err error
			if n, err = c.askDisks(); err != nil {
				return err
			}
		}
		c.println(render.Rule())

		if err := c.play(ctx, n); err != nil {
			return err
		}

		c.printf("Play again? (y/n): ")
		line, ok := c.readLine()
		if !ok || strings.ToLower(line) != "y" {
			break
		}
	}
	c.println(render.Rule())
	c.println(render.Styles.Success.Render("[ THANKS FOR PLAYING! ]"))
	return nil
}

func (c *Console) askDisks() (int, error) {
	prompt := fmt.Sprintf("> Please enter a number of disks (%d-%d): ", c.limits.MinDisks, c.limits.MaxDisks)
	for {
		c.printf("%s", prompt)
		line, ok := c.readLine()
		if !ok {
			return 0, ErrInputClosed
		}
		n, err := strconv.Atoi(line)
		if err == nil && c.limits.CheckDisks(n) == nil {
			return n, nil
		}
	}
}

func (c *Console) play(ctx context.Context, n int) error {
	g, err := c.svc.NewGame(n)
	if err != nil {
		return err
	}
	log := c.log.With("session", g.ID(), "disks", n)
	log.Info("game started")
	started := c.Now()
	c.println(render.Board(g.Board()))

	for !g.IsSolved() {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.printf("> Moves: %s | Enter a move: ", render.Count(g.MoveCount()))
		line, ok := c.readLine()
		if !ok {
			log.Warn("input closed", "moves", g.MoveCount())
			return ErrInputClosed
		}
		c.println(render.Rule())

		if line == "?" {
			h, found, err := c.svc.Hint(ctx, g)
			if err != nil {
				log.Error("hint failed", "err", err)
				c.println(render.Styles.Error.Render("[ ERROR ] " + err.Error()))
			} else if found {
				c.println(render.Styles.Muted.Render("[ HINT ] " + h.Message))
			}
			c.println(render.Board(g.Board()))
			continue
		}

		m, err := game.ParseMove(line)
		if err == nil {
			err = g.Move(m.From, m.To)
		}
		c.println(render.Board(g.Board()))
		if err != nil {
			log.Debug("move rejected", "input", line, "err", err)
			c.println(render.Styles.Error.Render("[ ERROR ] " + render.MoveErrorMessage(err)))
			continue
		}
		log.Debug("move", "from", m.From, "to", m.To, "moves", g.MoveCount())
	}

	took := c.Now().Sub(started)
	log.Info("game solved", "moves", g.MoveCount(), "minimum", g.MinimumMoves(), "elapsed", took.Round(time.Millisecond))
	c.println(render.Rule())
	c.println(render.Summary(n, g.MoveCount(), g.MinimumMoves(), took))
	return nil
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) println(s string) { fmt.Fprintln(c.out, s) }

func (c *Console) printf(format string, args ...any) { fmt.Fprintf(c.out, format, args...) }
