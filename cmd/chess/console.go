package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/console-chess-go/internal/chess"
	"github.com/lgbarn/console-chess-go/internal/config"
	"github.com/lgbarn/console-chess-go/internal/engine"
	"github.com/lgbarn/console-chess-go/internal/output"
)

const (
	movePrompt      = "%s player, type your move (e.g. 'a2 a3'): "
	promotionPrompt = "Promote the pawn to a [Q]ueen, [R]ook, [B]ishop, or k[N]ight? "
)

// Console runs a two-player game over a line-oriented reader and writer.
type Console struct {
	cfg    *config.Config
	in     *bufio.Scanner
	out    io.Writer
	writer output.PositionWriter
}

// NewConsole creates a console reading moves from in and writing to
// cfg.OutputFile.
func NewConsole(cfg *config.Config, in io.Reader) *Console {
	return &Console{
		cfg:    cfg,
		in:     bufio.NewScanner(in),
		out:    cfg.OutputFile,
		writer: output.NewWriter(cfg.OutputFile, cfg.Display),
	}
}

// Play runs the game from start until a king is captured. Running out of
// input ends the game early without error.
func (c *Console) Play(start engine.Position) error {
	p := start
	last := ""
	for !p.Over() {
		if err := c.writer.WritePosition(&p, last); err != nil {
			return err
		}
		line, ok := c.readLine(fmt.Sprintf(movePrompt, p.ToMove))
		if !ok {
			return c.in.Err()
		}

		m, err := p.Validate(line)
		if err != nil {
			fmt.Fprintln(c.out, engine.CodeOf(err).Message())
			continue
		}
		promotion := chess.None
		if m.NeedsPromotion() {
			if promotion, ok = c.readPromotion(); !ok {
				return c.in.Err()
			}
		}
		next, err := m.Apply(promotion)
		if err != nil {
			return err
		}
		c.cfg.Logf(2, "ply %d: %s", next.Ply, m)
		p, last = next, m.String()
	}

	if err := c.writer.WritePosition(&p, last); err != nil {
		return err
	}
	winner, _ := p.Winner()
	_, err := fmt.Fprintf(c.out, "Game finished. %s won.\n", winner)
	return err
}

// readPromotion asks until one of q, r, b or n is entered.
func (c *Console) readPromotion() (chess.Kind, bool) {
	for {
		line, ok := c.readLine(promotionPrompt)
		if !ok {
			return chess.None, false
		}
		kind, err := engine.ParsePromotion(line)
		if err == nil {
			return kind, true
		}
		fmt.Fprintf(c.out, "Input only `Q', `R', `B', or `N', not %s\n", strings.ToLower(strings.TrimSpace(line)))
	}
}

func (c *Console) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		fmt.Fprintln(c.out)
		return "", false
	}
	return c.in.Text(), true
}
