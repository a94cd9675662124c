package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lgbarn/console-chess-go/internal/chess"
	"github.com/lgbarn/console-chess-go/internal/engine"
	"github.com/lgbarn/console-chess-go/internal/errors"
)

// Parse reads a replay file. Each non-blank line is one of
//
//	fen <FEN>               start position, before any move
//	end <FEN placement>     expected final board
//	<from> <to> [q|r|b|n]   one ply, with an optional promotion choice
//
// Text after '#' is a comment. Moves are checked for legality only when the
// script is replayed.
func Parse(r io.Reader, name string) (Script, error) {
	s := Script{Name: name}
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		lineErr := func(err error, got string) error {
			return &errors.ScriptError{Err: err, Script: name, Line: lineNum, Got: got}
		}

		switch strings.ToLower(fields[0]) {
		case "fen":
			if len(s.Plies) > 0 || s.Start != nil {
				return Script{}, lineErr(errors.ErrInvalidScript, "fen must come first and only once")
			}
			p, err := engine.NewPositionFromFEN(strings.Join(fields[1:], " "))
			if err != nil {
				return Script{}, lineErr(err, "")
			}
			s.Start = &p
		case "end":
			if len(fields) != 2 {
				return Script{}, lineErr(errors.ErrInvalidScript, fmt.Sprintf("%q", line))
			}
			p, err := engine.NewPositionFromFEN(fields[1])
			if err != nil {
				return Script{}, lineErr(err, "")
			}
			s.End = &p.Board
		default:
			ply, err := parsePly(fields)
			if err != nil {
				return Script{}, lineErr(err, fmt.Sprintf("%q", strings.TrimSpace(line)))
			}
			s.Plies = append(s.Plies, ply)
		}
	}
	if err := scanner.Err(); err != nil {
		return Script{}, errors.Wrapf(err, "reading %s", name)
	}
	return s, nil
}

func parsePly(fields []string) (Ply, error) {
	switch len(fields) {
	case 2:
		return Ply{Input: fields[0] + " " + fields[1]}, nil
	case 3:
		kind, err := engine.ParsePromotion(fields[2])
		if err != nil {
			return Ply{}, err
		}
		return Ply{Input: fields[0] + " " + fields[1], Promote: kind}, nil
	default:
		return Ply{}, errors.ErrInvalidScript
	}
}

// ParseFile reads a replay file from disk. The script is named after the file.
func ParseFile(path string) (Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return Script{}, err
	}
	defer f.Close()
	return Parse(f, filepath.Base(path))
}

// Format writes a script in the replay file syntax. Expected outcomes are
// not part of the syntax and are dropped.
func Format(w io.Writer, s Script) error {
	bw := bufio.NewWriter(w)
	if s.Name != "" {
		fmt.Fprintf(bw, "# %s\n", s.Name)
	}
	if s.Start != nil {
		fmt.Fprintf(bw, "fen %s\n", s.Start.FEN())
	}
	for _, ply := range s.Plies {
		bw.WriteString(ply.Input)
		if ply.Promote != chess.None {
			bw.WriteByte(' ')
			bw.WriteByte(ply.Promote.Letter() | 0x20)
		}
		bw.WriteByte('\n')
	}
	if s.End != nil {
		end := engine.NewPositionFromBoard(s.End, chess.White)
		fmt.Fprintf(bw, "end %s\n", strings.Fields(end.FEN())[0])
	}
	return bw.Flush()
}
