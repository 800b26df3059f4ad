// chessconsole is a thin line-oriented REPL over pkg/chess, for manual
// experimentation and debugging. All of the engine's logic lives in pkg/board,
// pkg/eval, and pkg/search; this binary only wires stdin/stdout to it.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"

	"github.com/chessgen/chessgen/pkg/board"
	"github.com/chessgen/chessgen/pkg/board/fen"
	"github.com/chessgen/chessgen/pkg/chess"
)

var version = build.NewVersion(0, 1, 0)

var startFEN = flag.String("fen", "", "Start position (default to standard)")

func main() {
	flag.Parse()
	ctx := context.Background()

	b := chess.StartingBoard()
	if *startFEN != "" {
		pos, err := fen.Decode(*startFEN)
		if err != nil {
			logw.Exitf(ctx, "Invalid fen '%v': %v", *startFEN, err)
		}
		b = chess.FromPosition(pos)
	}

	logw.Infof(ctx, "chessconsole %v starting", version)
	fmt.Println("chessconsole: move <from><to>[promo] | show | fen <fen> | go <budget_ms> | perft <depth> | quit")
	printBoard(b)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		logw.Debugf(ctx, "<< %v", line)

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]
		if cmd == "move" && len(args) == 1 {
			cmd, args = strings.ToLower(args[0]), nil
		}

		switch cmd {
		case "show", "print", "p":
			printBoard(b)

		case "fen":
			pos, err := fen.Decode(strings.Join(args, " "))
			if err != nil {
				fmt.Println("invalid fen:", err)
				continue
			}
			b = chess.FromPosition(pos)
			printBoard(b)

		case "go":
			budget := 1000
			if len(args) > 0 {
				if v, err := strconv.Atoi(args[0]); err == nil {
					budget = v
				}
			}
			logw.Infof(ctx, "search launched: budget=%vms", budget)
			next := chess.SearchWithin(ctx, b, budget)
			b = next
			logw.Infof(ctx, "search halted")
			printBoard(b)

		case "perft":
			depth := 4
			if len(args) > 0 {
				if v, err := strconv.Atoi(args[0]); err == nil {
					depth = v
				}
			}
			fmt.Println("perft:", board.Perft(b.Position(), depth))

		case "quit", "exit", "q":
			return

		case "":
			// ignore

		default:
			next, err := applyMove(b, cmd)
			if err != nil {
				fmt.Println("invalid move:", err)
				continue
			}
			b = next
			logw.Infof(ctx, "move applied: %v", cmd)
			printBoard(b)
		}
	}
}

// applyMove parses and applies an algebraic coordinate move such as "e2e4" or
// "e7e8q".
func applyMove(b chess.Board, str string) (chess.Board, error) {
	m, err := board.ParseMove(str)
	if err != nil {
		return chess.Board{}, err
	}
	if m.Promotion.IsValid() {
		b = b.WithPromotionPiece(m.Promotion)
	}
	return b.Move(int(m.From.File()), int(m.From.Rank()), int(m.To.File()), int(m.To.Rank()))
}

func printBoard(b chess.Board) {
	fmt.Println()
	fmt.Println(b)
	fmt.Println()
}
