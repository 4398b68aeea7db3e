package uci

import (
	"fmt"
	"strconv"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// goParams are the arguments of a "go" command. Unset values are -1.
type goParams struct {
	wtime    int
	btime    int
	movetime int
	depth    int
}

// parseGo reads the "go" arguments the engine understands. Other
// keywords such as "infinite" or "winc", and their values, are skipped.
func parseGo(args []string) (goParams, error) {
	p := goParams{wtime: -1, btime: -1, movetime: -1, depth: -1}
	for i := 0; i < len(args); i++ {
		var dst *int
		switch args[i] {
		case "wtime":
			dst = &p.wtime
		case "btime":
			dst = &p.btime
		case "movetime":
			dst = &p.movetime
		case "depth":
			dst = &p.depth
		default:
			continue
		}
		if i+1 >= len(args) {
			return p, fmt.Errorf("go %s: missing value", args[i])
		}
		n, err := strconv.Atoi(args[i+1])
		if err != nil {
			return p, fmt.Errorf("go %s %q: %w", args[i], args[i+1], err)
		}
		*dst = n
		i++
	}
	return p, nil
}

// budget returns the time in milliseconds offered to colour, preferring
// movetime over the side's clock.
func (p goParams) budget(colour chess.Colour) (int, bool) {
	if p.movetime >= 0 {
		return p.movetime, true
	}
	clock := p.wtime
	if colour == chess.Black {
		clock = p.btime
	}
	return clock, clock >= 0
}
