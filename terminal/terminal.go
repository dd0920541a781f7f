// Package terminal plays Qwixx over a line-based text stream.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"qwixx/engine"
	"qwixx/game"
	"qwixx/player"
	"qwixx/utils"
	"strings"
)

const passInput = "-"

var _ engine.Collaborator = (*Terminal)(nil)

// Terminal reads moves from in and writes the game to out.
type Terminal struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (t *Terminal) ChooseOffturnMove(p *player.Player, options []game.Coord) engine.Move {
	return t.choose(p, fmt.Sprintf("%s, choose your white move (%q to opt out): ", p.Name, passInput), options)
}

func (t *Terminal) ChooseOnturnMove(p *player.Player, isWhiteTurn bool, options []game.Coord) engine.Move {
	kind := "color"
	if isWhiteTurn {
		kind = "white"
	}
	return t.choose(p, fmt.Sprintf("%s, choose your %s move (%q to opt out): ", p.Name, kind, passInput), options)
}

// choose prompts until the player passes or names one of options. Closed input counts as a pass.
func (t *Terminal) choose(p *player.Player, prompt string, options []game.Coord) engine.Move {
	t.printf("Options: %s\n", joinCoords(options))
	for {
		t.printf("%s", prompt)
		if !t.in.Scan() {
			t.printf("\n")
			return engine.Pass()
		}
		text := strings.TrimSpace(t.in.Text())
		if text == passInput {
			return engine.Pass()
		}
		if !p.ValidA1(text) {
			t.printf("%q is not a square on the board.\n", text)
			continue
		}
		coord, err := game.A1ToCoord(text)
		if err != nil {
			t.printf("%v\n", err)
			continue
		}
		if !utils.Contains(options, coord) {
			t.printf("%s is not one of your options.\n", coord)
			continue
		}
		return engine.MarkAt(coord)
	}
}

func (t *Terminal) DisplayPlayerOrder(order []*player.Player) {
	t.printf("The player order will be:\n")
	for i, p := range order {
		t.printf("\t%d. %s\n", i+1, p.Name)
	}
}

func (t *Terminal) DisplayBoard(p *player.Player) {
	b := p.Board
	var sb strings.Builder
	fmt.Fprintf(&sb, "~~~ %s ~~~\n   ", p.Name)
	for c := 1; c <= b.Columns(); c++ {
		fmt.Fprintf(&sb, "%4d", c)
	}
	sb.WriteString("\n")
	for r, row := range b.Rows() {
		fmt.Fprintf(&sb, "%c  ", 'A'+r)
		for _, sq := range row.Squares() {
			if sq.Marked() {
				sb.WriteString("  xx")
			} else {
				fmt.Fprintf(&sb, "%4s", sq.String())
			}
		}
		lock := row.Color().String() + "L"
		if b.LockedColors().Contains(row.Color()) {
			lock = "xx"
		}
		fmt.Fprintf(&sb, "  %s\n", lock)
	}
	fmt.Fprintf(&sb, "Penalties: %d  Score: %d\n", b.Penalties(), b.Score())
	t.printf("%s", sb.String())
}

// DisplayDice crosses out the colored dice whose row is locked for p.
func (t *Terminal) DisplayDice(p *player.Player, dice *game.DiceSet) {
	locked := p.Board.LockedColors()
	parts := make([]string, 0, len(dice.Dice()))
	for _, d := range dice.Dice() {
		if d.Color != game.NoColor && locked.Contains(d.Color) {
			parts = append(parts, "xx")
			continue
		}
		parts = append(parts, d.String())
	}
	t.printf("Dice: %s\n", strings.Join(parts, " "))
}

func (t *Terminal) DisplayOptions(p *player.Player, white, colored []game.Coord) {
	t.printf("%s rolled. White: %s  Colored: %s\n", p.Name, joinCoords(white), joinCoords(colored))
}

func (t *Terminal) NotifyPenalty(p *player.Player) {
	t.printf("%s took a penalty!\n", p.Name)
}

func (t *Terminal) NotifyBoardState(p *player.Player, state game.BoardState) {
	switch state {
	case game.Locked:
		t.printf("Two rows are locked on %s's board. The game is over.\n", p.Name)
	case game.Penalties:
		t.printf("%s has too many penalties. The game is over.\n", p.Name)
	}
}

func (t *Terminal) DisplayPodium(standings []engine.Standing) {
	if len(standings) == 0 {
		return
	}
	t.printf("~~~ PODIUM ~~~\n")
	t.printf("Congratulations, %s!\n", standings[0].Player.Name)
	for _, s := range standings {
		t.printf("%s place: %s with a score of %d.\n", ordinal(s.Place), s.Player.Name, s.Score)
	}
}

func (t *Terminal) printf(format string, args ...any) {
	fmt.Fprintf(t.out, format, args...)
}

func joinCoords(coords []game.Coord) string {
	if len(coords) == 0 {
		return "none"
	}
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
