package terminal

import (
	"bytes"
	"qwixx/engine"
	"qwixx/game"
	"qwixx/player"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newTestPlayer(name string) *player.Player {
	return player.NewPlayer(name, game.NewBoard(game.NewStandardRules(), nil))
}

func TestChoose(t *testing.T) {
	options := []game.Coord{{Row: 0, Col: 5}, {Row: 1, Col: 5}}

	tests := []struct {
		name  string
		input string
		want  engine.Move
	}{
		{name: "pass", input: "-\n", want: engine.Pass()},
		{name: "offered square", input: "B6\n", want: engine.MarkAt(game.Coord{Row: 1, Col: 5})},
		{name: "lower case", input: "a6\n", want: engine.MarkAt(game.Coord{Row: 0, Col: 5})},
		{name: "retries malformed input", input: "zz\nE1\nA6\n", want: engine.MarkAt(game.Coord{Row: 0, Col: 5})},
		{name: "retries squares not offered", input: "C6\n-\n", want: engine.Pass()},
		{name: "closed input passes", input: "", want: engine.Pass()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			term := New(strings.NewReader(tt.input), &out)

			got := term.ChooseOffturnMove(newTestPlayer("ann"), options)

			require.Equal(t, tt.want, got)
			require.Contains(t, out.String(), "Options: A6, B6")
		})
	}
}

func TestChooseOnturnPrompt(t *testing.T) {
	var out bytes.Buffer
	term := New(strings.NewReader("-\n-\n"), &out)
	p := newTestPlayer("ann")

	term.ChooseOnturnMove(p, true, nil)
	term.ChooseOnturnMove(p, false, nil)

	require.Contains(t, out.String(), "choose your white move")
	require.Contains(t, out.String(), "choose your color move")
	require.Contains(t, out.String(), "Options: none")
}

func TestDisplayBoard(t *testing.T) {
	var out bytes.Buffer
	term := New(strings.NewReader(""), &out)
	p := newTestPlayer("ann")
	require.True(t, p.Board.Mark(0, 0))
	p.Penalize()

	term.DisplayBoard(p)

	lines := strings.Split(out.String(), "\n")
	require.Equal(t, "~~~ ann ~~~", lines[0])
	require.True(t, strings.HasPrefix(lines[2], "A    xx  R3"), "Marked squares are crossed out: %q", lines[2])
	require.True(t, strings.HasSuffix(lines[4], "G2  GL"), "Green row ends with its lock: %q", lines[4])
	require.Contains(t, out.String(), "Penalties: 1  Score: -4")
}

func TestDisplayPodium(t *testing.T) {
	var out bytes.Buffer
	term := New(strings.NewReader(""), &out)
	ann, bo := newTestPlayer("ann"), newTestPlayer("bo")
	bo.Penalize()

	term.DisplayPodium(engine.Rank([]*player.Player{ann, bo}))

	require.Contains(t, out.String(), "Congratulations, ann!")
	require.Contains(t, out.String(), "1st place: ann with a score of 0.")
	require.Contains(t, out.String(), "2nd place: bo with a score of -5.")
}

func TestOrdinal(t *testing.T) {
	for n, want := range map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 21: "21st"} {
		require.Equal(t, want, ordinal(n))
	}
}

func TestDisplayDice(t *testing.T) {
	var out bytes.Buffer
	term := New(strings.NewReader(""), &out)
	p := newTestPlayer("ann")
	dice := game.NewDiceSet(rand.New(rand.NewSource(1)))

	term.DisplayDice(p, dice)
	require.Equal(t, "Dice: "+dice.String()+"\n", out.String(), "No locks shows every die")

	out.Reset()
	p.Board.LockedColors().Add(game.Green)
	term.DisplayDice(p, dice)

	fields := strings.Fields(strings.TrimPrefix(out.String(), "Dice: "))
	require.Len(t, fields, 6)
	for i, d := range dice.Dice() {
		if d.Color == game.Green {
			require.Equal(t, "xx", fields[i], "Locked die is crossed out")
		} else {
			require.Equal(t, d.String(), fields[i])
		}
	}
}
