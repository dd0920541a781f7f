package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newTestDice(seed uint64) *DiceSet {
	return NewDiceSet(rand.New(rand.NewSource(seed)))
}

func setRolls(ds *DiceSet, rolls ...int) {
	for i, r := range rolls {
		ds.dice[i].LastRoll = r
	}
}

func TestDiceSetLayout(t *testing.T) {
	ds := newTestDice(1)
	dice := ds.Dice()

	require.Len(t, dice, 6)
	require.Equal(t, []Color{NoColor, NoColor, Red, Yellow, Green, Blue},
		[]Color{dice[0].Color, dice[1].Color, dice[2].Color, dice[3].Color, dice[4].Color, dice[5].Color})
}

func TestDiceSetRoll(t *testing.T) {
	t.Run("rolls stay in range", func(t *testing.T) {
		ds := newTestDice(7)
		for i := 0; i < 200; i++ {
			ds.Roll()
			for _, d := range ds.Dice() {
				require.GreaterOrEqual(t, d.LastRoll, 1)
				require.LessOrEqual(t, d.LastRoll, 6)
			}
		}
	})

	t.Run("same seed gives the same rolls", func(t *testing.T) {
		a, b := newTestDice(42), newTestDice(42)
		for i := 0; i < 10; i++ {
			a.Roll()
			b.Roll()
			require.Equal(t, a.Dice(), b.Dice())
		}
	})

	t.Run("every face shows up", func(t *testing.T) {
		ds := newTestDice(3)
		seen := map[int]bool{}
		for i := 0; i < 500; i++ {
			ds.Roll()
			seen[ds.Dice()[0].LastRoll] = true
		}
		require.Len(t, seen, 6)
	})
}

func TestDiceSetOptions(t *testing.T) {
	t.Run("white options", func(t *testing.T) {
		ds := newTestDice(1)
		setRolls(ds, 3, 5, 1, 1, 1, 1)

		require.Equal(t, []Option{{NoColor, 8}}, ds.WhiteOptions())
		require.Equal(t, ds.WhiteOptions(), ds.Options(true))
	})

	t.Run("color options", func(t *testing.T) {
		ds := newTestDice(1)
		setRolls(ds, 3, 5, 1, 2, 3, 4)

		want := []Option{
			{Red, 4}, {Red, 6},
			{Yellow, 5}, {Yellow, 7},
			{Green, 6}, {Green, 8},
			{Blue, 7}, {Blue, 9},
		}
		require.Equal(t, want, ds.ColorOptions())
		require.Equal(t, want, ds.Options(false))
	})

	t.Run("duplicate sums are kept", func(t *testing.T) {
		ds := newTestDice(1)
		setRolls(ds, 2, 2, 6, 6, 6, 6)

		require.Len(t, ds.ColorOptions(), 8)
	})
}

func TestDiceString(t *testing.T) {
	ds := newTestDice(1)
	setRolls(ds, 3, 5, 1, 2, 3, 4)
	require.Equal(t, "W3 W5 R1 Y2 G3 B4", ds.String())
}
