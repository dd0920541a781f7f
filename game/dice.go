package game

import (
	"strconv"
	"strings"

	"golang.org/x/exp/rand"
)

const DefaultSides = 6

// Die is a single die with its most recent roll.
type Die struct {
	Color    Color
	Sides    int
	LastRoll int
}

func (d Die) String() string {
	return d.Color.String() + strconv.Itoa(d.LastRoll)
}

// DiceSet is the six Qwixx dice: two white and one per row color.
type DiceSet struct {
	dice []Die
	rng  *rand.Rand
}

// NewDiceSet creates the standard dice and rolls them once.
func NewDiceSet(rng *rand.Rand) *DiceSet {
	colors := []Color{NoColor, NoColor, Red, Yellow, Green, Blue}
	ds := &DiceSet{rng: rng}
	for _, c := range colors {
		ds.dice = append(ds.dice, Die{Color: c, Sides: DefaultSides})
	}
	ds.Roll()
	return ds
}

// Roll re-rolls every die uniformly over 1..Sides.
func (ds *DiceSet) Roll() {
	for i := range ds.dice {
		ds.dice[i].LastRoll = rollDie(ds.rng, ds.dice[i].Sides)
	}
}

func rollDie(rng *rand.Rand, sides int) int {
	return rng.Intn(sides) + 1
}

// Dice returns a copy of the dice in their fixed order.
func (ds *DiceSet) Dice() []Die {
	out := make([]Die, len(ds.dice))
	copy(out, ds.dice)
	return out
}

func (ds *DiceSet) white() []Die {
	var out []Die
	for _, d := range ds.dice {
		if d.Color == NoColor {
			out = append(out, d)
		}
	}
	return out
}

func (ds *DiceSet) colored() []Die {
	var out []Die
	for _, d := range ds.dice {
		if d.Color != NoColor {
			out = append(out, d)
		}
	}
	return out
}

// WhiteOptions sums every pair of white dice. With two white dice that is a single option.
func (ds *DiceSet) WhiteOptions() []Option {
	white := ds.white()
	var options []Option
	for i := 0; i < len(white); i++ {
		for j := i + 1; j < len(white); j++ {
			options = append(options, Option{Color: NoColor, Value: white[i].LastRoll + white[j].LastRoll})
		}
	}
	return options
}

// ColorOptions pairs each colored die with each white die, tagged with the colored die's color.
func (ds *DiceSet) ColorOptions() []Option {
	var options []Option
	for _, c := range ds.colored() {
		for _, w := range ds.white() {
			options = append(options, Option{Color: c.Color, Value: c.LastRoll + w.LastRoll})
		}
	}
	return options
}

// Options returns the white options on a white turn and the colored options otherwise.
func (ds *DiceSet) Options(isWhiteTurn bool) []Option {
	if isWhiteTurn {
		return ds.WhiteOptions()
	}
	return ds.ColorOptions()
}

func (ds *DiceSet) String() string {
	parts := make([]string, len(ds.dice))
	for i, d := range ds.dice {
		parts[i] = d.String()
	}
	return strings.Join(parts, " ")
}
