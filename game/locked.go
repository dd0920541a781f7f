package game

// LockedColors is the set of colors that can no longer be played.
// A Board owns it; its Rows keep a reference for reads. Boards may share one set.
type LockedColors struct {
	colors map[Color]struct{}
}

func NewLockedColors(colors ...Color) *LockedColors {
	lc := &LockedColors{colors: make(map[Color]struct{})}
	for _, c := range colors {
		lc.Add(c)
	}
	return lc
}

func (lc *LockedColors) Add(c Color) {
	lc.colors[c] = struct{}{}
}

func (lc *LockedColors) Contains(c Color) bool {
	_, ok := lc.colors[c]
	return ok
}

func (lc *LockedColors) Len() int {
	return len(lc.colors)
}

// Colors returns the locked colors in board order.
func (lc *LockedColors) Colors() []Color {
	var out []Color
	for _, c := range Colors {
		if lc.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}
