package engine

import (
	"fmt"
	"qwixx/player"
	"qwixx/utils"
)

// OtherPlayers returns the players after p in turn order, wrapping around, without p.
// A negative index looks p up in order.
func OtherPlayers(order []*player.Player, p *player.Player, index int) []*player.Player {
	if index < 0 {
		index = utils.FindIndex(order, p)
	}
	if index < 0 || index >= len(order) || order[index] != p {
		panic(fmt.Sprintf("player %v is not at index %d of the turn order", p, index))
	}
	others := make([]*player.Player, 0, len(order)-1)
	others = append(others, order[index+1:]...)
	others = append(others, order[:index]...)
	return others
}
