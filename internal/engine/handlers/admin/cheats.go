package admin

import (
	"fmt"

	"rogue-engine/internal/domain"
	"rogue-engine/internal/engine/handlers"
	"rogue-engine/pkg/dungeon"
)

// SpawnPayload: { "name": "Troll" }
type SpawnPayload struct {
	Name string `json:"name"`
}

// HandleSpawn ставит сущность из реестра рядом с игроком (или под ноги, если справа стена)
func HandleSpawn(ctx handlers.Context, p SpawnPayload) (handlers.Result, error) {
	m := ctx.Env.Map

	pos := ctx.Player.Pos.Shift(1, 0)
	if !m.IsWalkable(pos) || m.BlockingEntityAt(pos) != nil {
		pos = ctx.Player.Pos
	}

	tmpl, ok := dungeon.Template(p.Name)
	if !ok || tmpl.Kind == domain.KindPlayer {
		return handlers.Result{Msg: fmt.Sprintf("Unknown template %q", p.Name), MsgFg: domain.ColorInvalid}, nil
	}
	// Актер под ногами игрока заблокировал бы обоих
	if tmpl.Stats != nil && pos == ctx.Player.Pos {
		return handlers.Result{Msg: "No room to spawn.", MsgFg: domain.ColorImpossible}, nil
	}

	if _, err := dungeon.SpawnAt(p.Name, m, pos); err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{Msg: fmt.Sprintf("Spawned %s.", p.Name), MsgFg: domain.ColorWhite}, nil
}

// HandleReveal открывает всю карту как уже увиденную
func HandleReveal(ctx handlers.Context) (handlers.Result, error) {
	m := ctx.Env.Map
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			m.Tiles[y][x].Seen = true
		}
	}
	return handlers.Result{Msg: "The map is revealed.", MsgFg: domain.ColorWhite}, nil
}
