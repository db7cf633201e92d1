package engine

import (
	"rogue-engine/internal/domain"
	"rogue-engine/pkg/api"
)

// Сколько последних сообщений уходит клиенту
const viewLogSize = 20

// BuildState создает снимок того, что видит игрок, для отправки клиенту.
func (g *Game) BuildState() *api.ServerResponse {
	m := g.Map

	// 1. Карта: только видимые и исследованные клетки
	var mapDTO []api.TileView
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile := m.Tiles[y][x]
			if !tile.Visible && !tile.Seen {
				continue
			}
			gfx := tile.Appearance()
			mapDTO = append(mapDTO, api.TileView{
				X: x, Y: y,
				Symbol:     gfx.Char,
				Fg:         gfx.Fg,
				Bg:         gfx.Bg,
				Walkable:   tile.Walkable,
				IsVisible:  tile.Visible,
				IsExplored: true,
			})
		}
	}

	// 2. Сущности в поле зрения, по слою отрисовки. Себя видим всегда.
	var viewEntities []api.EntityView
	for _, e := range m.RenderOrdered() {
		if e == g.Player || m.IsVisible(e.Pos) {
			viewEntities = append(viewEntities, toEntityView(e))
		}
	}

	// 3. Лог
	tail := g.Log.Tail(viewLogSize)
	logs := make([]api.LogEntry, 0, len(tail))
	for _, msg := range tail {
		logs = append(logs, api.LogEntry{Text: msg.Text, Fg: msg.Fg, Count: msg.Count})
	}

	resp := &api.ServerResponse{
		Type:       "UPDATE",
		Floor:      g.Floor,
		Turn:       g.Turn,
		Mode:       string(g.Mode),
		MyEntityID: g.Player.ID.String(),
		Grid:       &api.GridMeta{Width: m.Width, Height: m.Height},
		Map:        mapDTO,
		Entities:   viewEntities,
		Logs:       logs,
		Player:     g.playerView(),
	}

	if g.Mode == domain.ModeTargeting && g.pending != nil {
		resp.Targeting = &api.TargetingView{
			ItemIndex: g.pending.Index,
			Radius:    g.pending.Radius,
			Area:      g.pending.Kind == domain.TargetArea,
		}
	}
	return resp
}

func (g *Game) playerView() *api.PlayerView {
	p := g.Player
	view := &api.PlayerView{
		Stats:          *statsView(p),
		Inventory:      make([]api.ItemView, 0, len(p.Inventory.Items)),
		InventoryLimit: p.Inventory.Capacity,
	}
	if p.Level != nil {
		view.Level = p.Level.CurrentLevel
		view.XP = p.Level.CurrentXP
		view.XPToNextLevel = p.Level.ExperienceToNextLevel()
	}

	for i, item := range p.Inventory.Items {
		view.Inventory = append(view.Inventory, api.ItemView{
			Index:    i,
			Name:     item.Name,
			Symbol:   item.Char,
			Fg:       item.Fg,
			Category: itemCategory(item),
			Equipped: p.Equipment.IsEquipped(item),
		})
	}
	return view
}

// toEntityView конвертирует доменную сущность в DTO для отправки клиенту.
func toEntityView(e *domain.Entity) api.EntityView {
	view := api.EntityView{
		ID:   e.ID.String(),
		Type: e.Kind.String(),
		Name: e.Name,
	}
	view.Pos.X = e.Pos.X
	view.Pos.Y = e.Pos.Y
	view.Render.Symbol = e.Char
	view.Render.Fg = e.Fg
	view.Render.Bg = e.Bg
	view.Render.Order = int(e.RenderOrder)

	if e.Fighter != nil {
		view.Stats = statsView(e)
	}
	return view
}

func statsView(e *domain.Entity) *api.StatsView {
	return &api.StatsView{
		HP:      e.Fighter.HP(),
		MaxHP:   e.Fighter.MaxHP,
		Power:   e.Power(),
		Defense: e.Defense(),
		IsDead:  !e.IsAlive(),
	}
}

func itemCategory(item *domain.Entity) string {
	switch {
	case item.Consumable != nil:
		return "consumable"
	case item.Equippable != nil:
		return item.Equippable.Type.String()
	default:
		return "misc"
	}
}
