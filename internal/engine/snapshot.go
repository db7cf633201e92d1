package engine

import (
	"fmt"
	"math/rand"
	"strings"

	"rogue-engine/internal/domain"
	"rogue-engine/pkg/dungeon"
	"rogue-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

const corpsePrefix = "Remains of "

// Snapshot снимает текущий этаж для сохранения.
// Предметы инвентаря пишутся только именами: при загрузке их пересоздают фабрики.
func (g *Game) Snapshot() *domain.Snapshot {
	snap := &domain.Snapshot{
		CurrentFloor: g.Floor,
		Width:        g.Map.Width,
		Height:       g.Map.Height,
		Tiles:        make([][]domain.Tile, len(g.Map.Tiles)),
		Downstairs:   g.Map.DownstairsLocation,
		Entities:     make([]domain.EntitySnapshot, 0, len(g.Map.Entities)),
		Messages:     append([]domain.Message(nil), g.Log.Messages...),
	}
	for y, row := range g.Map.Tiles {
		snap.Tiles[y] = append([]domain.Tile(nil), row...)
	}

	for _, e := range g.Map.Entities {
		snap.Entities = append(snap.Entities, snapshotEntity(e))
	}
	return snap
}

func snapshotEntity(e *domain.Entity) domain.EntitySnapshot {
	es := domain.EntitySnapshot{
		X: e.Pos.X, Y: e.Pos.Y,
		Char: e.Char, Fg: e.Fg, Bg: e.Bg,
		Name: e.Name,
	}

	if f := e.Fighter; f != nil {
		es.Fighter = &domain.FighterSnapshot{
			MaxHP:   f.MaxHP,
			HP:      f.HP(),
			Defense: f.BaseDefense,
			Power:   f.BasePower,
		}
	}
	if e.Level != nil {
		lvl := *e.Level
		es.Level = &lvl
	}

	switch ai := e.AI.(type) {
	case *domain.HostileAI:
		es.AIType = domain.AIKindHostile
	case *domain.ConfusedAI:
		es.AIType = domain.AIKindConfused
		es.ConfusedTurnsRemaining = ai.TurnsRemaining
	}

	if e.IsPlayer() && e.Inventory != nil {
		for _, item := range e.Inventory.Items {
			es.Inventory = append(es.Inventory, domain.ItemSnapshot{ItemType: item.Name})
			if e.Equipment.IsEquipped(item) {
				es.Equipped = append(es.Equipped, item.Name)
			}
		}
	}
	return es
}

// Restore собирает партию из снимка: сущности пересоздаются фабриками по имени,
// поверх накладываются сохраненные характеристики.
func Restore(snap *domain.Snapshot, opts Options, rng *rand.Rand) (*Game, error) {
	if snap.Width <= 0 || snap.Height <= 0 || len(snap.Tiles) != snap.Height {
		return nil, fmt.Errorf("restore: bad map size %dx%d", snap.Width, snap.Height)
	}

	g := newGame(opts, rng)
	g.Floor = snap.CurrentFloor

	// 1. Тайлы
	m := domain.NewGameMap(snap.Width, snap.Height, snap.CurrentFloor)
	for y, row := range snap.Tiles {
		if len(row) != snap.Width {
			return nil, fmt.Errorf("restore: row %d has %d tiles, want %d", y, len(row), snap.Width)
		}
		copy(m.Tiles[y], row)
	}
	m.DownstairsLocation = snap.Downstairs
	g.Map = m

	// 2. Сущности
	for i, es := range snap.Entities {
		if !m.InBounds(domain.Position{X: es.X, Y: es.Y}) {
			return nil, fmt.Errorf("restore entity %d (%s): position (%d,%d) is off the map", i, es.Name, es.X, es.Y)
		}
		e, err := restoreEntity(es)
		if err != nil {
			return nil, fmt.Errorf("restore entity %d: %w", i, err)
		}
		if e.IsPlayer() {
			if g.Player != nil {
				return nil, fmt.Errorf("restore: more than one player")
			}
			if g.opts.InventoryCapacity > 0 {
				e.Inventory.Capacity = max(g.opts.InventoryCapacity, len(e.Inventory.Items))
			}
			g.Player = e
		}
		m.AddEntity(e)
	}
	if g.Player == nil {
		return nil, fmt.Errorf("restore: no player in snapshot")
	}

	// 3. Лента сообщений и режим
	for _, msg := range snap.Messages {
		for n := 0; n < max(msg.Count, 1); n++ {
			g.Log.Add(msg.Text, msg.Fg)
		}
	}
	g.refreshMode()

	logger.Log.WithFields(logrus.Fields{
		"component": "restore",
		"floor":     g.Floor,
		"entities":  len(m.Entities),
	}).Info("Game restored.")
	return g, nil
}

func restoreEntity(es domain.EntitySnapshot) (*domain.Entity, error) {
	name, corpse := strings.CutPrefix(es.Name, corpsePrefix)
	pos := domain.Position{X: es.X, Y: es.Y}

	e, err := dungeon.Spawn(name, pos)
	if err != nil {
		return nil, err
	}

	if es.Fighter != nil && e.Fighter != nil {
		e.Fighter.MaxHP = es.Fighter.MaxHP
		e.Fighter.BaseDefense = es.Fighter.Defense
		e.Fighter.BasePower = es.Fighter.Power
		e.Fighter.SetHP(es.Fighter.HP)
	}
	if es.Level != nil && e.Level != nil {
		*e.Level = *es.Level
	}

	switch es.AIType {
	case domain.AIKindConfused:
		e.AI = domain.NewConfusedAI(domain.NewHostileAI(), es.ConfusedTurnsRemaining)
	case domain.AIKindHostile:
		e.AI = domain.NewHostileAI()
	}

	if e.IsPlayer() {
		e.ID = dungeon.PlayerID
		if err := restoreInventory(e, es); err != nil {
			return nil, err
		}
	}

	if corpse {
		e.BecomeCorpse()
	}
	return e, nil
}

// restoreInventory - предметы с одинаковым именем взаимозаменяемы,
// поэтому надевается первый еще не надетый предмет с нужным именем.
func restoreInventory(player *domain.Entity, es domain.EntitySnapshot) error {
	player.Inventory.Capacity = max(player.Inventory.Capacity, len(es.Inventory))
	for _, it := range es.Inventory {
		item, err := dungeon.Spawn(it.ItemType, domain.Position{})
		if err != nil {
			return err
		}
		if err := player.Inventory.Add(player, item); err != nil {
			return err
		}
	}

	for _, name := range es.Equipped {
		for _, item := range player.Inventory.Items {
			if item.Name == name && item.Equippable != nil && !player.Equipment.IsEquipped(item) {
				player.Equipment.Toggle(item, nil)
				break
			}
		}
	}
	return nil
}
