package dungeon

import (
	"math/rand"

	"rogue-engine/internal/domain"
	"rogue-engine/pkg/logger"
	"rogue-engine/pkg/utils"

	"github.com/sirupsen/logrus"
)

// LevelBuilder предоставляет fluent API для создания этажа
type LevelBuilder struct {
	floor   int
	params  Params
	tables  *Tables
	player  *domain.Entity
	rooms   []Rect
	gameMap *domain.GameMap
	rng     *rand.Rand
}

// NewLevel создает новый builder для этажа
func NewLevel(floor int, rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		floor:  floor,
		params: DefaultParams(),
		tables: DefaultTables(),
		rng:    rng,
	}
}

func (b *LevelBuilder) WithParams(p Params) *LevelBuilder {
	b.params = p
	return b
}

func (b *LevelBuilder) WithTables(t *Tables) *LevelBuilder {
	if t != nil {
		b.tables = t
	}
	return b
}

// WithPlayer - игрок встанет в центр первой принятой комнаты до спавна монстров
func (b *LevelBuilder) WithPlayer(player *domain.Entity) *LevelBuilder {
	b.player = player
	return b
}

// Rooms - принятые комнаты в порядке принятия
func (b *LevelBuilder) Rooms() []Rect {
	return b.rooms
}

// WithRooms вырезает комнаты отбором с отказами и соединяет соседние по порядку коридорами.
// Население комнаты спавнится сразу после ее вырезания.
func (b *LevelBuilder) WithRooms() *LevelBuilder {
	p := b.params
	b.gameMap = domain.NewGameMap(p.Width, p.Height, b.floor)
	b.rooms = make([]Rect, 0, p.MaxRooms)

	for i := 0; i < p.MaxRooms; i++ {
		w := utils.RandRange(b.rng, p.RoomMinSize, p.RoomMaxSize)
		h := utils.RandRange(b.rng, p.RoomMinSize, p.RoomMaxSize)
		x := utils.RandRange(b.rng, 0, p.Width-w-1)
		y := utils.RandRange(b.rng, 0, p.Height-h-1)

		newRoom := Rect{X: x, Y: y, W: w, H: h}

		// Проверяем пересечения
		failed := false
		for _, other := range b.rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		b.carveRoom(newRoom)

		// Соединяем с предыдущей комнатой
		if len(b.rooms) > 0 {
			prev := b.rooms[len(b.rooms)-1].Center()
			for _, cell := range Corridor(prev, newRoom.Center(), b.rng.Intn(2) == 0) {
				b.gameMap.SetTile(cell, domain.NewFloorTile())
			}
		}

		if len(b.rooms) == 0 && b.player != nil {
			b.player.Pos = newRoom.Center()
			b.gameMap.AddEntity(b.player)
		}

		b.rooms = append(b.rooms, newRoom)
		b.populate(newRoom)
	}

	return b
}

func (b *LevelBuilder) carveRoom(room Rect) {
	for y := room.Y + 1; y < room.Y+room.H; y++ {
		for x := room.X + 1; x < room.X+room.W; x++ {
			b.gameMap.SetTile(domain.Position{X: x, Y: y}, domain.NewFloorTile())
		}
	}
}

// populate спавнит монстров, затем предметы. Занятая клетка просто пропускается.
func (b *LevelBuilder) populate(room Rect) {
	monsters := utils.RandRange(b.rng, 0, b.tables.MaxMonsters(b.floor))
	items := utils.RandRange(b.rng, 0, b.tables.MaxItems(b.floor))

	b.spawnInRoom(room, monsters, b.tables.MonsterChances)
	b.spawnInRoom(room, items, b.tables.ItemChances)
}

func (b *LevelBuilder) spawnInRoom(room Rect, count int, chances []ChanceStep) {
	names, weights := ChoicesForFloor(chances, b.floor)

	for i := 0; i < count; i++ {
		pos := domain.Position{
			X: utils.RandRange(b.rng, room.X+1, room.X+room.W-1),
			Y: utils.RandRange(b.rng, room.Y+1, room.Y+room.H-1),
		}
		if b.occupied(pos) {
			continue
		}

		name, ok := utils.WeightedChoice(b.rng, names, weights)
		if !ok {
			continue
		}
		if _, err := SpawnAt(name, b.gameMap, pos); err != nil {
			logger.Log.WithFields(logrus.Fields{
				"component": "dungeon_generator",
				"name":      name,
			}).WithError(err).Warn("Spawn skipped.")
		}
	}
}

func (b *LevelBuilder) occupied(pos domain.Position) bool {
	for _, e := range b.gameMap.Entities {
		if e.Pos == pos {
			return true
		}
	}
	return false
}

// Build ставит лестницу в центр последней комнаты.
func (b *LevelBuilder) Build() (*domain.GameMap, error) {
	if b.gameMap == nil {
		b.WithRooms()
	}
	if len(b.rooms) == 0 {
		return nil, ErrNoRooms
	}

	stairs := b.rooms[len(b.rooms)-1].Center()
	b.gameMap.SetTile(stairs, domain.NewStairsTile())
	b.gameMap.DownstairsLocation = stairs
	return b.gameMap, nil
}
