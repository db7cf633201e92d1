package dungeon

import (
	"errors"
	"math/rand"

	"rogue-engine/internal/domain"
	"rogue-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Константы генерации по умолчанию
const (
	MapWidth    = 80
	MapHeight   = 43
	MaxRooms    = 30
	RoomMinSize = 6
	RoomMaxSize = 10
)

// ErrNoRooms - генератор не смог уложить ни одной комнаты
var ErrNoRooms = errors.New("dungeon: no rooms could be placed")

// Params - размеры карты и бюджет комнат
type Params struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	MaxRooms    int `yaml:"max_rooms"`
	RoomMinSize int `yaml:"room_min_size"`
	RoomMaxSize int `yaml:"room_max_size"`
}

func DefaultParams() Params {
	return Params{
		Width:       MapWidth,
		Height:      MapHeight,
		MaxRooms:    MaxRooms,
		RoomMinSize: RoomMinSize,
		RoomMaxSize: RoomMaxSize,
	}
}

// Rect - комната. Стены по периметру, пол внутри.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() domain.Position {
	return domain.Position{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects считает касание краями пересечением, чтобы между комнатами оставалась стена.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// Contains - лежит ли клетка во внутренней (вырезанной) части комнаты
func (r Rect) Contains(p domain.Position) bool {
	return p.X > r.X && p.X < r.X+r.W && p.Y > r.Y && p.Y < r.Y+r.H
}

// Corridor возвращает клетки L-образного коридора от from до to включительно.
// horizontalFirst выбирает, какая ось проходится первой.
func Corridor(from, to domain.Position, horizontalFirst bool) []domain.Position {
	cells := []domain.Position{from}
	cur := from

	stepX := func() {
		for cur.X != to.X {
			cur.X += sign(to.X - cur.X)
			cells = append(cells, cur)
		}
	}
	stepY := func() {
		for cur.Y != to.Y {
			cur.Y += sign(to.Y - cur.Y)
			cells = append(cells, cur)
		}
	}

	if horizontalFirst {
		stepX()
		stepY()
	} else {
		stepY()
		stepX()
	}
	return cells
}

// Generate строит этаж floor: комнаты, коридоры, лестницу и население.
// Игрок ставится в центр первой комнаты и регистрируется на новой карте.
func Generate(params Params, floor int, player *domain.Entity, tables *Tables, rng *rand.Rand) (*domain.GameMap, error) {
	m, err := NewLevel(floor, rng).
		WithParams(params).
		WithTables(tables).
		WithPlayer(player).
		WithRooms().
		Build()
	if err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "dungeon_generator",
		"floor":     floor,
		"entities":  len(m.Entities),
		"stairs":    m.DownstairsLocation,
	}).Info("Floor generated.")

	return m, nil
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
