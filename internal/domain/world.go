package domain

// Graphic - глиф и цвета одной клетки.
type Graphic struct {
	Char string `json:"char"`
	Fg   string `json:"fg"`
	Bg   string `json:"bg"`
}

// Void - так рисуется клетка, которую игрок ни разу не видел.
var Void = Graphic{Char: " ", Fg: "#ffffff", Bg: "#000000"}

// Tile - клетка местности.
// Visible меняется только при пересчете FOV, Walkable/Transparent - только генератором.
type Tile struct {
	Walkable    bool    `json:"walkable"`
	Transparent bool    `json:"transparent"`
	Visible     bool    `json:"visible"`
	Seen        bool    `json:"seen"`
	Dark        Graphic `json:"dark"`
	Light       Graphic `json:"light"`
}

func NewFloorTile() Tile {
	return Tile{
		Walkable:    true,
		Transparent: true,
		Dark:        Graphic{Char: " ", Fg: "#ffffff", Bg: "#323296"},
		Light:       Graphic{Char: " ", Fg: "#ffffff", Bg: "#c8b432"},
	}
}

func NewWallTile() Tile {
	return Tile{
		Dark:  Graphic{Char: " ", Fg: "#ffffff", Bg: "#000064"},
		Light: Graphic{Char: " ", Fg: "#ffffff", Bg: "#826e32"},
	}
}

func NewStairsTile() Tile {
	return Tile{
		Walkable:    true,
		Transparent: true,
		Dark:        Graphic{Char: ">", Fg: "#000064", Bg: "#323296"},
		Light:       Graphic{Char: ">", Fg: "#ffffff", Bg: "#c8b432"},
	}
}

// Appearance выбирает палитру по состоянию видимости.
func (t Tile) Appearance() Graphic {
	switch {
	case t.Visible:
		return t.Light
	case t.Seen:
		return t.Dark
	default:
		return Void
	}
}

// GameMap - сетка тайлов и все сущности, размещенные на этаже.
type GameMap struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Floor  int      `json:"floor"`
	Tiles  [][]Tile `json:"tiles"` // [y][x]

	// Entities хранит порядок вставки: в нем же ходят монстры.
	Entities []*Entity `json:"-"`

	DownstairsLocation Position `json:"downstairs"`

	// registry: ID -> сущность, включая предметы в инвентарях.
	// Нужен, чтобы разрешать Owner-ссылки.
	registry  map[EntityID]*Entity
	nextIndex uint64
}
