package domain

import "sort"

// NewGameMap создает карту, целиком заполненную стенами.
func NewGameMap(width, height, floor int) *GameMap {
	tiles := make([][]Tile, height)
	for y := 0; y < height; y++ {
		row := make([]Tile, width)
		for x := 0; x < width; x++ {
			row[x] = NewWallTile()
		}
		tiles[y] = row
	}
	return &GameMap{
		Width:    width,
		Height:   height,
		Floor:    floor,
		Tiles:    tiles,
		registry: make(map[EntityID]*Entity),
	}
}

func (m *GameMap) GetIndex(x, y int) int {
	return y*m.Width + x
}

func (m *GameMap) InBounds(p Position) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// TileAt возвращает nil за пределами карты
func (m *GameMap) TileAt(p Position) *Tile {
	if !m.InBounds(p) {
		return nil
	}
	return &m.Tiles[p.Y][p.X]
}

func (m *GameMap) IsWalkable(p Position) bool {
	t := m.TileAt(p)
	return t != nil && t.Walkable
}

func (m *GameMap) IsTransparent(p Position) bool {
	t := m.TileAt(p)
	return t != nil && t.Transparent
}

func (m *GameMap) IsVisible(p Position) bool {
	t := m.TileAt(p)
	return t != nil && t.Visible
}

// SetTile используется только генератором.
func (m *GameMap) SetTile(p Position, t Tile) {
	if m.InBounds(p) {
		m.Tiles[p.Y][p.X] = t
	}
}

// AddEntity размещает сущность на карте и выдает ей ID, если его еще нет.
func (m *GameMap) AddEntity(e *Entity) {
	if m.registry == nil {
		m.registry = make(map[EntityID]*Entity)
	}
	if e.ID == 0 {
		m.nextIndex++
		e.ID = PackEntityID(e.Kind, int16(m.Floor), m.nextIndex)
	}
	e.Owner = Owner{Kind: OwnerMap}
	m.Entities = append(m.Entities, e)
	m.registry[e.ID] = e
}

// RemoveEntity удаляет сущность, сохраняя порядок остальных.
func (m *GameMap) RemoveEntity(e *Entity) bool {
	for i, other := range m.Entities {
		if other == e {
			m.Entities = append(m.Entities[:i], m.Entities[i+1:]...)
			delete(m.registry, e.ID)
			e.Owner = Owner{}
			return true
		}
	}
	return false
}

// GetEntity ищет сущность на карте по ID
func (m *GameMap) GetEntity(id EntityID) *Entity {
	return m.registry[id]
}

// Actors фильтруется заново при каждом вызове: живых не кешируем между ходами.
func (m *GameMap) Actors() []*Entity {
	var actors []*Entity
	for _, e := range m.Entities {
		if e.IsAlive() {
			actors = append(actors, e)
		}
	}
	return actors
}

func (m *GameMap) Items() []*Entity {
	var items []*Entity
	for _, e := range m.Entities {
		if e.Kind == KindItem {
			items = append(items, e)
		}
	}
	return items
}

func (m *GameMap) BlockingEntityAt(p Position) *Entity {
	for _, e := range m.Entities {
		if e.BlocksMovement && e.Pos == p {
			return e
		}
	}
	return nil
}

func (m *GameMap) ActorAt(p Position) *Entity {
	for _, e := range m.Entities {
		if e.Pos == p && e.IsAlive() {
			return e
		}
	}
	return nil
}

// RenderOrdered - копия списка сущностей, отсортированная по слою отрисовки.
func (m *GameMap) RenderOrdered() []*Entity {
	sorted := make([]*Entity, len(m.Entities))
	copy(sorted, m.Entities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RenderOrder < sorted[j].RenderOrder
	})
	return sorted
}
