package domain

import "testing"

func newTestActor(name string, pos Position) *Entity {
	return &Entity{
		Kind:           KindMonster,
		Name:           name,
		Pos:            pos,
		BlocksMovement: true,
		RenderOrder:    RenderActor,
		Fighter:        NewFighter(10, 0, 3),
		AI:             NewHostileAI(),
	}
}

func TestGameMap_AddRemoveEntity(t *testing.T) {
	m := NewGameMap(10, 10, 1)

	e := newTestActor("Orc", Position{X: 5, Y: 5})
	m.AddEntity(e)

	if e.ID == 0 {
		t.Fatal("AddEntity should assign an ID")
	}
	if e.ID.Kind() != KindMonster || e.ID.Floor() != 1 {
		t.Errorf("unexpected packed id %s", e.ID)
	}
	if e.Owner.Kind != OwnerMap {
		t.Errorf("owner = %v, want map", e.Owner.Kind)
	}
	if got := m.GetEntity(e.ID); got != e {
		t.Errorf("GetEntity returned wrong entity: got %v want %v", got, e)
	}

	if !m.RemoveEntity(e) {
		t.Fatal("RemoveEntity should report success")
	}
	if len(m.Entities) != 0 {
		t.Errorf("expected empty map, got %d entities", len(m.Entities))
	}
	if m.GetEntity(e.ID) != nil {
		t.Error("removed entity is still registered")
	}
	if m.RemoveEntity(e) {
		t.Error("second RemoveEntity should be a no-op")
	}
}

func TestGameMap_RemoveKeepsInsertionOrder(t *testing.T) {
	m := NewGameMap(10, 10, 1)
	a := newTestActor("a", Position{X: 1, Y: 1})
	b := newTestActor("b", Position{X: 2, Y: 1})
	c := newTestActor("c", Position{X: 3, Y: 1})
	m.AddEntity(a)
	m.AddEntity(b)
	m.AddEntity(c)

	m.RemoveEntity(b)

	if len(m.Entities) != 2 || m.Entities[0] != a || m.Entities[1] != c {
		t.Errorf("order broken: %v", m.Entities)
	}
}

func TestGameMap_ActorsFilteredLive(t *testing.T) {
	m := NewGameMap(10, 10, 1)
	orc := newTestActor("Orc", Position{X: 2, Y: 2})
	m.AddEntity(orc)

	if len(m.Actors()) != 1 {
		t.Fatalf("expected 1 actor, got %d", len(m.Actors()))
	}

	orc.Fighter.SetHP(0)
	orc.BecomeCorpse()

	if len(m.Actors()) != 0 {
		t.Errorf("corpse must not be listed among actors")
	}
	if m.ActorAt(Position{X: 2, Y: 2}) != nil {
		t.Error("ActorAt should ignore corpses")
	}
	if m.BlockingEntityAt(Position{X: 2, Y: 2}) != nil {
		t.Error("corpse must not block movement")
	}
}

func TestGameMap_RenderOrdered(t *testing.T) {
	m := NewGameMap(5, 5, 1)
	actor := newTestActor("Orc", Position{X: 1, Y: 1})
	item := &Entity{Kind: KindItem, Name: "Potion", RenderOrder: RenderItem}
	corpse := &Entity{Kind: KindMonster, Name: "Remains", RenderOrder: RenderCorpse}
	m.AddEntity(actor)
	m.AddEntity(item)
	m.AddEntity(corpse)

	sorted := m.RenderOrdered()
	if sorted[0] != corpse || sorted[1] != item || sorted[2] != actor {
		t.Errorf("unexpected order: %s, %s, %s", sorted[0].Name, sorted[1].Name, sorted[2].Name)
	}
	if m.Entities[0] != actor {
		t.Error("RenderOrdered must not reorder the map itself")
	}
}

func TestTile_Appearance(t *testing.T) {
	tile := NewFloorTile()
	if tile.Appearance() != Void {
		t.Error("unseen tile should render as void")
	}
	tile.Seen = true
	if tile.Appearance() != tile.Dark {
		t.Error("seen tile should render dark")
	}
	tile.Visible = true
	if tile.Appearance() != tile.Light {
		t.Error("visible tile should render light")
	}
}

func TestGameMap_Bounds(t *testing.T) {
	m := NewGameMap(4, 3, 1)
	cases := []struct {
		p    Position
		want bool
	}{
		{Position{X: 0, Y: 0}, true},
		{Position{X: 3, Y: 2}, true},
		{Position{X: 4, Y: 2}, false},
		{Position{X: -1, Y: 0}, false},
		{Position{X: 0, Y: 3}, false},
	}
	for _, c := range cases {
		if got := m.InBounds(c.p); got != c.want {
			t.Errorf("InBounds(%v) = %v, want %v", c.p, got, c.want)
		}
	}
	if m.IsWalkable(Position{X: 1, Y: 1}) {
		t.Error("new map must be solid wall")
	}
}
