package actions

import (
	"math/rand"
	"os"
	"testing"

	"rogue-engine/internal/domain"
	"rogue-engine/internal/systems"
	"rogue-engine/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type fixture struct {
	env    systems.Env
	player *domain.Entity
}

// newFixture: комната 12x12 со стенами по краю, игрок в (5,5)
func newFixture(t *testing.T) fixture {
	t.Helper()
	m := domain.NewGameMap(12, 12, 1)
	for y := 1; y < 11; y++ {
		for x := 1; x < 11; x++ {
			m.SetTile(domain.Position{X: x, Y: y}, domain.NewFloorTile())
		}
	}
	player := &domain.Entity{
		Kind:           domain.KindPlayer,
		Name:           "Player",
		Pos:            domain.Position{X: 5, Y: 5},
		BlocksMovement: true,
		RenderOrder:    domain.RenderActor,
		Fighter:        domain.NewFighter(30, 2, 5),
		Inventory:      domain.NewInventory(26),
		Equipment:      &domain.Equipment{},
		Level:          &domain.Level{CurrentLevel: 1, LevelUpBase: 200, LevelUpFactor: 150},
	}
	m.AddEntity(player)
	systems.UpdateFOV(m, player.Pos, domain.VisionRadius)
	return fixture{
		env:    systems.Env{Map: m, Player: player, Log: domain.NewMessageLog(), Rng: rand.New(rand.NewSource(7))},
		player: player,
	}
}

func (f fixture) orcAt(x, y int) *domain.Entity {
	orc := &domain.Entity{
		Kind:           domain.KindMonster,
		Name:           "Orc",
		Pos:            domain.Position{X: x, Y: y},
		BlocksMovement: true,
		RenderOrder:    domain.RenderActor,
		Fighter:        domain.NewFighter(10, 0, 3),
		Equipment:      &domain.Equipment{},
		Level:          &domain.Level{XPGiven: 35},
		AI:             domain.NewHostileAI(),
	}
	f.env.Map.AddEntity(orc)
	return orc
}

func TestMovement(t *testing.T) {
	tests := []struct {
		name    string
		dx, dy  int
		want    domain.Position
		blocked bool
	}{
		{name: "open floor", dx: 1, dy: 1, want: domain.Position{X: 6, Y: 6}},
		{name: "wall", dx: -5, dy: 0, want: domain.Position{X: 5, Y: 5}, blocked: true},
		{name: "out of bounds", dx: 0, dy: -20, want: domain.Position{X: 5, Y: 5}, blocked: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := Perform(f.env, f.player, Movement{Dx: tt.dx, Dy: tt.dy})
			if tt.blocked {
				require.Error(t, err)
				assert.True(t, domain.IsImpossible(err))
				assert.Equal(t, "That way is blocked.", err.Error())
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, f.player.Pos)
		})
	}
}

func TestMovement_BlockedByEntity(t *testing.T) {
	f := newFixture(t)
	f.orcAt(6, 5)

	_, err := Perform(f.env, f.player, Movement{Dx: 1})
	require.Error(t, err)
	assert.Equal(t, domain.Position{X: 5, Y: 5}, f.player.Pos)
}

func TestBump_ExclusiveDispatch(t *testing.T) {
	f := newFixture(t)
	orc := f.orcAt(6, 5)

	assert.IsType(t, Melee{}, Bump{Dx: 1}.Resolve(f.env.Map, f.player))
	assert.IsType(t, Movement{}, Bump{Dx: -1}.Resolve(f.env.Map, f.player))

	_, err := Perform(f.env, f.player, Bump{Dx: 1})
	require.NoError(t, err)
	assert.Equal(t, domain.Position{X: 5, Y: 5}, f.player.Pos, "attack never moves")
	assert.Equal(t, 5, orc.Fighter.HP())
	assert.Equal(t, "Player attacks Orc for 5 hit points.", f.env.Log.Messages[0].Text)

	_, err = Perform(f.env, f.player, Bump{Dx: -1})
	require.NoError(t, err)
	assert.Equal(t, domain.Position{X: 4, Y: 5}, f.player.Pos)
	assert.Len(t, f.env.Log.Messages, 1, "plain movement logs nothing")
}

func TestBump_CorpseDoesNotBlock(t *testing.T) {
	f := newFixture(t)
	orc := f.orcAt(6, 5)
	orc.Fighter.TakeDamage(100)
	orc.BecomeCorpse()

	assert.IsType(t, Movement{}, Bump{Dx: 1}.Resolve(f.env.Map, f.player))
	_, err := Perform(f.env, f.player, Bump{Dx: 1})
	require.NoError(t, err)
	assert.Equal(t, orc.Pos, f.player.Pos)
}

func TestMelee_NothingToAttack(t *testing.T) {
	f := newFixture(t)
	_, err := Perform(f.env, f.player, Melee{Dx: 0, Dy: 1})
	require.Error(t, err)
	assert.Equal(t, "Nothing to attack.", err.Error())
}

func TestTakeStairs(t *testing.T) {
	f := newFixture(t)
	f.env.Map.DownstairsLocation = domain.Position{X: 8, Y: 8}

	_, err := Perform(f.env, f.player, TakeStairs{})
	require.Error(t, err)
	assert.Equal(t, "There are no stairs here.", err.Error())

	f.player.Pos = domain.Position{X: 8, Y: 8}
	res, err := Perform(f.env, f.player, TakeStairs{})
	require.NoError(t, err)
	assert.Equal(t, domain.EventDescend, res.Event)
}

func TestItemAction_RequiresConsumable(t *testing.T) {
	f := newFixture(t)
	sword := &domain.Entity{Kind: domain.KindItem, Name: "Sword", Equippable: &domain.Equippable{Type: domain.EquipmentWeapon, PowerBonus: 4}}
	require.NoError(t, f.player.Inventory.Add(f.player, sword))

	_, err := Perform(f.env, f.player, ItemAction{Item: sword})
	require.Error(t, err)
	assert.True(t, domain.IsImpossible(err))

	res, err := Perform(f.env, f.player, Equip{Item: sword})
	require.NoError(t, err)
	assert.Equal(t, domain.EventNone, res.Event)
	assert.Equal(t, 9, f.player.Power())
}

func TestWait(t *testing.T) {
	f := newFixture(t)
	_, err := Perform(f.env, f.player, Wait{})
	assert.NoError(t, err)
	assert.Empty(t, f.env.Log.Messages)
}
