package engine

import (
	"encoding/json"
	"math/rand"
	"os"
	"testing"

	"rogue-engine/internal/domain"
	"rogue-engine/pkg/dungeon"
	"rogue-engine/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Helper: комната 8x8 (клетки 1..8) внутри стен 10x10, игрок в (4,4).
// Карта собирается вручную, чтобы тесты не зависели от генератора.
func newTestGame(t *testing.T, opts Options) *Game {
	t.Helper()
	g := newGame(opts, rand.New(rand.NewSource(7)))
	g.Floor = 1

	m := domain.NewGameMap(10, 10, 1)
	for y := 1; y < 9; y++ {
		for x := 1; x < 9; x++ {
			m.SetTile(domain.Position{X: x, Y: y}, domain.NewFloorTile())
		}
	}
	m.DownstairsLocation = domain.Position{X: 8, Y: 8}
	m.SetTile(m.DownstairsLocation, domain.NewStairsTile())
	g.Map = m

	g.Player = dungeon.CreatePlayer()
	g.Player.Pos = domain.Position{X: 4, Y: 4}
	m.AddEntity(g.Player)
	g.updateFOV()
	return g
}

func spawn(t *testing.T, g *Game, name string, x, y int) *domain.Entity {
	t.Helper()
	e, err := dungeon.SpawnAt(name, g.Map, domain.Position{X: x, Y: y})
	require.NoError(t, err)
	return e
}

func give(t *testing.T, g *Game, name string) int {
	t.Helper()
	item, err := dungeon.Spawn(name, domain.Position{})
	require.NoError(t, err)
	require.NoError(t, g.Player.Inventory.Add(g.Player, item))
	return g.Player.Inventory.IndexOf(item)
}

func cmd(t *testing.T, action domain.ActionType, payload any) domain.InternalCommand {
	t.Helper()
	c := domain.InternalCommand{Action: action, Token: "test"}
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		c.Payload = data
	}
	return c
}

func lastMessage(g *Game) string {
	if len(g.Log.Messages) == 0 {
		return ""
	}
	return g.Log.Messages[len(g.Log.Messages)-1].Text
}

func TestNewGame(t *testing.T) {
	g, err := NewGame(Options{}, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.Equal(t, 1, g.Floor)
	assert.Equal(t, domain.ModeNormal, g.Mode)
	assert.Equal(t, 0, g.Turn)
	assert.Contains(t, g.Map.Entities, g.Player)
	assert.True(t, g.Map.IsVisible(g.Player.Pos), "player cell must be in FOV")
	assert.Equal(t, welcomeMessage, lastMessage(g))
	assert.Len(t, g.Player.Inventory.Items, 2)
}

func TestNewGame_InventoryCapacity(t *testing.T) {
	g, err := NewGame(Options{InventoryCapacity: 5}, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, 5, g.Player.Inventory.Capacity)
}

func TestHandle_MoveAndWait(t *testing.T) {
	g := newTestGame(t, Options{})

	require.NoError(t, g.Handle(cmd(t, domain.ActionMove, map[string]int{"dx": 1, "dy": 0})))
	assert.Equal(t, domain.Position{X: 5, Y: 4}, g.Player.Pos)
	assert.Equal(t, 1, g.Turn)

	require.NoError(t, g.Handle(cmd(t, domain.ActionWait, nil)))
	assert.Equal(t, 2, g.Turn)
}

func TestHandle_WaitLetsAdjacentOrcAttack(t *testing.T) {
	g := newTestGame(t, Options{})
	spawn(t, g, "Orc", 5, 4)

	require.NoError(t, g.Handle(cmd(t, domain.ActionWait, nil)))

	// сила орка 3, защита игрока 1+1 от кожаной брони
	assert.Equal(t, 29, g.Player.Fighter.HP())
	assert.Equal(t, "Orc attacks Player for 1 hit points.", lastMessage(g))
}

func TestHandle_ImpossibleDoesNotSpendTurn(t *testing.T) {
	g := newTestGame(t, Options{})
	g.Player.Pos = domain.Position{X: 1, Y: 1}
	spawn(t, g, "Orc", 2, 1)
	g.updateFOV()

	require.NoError(t, g.Handle(cmd(t, domain.ActionMove, map[string]int{"dx": -1, "dy": 0})))

	assert.Equal(t, 0, g.Turn)
	assert.Equal(t, 30, g.Player.Fighter.HP(), "monsters must not act after a refused action")
	assert.Equal(t, "That way is blocked.", lastMessage(g))
	assert.Equal(t, domain.ColorImpossible, g.Log.Messages[len(g.Log.Messages)-1].Fg)
}

func TestHandle_BumpAttacksAndKills(t *testing.T) {
	g := newTestGame(t, Options{})
	orc := spawn(t, g, "Orc", 5, 4)

	// сила игрока 2+2 от кинжала, у орка 10 hp
	for i := 0; i < 3; i++ {
		require.NoError(t, g.Handle(cmd(t, domain.ActionMove, map[string]int{"dx": 1, "dy": 0})))
	}

	assert.False(t, orc.IsAlive())
	assert.Equal(t, "Remains of Orc", orc.Name)
	assert.Equal(t, domain.Position{X: 4, Y: 4}, g.Player.Pos, "attacking does not move the player")
	assert.Equal(t, 35, g.Player.Level.CurrentXP)
	assert.Empty(t, g.LivingMonsters())
}

func TestHandle_TargetingFlow(t *testing.T) {
	g := newTestGame(t, Options{})
	orc := spawn(t, g, "Orc", 6, 4)
	idx := give(t, g, "Confusion Scroll")

	// 1. USE переводит в прицеливание, ход не тратится
	require.NoError(t, g.Handle(cmd(t, domain.ActionUse, map[string]int{"index": idx})))
	assert.Equal(t, domain.ModeTargeting, g.Mode)
	assert.Equal(t, 0, g.Turn)
	assert.Equal(t, "Select a target location.", lastMessage(g))

	// 2. В прицеливании ходить нельзя
	err := g.Handle(cmd(t, domain.ActionMove, map[string]int{"dx": 1, "dy": 0}))
	assert.ErrorIs(t, err, ErrActionNotAllowed)

	// 3. TARGET применяет свиток
	require.NoError(t, g.Handle(cmd(t, domain.ActionTarget, map[string]int{"x": 6, "y": 4})))
	assert.Equal(t, domain.ModeNormal, g.Mode)
	assert.Equal(t, 1, g.Turn)
	assert.IsType(t, &domain.ConfusedAI{}, orc.AI)
	assert.Len(t, g.Player.Inventory.Items, 2, "scroll is consumed")
}

func TestHandle_TargetRefusedReturnsToNormal(t *testing.T) {
	g := newTestGame(t, Options{})
	idx := give(t, g, "Confusion Scroll")

	require.NoError(t, g.Handle(cmd(t, domain.ActionUse, map[string]int{"index": idx})))
	require.NoError(t, g.Handle(cmd(t, domain.ActionTarget, map[string]int{"x": 6, "y": 6})))

	assert.Equal(t, domain.ModeNormal, g.Mode)
	assert.Equal(t, 0, g.Turn)
	assert.Equal(t, "You must select an enemy to target.", lastMessage(g))
	assert.Len(t, g.Player.Inventory.Items, 3)
}

func TestHandle_Cancel(t *testing.T) {
	g := newTestGame(t, Options{})
	idx := give(t, g, "Fireball Scroll")

	require.NoError(t, g.Handle(cmd(t, domain.ActionUse, map[string]int{"index": idx})))
	require.Equal(t, domain.ModeTargeting, g.Mode)

	state := g.BuildState()
	require.NotNil(t, state.Targeting)
	assert.True(t, state.Targeting.Area)
	assert.Equal(t, 3, state.Targeting.Radius)

	require.NoError(t, g.Handle(cmd(t, domain.ActionCancel, nil)))
	assert.Equal(t, domain.ModeNormal, g.Mode)
	assert.Nil(t, g.pending)
	assert.Equal(t, 0, g.Turn)
	assert.Len(t, g.Player.Inventory.Items, 3)
}

func TestHandle_ModeGating(t *testing.T) {
	g := newTestGame(t, Options{})

	err := g.Handle(cmd(t, domain.ActionTarget, map[string]int{"x": 1, "y": 1}))
	assert.ErrorIs(t, err, ErrActionNotAllowed)

	err = g.Handle(cmd(t, domain.ActionLevelUp, map[string]string{"attribute": "agility"}))
	assert.ErrorIs(t, err, ErrActionNotAllowed)

	// админские команды без флага не зарегистрированы
	err = g.Handle(cmd(t, domain.ActionReveal, nil))
	assert.ErrorIs(t, err, ErrUnknownAction)

	// ошибка разбора не трогает мир
	err = g.Handle(cmd(t, domain.ActionMove, nil))
	assert.Error(t, err)
	assert.Equal(t, 0, g.Turn)
}

func TestHandle_InvalidIndex(t *testing.T) {
	g := newTestGame(t, Options{})

	require.NoError(t, g.Handle(cmd(t, domain.ActionUse, map[string]int{"index": 9})))
	assert.Equal(t, "Invalid entry.", lastMessage(g))
	assert.Equal(t, 0, g.Turn)
}

func TestHandle_LevelUp(t *testing.T) {
	g := newTestGame(t, Options{})
	orc := spawn(t, g, "Orc", 5, 4)
	orc.Fighter.SetHP(1)
	g.Player.Level.CurrentXP = 340

	require.NoError(t, g.Handle(cmd(t, domain.ActionMove, map[string]int{"dx": 1, "dy": 0})))
	require.Equal(t, domain.ModeLevelUp, g.Mode)

	err := g.Handle(cmd(t, domain.ActionWait, nil))
	assert.ErrorIs(t, err, ErrActionNotAllowed)

	require.NoError(t, g.Handle(cmd(t, domain.ActionLevelUp, map[string]string{"attribute": "agility"})))
	assert.Equal(t, domain.ModeNormal, g.Mode)
	assert.Equal(t, 2, g.Player.Level.CurrentLevel)
	assert.Equal(t, 2, g.Player.Fighter.BaseDefense)
	assert.Equal(t, 1, g.Turn, "level up does not take a turn")
}

func TestHandle_Death(t *testing.T) {
	g := newTestGame(t, Options{})
	spawn(t, g, "Orc", 5, 4)
	g.Player.Fighter.SetHP(1)

	require.NoError(t, g.Handle(cmd(t, domain.ActionWait, nil)))

	assert.True(t, g.IsOver())
	assert.Equal(t, domain.ModeDead, g.Mode)
	assert.Equal(t, "You died!", lastMessage(g))

	err := g.Handle(cmd(t, domain.ActionWait, nil))
	assert.ErrorIs(t, err, ErrActionNotAllowed)
}

func TestHandle_Descend(t *testing.T) {
	g := newTestGame(t, Options{})
	player := g.Player

	require.NoError(t, g.Handle(cmd(t, domain.ActionDescend, nil)))
	assert.Equal(t, "There are no stairs here.", lastMessage(g))
	assert.Equal(t, 1, g.Floor)

	g.Player.Pos = g.Map.DownstairsLocation
	require.NoError(t, g.Handle(cmd(t, domain.ActionDescend, nil)))

	assert.Equal(t, 2, g.Floor)
	assert.Equal(t, 2, g.Map.Floor)
	assert.Equal(t, "You descend the staircase.", lastMessage(g))
	assert.Same(t, player, g.Player)
	assert.Contains(t, g.Map.Entities, g.Player)
	assert.True(t, g.Map.IsVisible(g.Player.Pos))
	assert.Equal(t, 30, g.Player.Fighter.HP(), "new floor monsters do not act on arrival")
}

func TestHandle_DescendGenerationFails(t *testing.T) {
	// ни одной комнаты: следующий этаж не построить
	g := newTestGame(t, Options{Params: dungeon.Params{Width: 20, Height: 20, MaxRooms: 0, RoomMinSize: 3, RoomMaxSize: 5}})
	oldMap := g.Map
	g.Player.Pos = g.Map.DownstairsLocation

	err := g.Handle(cmd(t, domain.ActionDescend, nil))
	require.ErrorIs(t, err, dungeon.ErrNoRooms)

	assert.Equal(t, 1, g.Floor)
	assert.Same(t, oldMap, g.Map)
	assert.Equal(t, 0, g.Turn)
	for _, msg := range g.Log.Messages {
		assert.NotEqual(t, "You descend the staircase.", msg.Text)
	}
}

func TestHandle_Cheats(t *testing.T) {
	g := newTestGame(t, Options{Cheats: true})

	require.NoError(t, g.Handle(cmd(t, domain.ActionSpawn, map[string]string{"name": "Troll"})))
	require.Len(t, g.LivingMonsters(), 1)
	assert.Equal(t, 0, g.Turn)

	require.NoError(t, g.Handle(cmd(t, domain.ActionReveal, nil)))
	assert.True(t, g.Map.TileAt(domain.Position{X: 0, Y: 0}).Seen)
}
