package dungeon

import (
	"math/rand"
	"os"
	"testing"

	"rogue-engine/internal/domain"
	"rogue-engine/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Тест вспомогательной функции пересечения комнат
func TestRect_Intersects(t *testing.T) {
	r1 := Rect{0, 0, 10, 10}
	r2 := Rect{5, 5, 10, 10} // Пересекается
	r3 := Rect{20, 20, 5, 5} // Не пересекается
	r4 := Rect{10, 0, 5, 5}  // Касается краем

	assert.True(t, r1.Intersects(r2))
	assert.False(t, r1.Intersects(r3))
	assert.True(t, r1.Intersects(r4), "shared wall counts as intersection")
	assert.Equal(t, domain.Position{X: 5, Y: 5}, r1.Center())
}

func TestCorridor(t *testing.T) {
	from := domain.Position{X: 1, Y: 1}
	to := domain.Position{X: 4, Y: 3}

	horizontal := Corridor(from, to, true)
	assert.Equal(t, []domain.Position{
		{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1}, {X: 4, Y: 2}, {X: 4, Y: 3},
	}, horizontal)

	vertical := Corridor(from, to, false)
	assert.Equal(t, []domain.Position{
		{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3}, {X: 4, Y: 3},
	}, vertical)

	assert.Equal(t, []domain.Position{from}, Corridor(from, from, true))
}

func buildFloor(t *testing.T, seed int64, floor int) (*domain.GameMap, []Rect, *domain.Entity) {
	t.Helper()
	player := CreatePlayer()
	b := NewLevel(floor, rand.New(rand.NewSource(seed))).WithPlayer(player).WithRooms()
	m, err := b.Build()
	require.NoError(t, err)
	return m, b.Rooms(), player
}

func TestGenerate_Invariants(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42, 1337} {
		m, rooms, player := buildFloor(t, seed, 3)
		require.NotEmpty(t, rooms)

		// 1. Комнаты не пересекаются
		for i := range rooms {
			for j := i + 1; j < len(rooms); j++ {
				assert.False(t, rooms[i].Intersects(rooms[j]), "seed %d: rooms %d and %d intersect", seed, i, j)
			}
		}

		// 2. Игрок в центре первой комнаты, лестница в центре последней
		assert.Equal(t, rooms[0].Center(), player.Pos)
		assert.Same(t, player, m.Entities[0])
		assert.Equal(t, rooms[len(rooms)-1].Center(), m.DownstairsLocation)
		assert.True(t, m.IsWalkable(m.DownstairsLocation))

		// 3. Все комнаты достижимы из стартовой
		reach := reachable(m, player.Pos)
		for i, r := range rooms {
			assert.True(t, reach[r.Center()], "seed %d: room %d unreachable", seed, i)
		}

		// 4. Сущности стоят на полу и не делят клетки
		cells := make(map[domain.Position]bool)
		for _, e := range m.Entities {
			assert.True(t, m.IsWalkable(e.Pos))
			assert.False(t, cells[e.Pos], "seed %d: two entities at %v", seed, e.Pos)
			cells[e.Pos] = true
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, _, _ := buildFloor(t, 99, 2)
	b, _, _ := buildFloor(t, 99, 2)

	assert.Equal(t, a.Tiles, b.Tiles)
	require.Len(t, b.Entities, len(a.Entities))
	for i := range a.Entities {
		assert.Equal(t, a.Entities[i].Name, b.Entities[i].Name)
		assert.Equal(t, a.Entities[i].Pos, b.Entities[i].Pos)
	}
}

func TestGenerate_NoRooms(t *testing.T) {
	params := DefaultParams()
	params.MaxRooms = 0

	_, err := Generate(params, 1, CreatePlayer(), DefaultTables(), rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrNoRooms)
}

func TestGenerate_FloorIndex(t *testing.T) {
	m, err := Generate(DefaultParams(), 4, CreatePlayer(), nil, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	assert.Equal(t, 4, m.Floor)
	assert.Equal(t, MapWidth, m.Width)
	assert.Equal(t, MapHeight, m.Height)
}

func reachable(m *domain.GameMap, start domain.Position) map[domain.Position]bool {
	seen := map[domain.Position]bool{start: true}
	queue := []domain.Position{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			next := cur.Shift(d[0], d[1])
			if !seen[next] && m.IsWalkable(next) {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return seen
}
