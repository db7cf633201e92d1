package systems

import (
	"testing"

	"rogue-engine/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFOV_WithinRadius(t *testing.T) {
	m := newOpenMap(40, 40)
	center := domain.Position{X: 20, Y: 20}

	UpdateFOV(m, center, domain.VisionRadius)

	visibleCount := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := domain.Position{X: x, Y: y}
			tile := m.TileAt(p)
			if !tile.Visible {
				continue
			}
			visibleCount++
			assert.True(t, tile.Seen, "visible implies seen at %v", p)
			assert.LessOrEqual(t, p.ChebyshevTo(center), domain.VisionRadius)
		}
	}
	assert.Greater(t, visibleCount, 100)
	assert.True(t, m.IsVisible(center))
	assert.True(t, m.IsVisible(domain.Position{X: 28, Y: 20}), "straight line at full radius is visible")
	assert.False(t, m.IsVisible(domain.Position{X: 29, Y: 20}))
}

func TestFOV_SquareRadius(t *testing.T) {
	m := newOpenMap(30, 30)
	center := domain.Position{X: 14, Y: 14}

	UpdateFOV(m, center, 8)

	for _, d := range []struct{ dx, dy int }{{6, 6}, {7, 5}, {8, 8}, {-8, 8}, {-8, -8}, {8, -3}} {
		assert.True(t, m.IsVisible(center.Shift(d.dx, d.dy)), "(%+d,%+d) must be visible", d.dx, d.dy)
	}
	assert.False(t, m.IsVisible(center.Shift(9, 9)))
	assert.False(t, m.IsVisible(center.Shift(9, 0)))

	// в открытой комнате виден весь квадрат 17x17
	visible := 0
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			if m.Tiles[y][x].Visible {
				visible++
			}
		}
	}
	assert.Equal(t, 17*17, visible)
}

func TestFOV_WallCastsShadow(t *testing.T) {
	m := newOpenMap(30, 11)
	// Вертикальная стена на x=10 от края до края
	for y := 0; y < m.Height; y++ {
		m.SetTile(domain.Position{X: 10, Y: y}, domain.NewWallTile())
	}
	viewer := domain.Position{X: 7, Y: 5}

	UpdateFOV(m, viewer, domain.VisionRadius)

	assert.True(t, m.IsVisible(domain.Position{X: 10, Y: 5}), "the wall itself is visible")
	for y := 0; y < m.Height; y++ {
		for x := 11; x < m.Width; x++ {
			assert.False(t, m.IsVisible(domain.Position{X: x, Y: y}), "tile behind the wall visible at (%d,%d)", x, y)
		}
	}
}

func TestFOV_SeenIsMonotonic(t *testing.T) {
	m := newOpenMap(60, 20)
	positions := []domain.Position{{X: 5, Y: 10}, {X: 30, Y: 10}, {X: 55, Y: 10}, {X: 5, Y: 2}}

	prevSeen := map[domain.Position]bool{}
	for _, pos := range positions {
		UpdateFOV(m, pos, domain.VisionRadius)
		for p := range prevSeen {
			require.True(t, m.TileAt(p).Seen, "seen flag reset at %v", p)
		}
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				if m.Tiles[y][x].Seen {
					prevSeen[domain.Position{X: x, Y: y}] = true
				}
			}
		}
	}

	// Старая позиция больше не видна, но помнится
	assert.False(t, m.IsVisible(domain.Position{X: 30, Y: 10}))
	assert.True(t, m.TileAt(domain.Position{X: 30, Y: 10}).Seen)
}

func TestComputeVisibleTiles_Blind(t *testing.T) {
	m := newOpenMap(10, 10)
	assert.Empty(t, ComputeVisibleTiles(m, domain.Position{X: 5, Y: 5}, 0))
}
