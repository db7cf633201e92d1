package systems

import (
	"rogue-engine/internal/domain"
	"rogue-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// UpdateFOV сбрасывает Visible у всех тайлов и заново отмечает видимые
// из pos. Seen только выставляется, никогда не сбрасывается.
func UpdateFOV(m *domain.GameMap, pos domain.Position, radius int) {
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			m.Tiles[y][x].Visible = false
		}
	}

	for idx := range ComputeVisibleTiles(m, pos, radius) {
		t := &m.Tiles[idx/m.Width][idx%m.Width]
		t.Visible = true
		t.Seen = true
	}
}

// ComputeVisibleTiles возвращает мапу индексов {index: true}, которые видны.
// Радиус квадратный: видно все, до чего не дальше radius шагов по Чебышеву.
func ComputeVisibleTiles(m *domain.GameMap, pos domain.Position, radius int) map[int]bool {
	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":    "fov_system",
		"observer_pos": pos,
		"radius":       radius,
	})

	visibleMap := make(map[int]bool)
	if radius <= 0 || !m.InBounds(pos) {
		fovLogger.Warn("FOV calculation skipped: blind observer or out of bounds.")
		return visibleMap
	}

	// 1. Центр всегда виден
	visibleMap[m.GetIndex(pos.X, pos.Y)] = true

	// 2. Рекурсивный Shadowcasting для 8 октантов
	for i := 0; i < 8; i++ {
		castLight(m, pos.X, pos.Y, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], visibleMap)
	}

	fovLogger.WithField("visible_tiles", len(visibleMap)).Debug("FOV calculation complete.")
	return visibleMap
}

func castLight(m *domain.GameMap, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, visibleMap map[int]bool) {
	if start < end {
		return
	}

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}
			dy = -j

			// Наклоны краев клетки
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			X := cx + dx*xx + dy*xy
			Y := cy + dx*yx + dy*yy

			if X >= 0 && Y >= 0 && X < m.Width && Y < m.Height {
				visibleMap[m.GetIndex(X, Y)] = true
			}

			if blocked {
				// Идем вдоль стены
				if isBlocking(m, X, Y) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if isBlocking(m, X, Y) && j < radius {
				// Наткнулись на стену: сканируем следующий ряд до ее края
				blocked = true
				castLight(m, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, visibleMap)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

// isBlocking: за пределами карты взгляд тоже не проходит
func isBlocking(m *domain.GameMap, x, y int) bool {
	return !m.IsTransparent(domain.Position{X: x, Y: y})
}
