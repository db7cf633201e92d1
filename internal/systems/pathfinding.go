package systems

import (
	"rogue-engine/internal/domain"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// walkableGraph - граф проходимых клеток для A*.
// Стены непроходимы совсем, шаг в любую из 8 сторон стоит 1.
type walkableGraph struct {
	m   *domain.GameMap
	nbs paths.Neighbors
}

func (g *walkableGraph) Neighbors(p gruid.Point) []gruid.Point {
	return g.nbs.All(p, g.passable)
}

func (g *walkableGraph) Cost(_, _ gruid.Point) int {
	return 1
}

func (g *walkableGraph) Estimation(p, q gruid.Point) int {
	return toPosition(p).ChebyshevTo(toPosition(q))
}

func (g *walkableGraph) passable(p gruid.Point) bool {
	return g.m.IsWalkable(toPosition(p))
}

// PathTo возвращает маршрут от from до to без стартовой клетки.
// Пустой результат означает, что пути нет.
func PathTo(m *domain.GameMap, from, to domain.Position) []domain.Position {
	if from == to || !m.IsWalkable(to) {
		return nil
	}

	pr := paths.NewPathRange(gruid.NewRange(0, 0, m.Width, m.Height))
	raw := pr.AstarPath(&walkableGraph{m: m}, toPoint(from), toPoint(to))
	if len(raw) < 2 {
		return nil
	}

	path := make([]domain.Position, 0, len(raw)-1)
	for _, p := range raw[1:] {
		path = append(path, toPosition(p))
	}
	return path
}

func toPoint(p domain.Position) gruid.Point {
	return gruid.Point{X: p.X, Y: p.Y}
}

func toPosition(p gruid.Point) domain.Position {
	return domain.Position{X: p.X, Y: p.Y}
}
