package engine

import (
	"slices"

	"rogue-engine/internal/domain"
)

// handleEnemyTurns - каждый живой монстр ходит один раз, в порядке списка сущностей.
// Итерируемся по копии: действие может поменять список (смерть, выпавший предмет).
func (g *Game) handleEnemyTurns() {
	env := g.env()
	for _, e := range slices.Clone(g.Map.Entities) {
		if e == g.Player || e.AI == nil || !e.IsAlive() {
			continue
		}
		g.processAITurn(env, e)
	}
}

// LivingMonsters - для отладки и тестов
func (g *Game) LivingMonsters() []*domain.Entity {
	var out []*domain.Entity
	for _, e := range g.Map.Actors() {
		if !e.IsPlayer() {
			out = append(out, e)
		}
	}
	return out
}
