package engine

import (
	"fmt"

	"rogue-engine/internal/domain"
	"rogue-engine/pkg/dungeon"
	"rogue-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

// processEvent - точка входа для побочных эффектов, которые действие передало движку
func (g *Game) processEvent(event domain.EventType) error {
	switch event {
	case domain.EventDescend:
		return g.descend()
	default:
		logger.Log.WithFields(logrus.Fields{
			"component": "events",
			"event":     event.String(),
		}).Warn("Unknown event type.")
		return nil
	}
}

// descend генерирует следующий этаж и переносит на него того же игрока.
// Монстры нового этажа в этот ход не ходят.
func (g *Game) descend() error {
	from := g.Floor
	if err := g.generateFloor(); err != nil {
		return err
	}
	g.Log.Add("You descend the staircase.", domain.ColorDescend)

	logger.Log.WithFields(logrus.Fields{
		"component":  "events",
		"from_floor": from,
		"to_floor":   g.Floor,
		"player_pos": g.Player.Pos,
	}).Info("Player descended.")
	return nil
}

// generateFloor строит этаж Floor+1. При ошибке текущий этаж остается прежним.
func (g *Game) generateFloor() error {
	next := g.Floor + 1
	m, err := dungeon.Generate(g.opts.Params, next, g.Player, g.opts.Tables, g.rng)
	if err != nil {
		return fmt.Errorf("generate floor %d: %w", next, err)
	}
	g.Map = m
	g.Floor = next
	return nil
}
