package engine

import (
	"rogue-engine/internal/domain"
	"rogue-engine/internal/engine/actions"
	"rogue-engine/internal/systems"
	"rogue-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

// processAITurn обрабатывает логику NPC
func (g *Game) processAITurn(env systems.Env, npc *domain.Entity) {
	// 1. Решение и следующее состояние AI (замешательство может закончиться)
	decision, next := systems.ComputeNPCAction(env, npc)
	npc.AI = next

	// 2. Конвертируем решение AI в действие
	var action actions.Action
	switch decision.Kind {
	case systems.DecisionWait:
		action = actions.Wait{}
	case systems.DecisionMove:
		action = actions.Movement{Dx: decision.Dx, Dy: decision.Dy}
	case systems.DecisionMelee:
		action = actions.Melee{Dx: decision.Dx, Dy: decision.Dy}
	case systems.DecisionBump:
		action = actions.Bump{Dx: decision.Dx, Dy: decision.Dy}
	default:
		return
	}

	// 3. Отказы монстров игроку не показываем
	if _, err := actions.Perform(env, npc, action); err != nil {
		entry := logger.Log.WithFields(logrus.Fields{
			"component": "ai_turn",
			"npc_id":    npc.ID,
			"action":    action.Name(),
		})
		if domain.IsImpossible(err) {
			entry.WithField("reason", err.Error()).Debug("NPC action refused.")
			return
		}
		entry.WithError(err).Warn("NPC action failed.")
	}
}
