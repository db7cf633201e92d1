package systems

import (
	"fmt"

	"rogue-engine/internal/domain"
	"rogue-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

// DecisionKind - какое действие выбрал AI
type DecisionKind uint8

const (
	// DecisionNone - ход потрачен на смену состояния, действия нет
	DecisionNone DecisionKind = iota
	DecisionWait
	DecisionMove
	DecisionMelee
	DecisionBump
)

// Decision - решение AI. Движок превращает его в Action.
type Decision struct {
	Kind   DecisionKind
	Dx, Dy int
}

// Восемь направлений для сбитого с толку монстра
var directions = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// ComputeNPCAction решает, что делать монстру в этот ход.
// Возвращает решение и состояние AI, которое монстр должен получить после хода.
func ComputeNPCAction(env Env, npc *domain.Entity) (Decision, domain.AI) {
	aiLogger := logger.Log.WithFields(logrus.Fields{
		"component": "ai_system",
		"npc_id":    npc.ID,
		"npc_name":  npc.Name,
	})

	switch ai := npc.AI.(type) {
	case *domain.HostileAI:
		d := hostileDecision(env, npc, ai)
		aiLogger.WithFields(logrus.Fields{"decision": d.Kind, "path_len": len(ai.Path)}).Debug("Hostile decision.")
		return d, ai

	case *domain.ConfusedAI:
		d, next := confusedDecision(env, npc, ai)
		aiLogger.WithField("decision", d.Kind).Debug("Confused decision.")
		return d, next

	default:
		return Decision{Kind: DecisionWait}, npc.AI
	}
}

func hostileDecision(env Env, npc *domain.Entity, ai *domain.HostileAI) Decision {
	target := env.Player
	if target == nil || !target.IsAlive() {
		return Decision{Kind: DecisionWait}
	}

	dx := target.Pos.X - npc.Pos.X
	dy := target.Pos.Y - npc.Pos.Y

	// Клетка монстра видна игроку - значит и монстр видит игрока
	if env.Map.IsVisible(npc.Pos) {
		if npc.Pos.ChebyshevTo(target.Pos) <= 1 {
			return Decision{Kind: DecisionMelee, Dx: dx, Dy: dy}
		}
		ai.Path = PathTo(env.Map, npc.Pos, target.Pos)
	}

	// Иначе доедаем старый маршрут
	if len(ai.Path) > 0 {
		next := ai.Path[0]
		ai.Path = ai.Path[1:]
		return Decision{Kind: DecisionMove, Dx: next.X - npc.Pos.X, Dy: next.Y - npc.Pos.Y}
	}

	return Decision{Kind: DecisionWait}
}

func confusedDecision(env Env, npc *domain.Entity, ai *domain.ConfusedAI) (Decision, domain.AI) {
	if ai.TurnsRemaining <= 0 {
		env.Log.Add(fmt.Sprintf("The %s is no longer confused.", npc.Name), domain.ColorWhite)
		return Decision{Kind: DecisionNone}, ai.Previous
	}

	dir := directions[env.Rng.Intn(len(directions))]
	next := domain.NewConfusedAI(ai.Previous, ai.TurnsRemaining-1)
	return Decision{Kind: DecisionBump, Dx: dir[0], Dy: dir[1]}, next
}
