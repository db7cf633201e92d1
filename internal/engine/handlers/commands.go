package handlers

import (
	"fmt"

	"rogue-engine/internal/domain"
	"rogue-engine/internal/engine/actions"
	"rogue-engine/internal/systems"
	"rogue-engine/pkg/api"
)

// HandleMove - клавиша направления: Bump (атака или шаг)
func HandleMove(_ Context, p api.DirectionPayload) (Result, error) {
	return Result{Action: actions.Bump{Dx: p.Dx, Dy: p.Dy}}, nil
}

func HandleWait(_ Context) (Result, error) {
	return Result{Action: actions.Wait{}}, nil
}

func HandlePickup(_ Context) (Result, error) {
	return Result{Action: actions.Pickup{}}, nil
}

func HandleDescend(_ Context) (Result, error) {
	return Result{Action: actions.TakeStairs{}}, nil
}

func HandleDrop(ctx Context, p api.IndexPayload) (Result, error) {
	item := ctx.Player.Inventory.At(p.Index)
	if item == nil {
		return invalidEntry(), nil
	}
	return Result{Action: actions.Drop{Item: item}}, nil
}

func HandleEquip(ctx Context, p api.IndexPayload) (Result, error) {
	item := ctx.Player.Inventory.At(p.Index)
	if item == nil {
		return invalidEntry(), nil
	}
	return Result{Action: actions.Equip{Item: item}}, nil
}

// HandleUse - расходник без цели выполняется сразу, с целью переводит ввод в прицеливание.
// Снаряжение по USE надевается/снимается.
func HandleUse(ctx Context, p api.IndexPayload) (Result, error) {
	item := ctx.Player.Inventory.At(p.Index)
	if item == nil {
		return invalidEntry(), nil
	}

	if item.Consumable == nil {
		if item.Equippable != nil {
			return Result{Action: actions.Equip{Item: item}}, nil
		}
		return Result{Action: actions.ItemAction{Item: item}}, nil
	}

	kind, radius := item.Consumable.Targeting()
	if kind == domain.TargetNone {
		return Result{Action: actions.ItemAction{Item: item}}, nil
	}

	return Result{
		Mode:    domain.ModeTargeting,
		Pending: &Pending{Item: item, Index: p.Index, Kind: kind, Radius: radius},
		Msg:     "Select a target location.",
		MsgFg:   domain.ColorNeedsTarget,
	}, nil
}

// HandleTarget подтверждает клетку. Режим возвращается в normal при любом исходе действия.
func HandleTarget(ctx Context, p api.PositionPayload) (Result, error) {
	if ctx.Mode != domain.ModeTargeting || ctx.Pending == nil {
		return Result{}, fmt.Errorf("no item is waiting for a target")
	}
	target := domain.Position{X: p.X, Y: p.Y}
	return Result{
		Action: actions.ItemAction{Item: ctx.Pending.Item, Target: &target},
		Mode:   domain.ModeNormal,
	}, nil
}

// HandleCancel выходит из прицеливания, ничего не выполняя
func HandleCancel(ctx Context) (Result, error) {
	if ctx.Mode == domain.ModeTargeting {
		return Result{Mode: domain.ModeNormal}, nil
	}
	return EmptyResult(), nil
}

// HandleLevelUp - выбор характеристики. Ход не тратит.
func HandleLevelUp(ctx Context, p api.LevelUpPayload) (Result, error) {
	if err := systems.ApplyLevelUp(ctx.Env, ctx.Player, systems.Attribute(p.Attribute)); err != nil {
		return Result{}, err
	}
	return Result{Mode: domain.ModeNormal}, nil
}
