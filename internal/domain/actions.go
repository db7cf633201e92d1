package domain

import "strings"

// ActionType - семантическая команда клиента (уже без привязки к клавишам)
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionMove
	ActionWait
	ActionPickup
	ActionDrop
	ActionUse
	ActionEquip
	ActionTarget
	ActionCancel
	ActionDescend
	ActionLevelUp
	ActionSave

	// Отладочные команды, работают только при включенных читах
	ActionSpawn
	ActionReveal
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":     ActionInit,
	"MOVE":     ActionMove,
	"WAIT":     ActionWait,
	"PICKUP":   ActionPickup,
	"DROP":     ActionDrop,
	"USE":      ActionUse,
	"EQUIP":    ActionEquip,
	"TARGET":   ActionTarget,
	"CANCEL":   ActionCancel,
	"DESCEND":  ActionDescend,
	"LEVEL_UP": ActionLevelUp,
	"SAVE":     ActionSave,
	"SPAWN":    ActionSpawn,
	"REVEAL":   ActionReveal,
}

// Маппинг для логов Domain -> String
var actionCmdToString = func() map[ActionType]string {
	m := make(map[ActionType]string, len(actionStringToCmd))
	for s, a := range actionStringToCmd {
		m[a] = s
	}
	return m
}()

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	if val, ok := actionStringToCmd[strings.ToUpper(s)]; ok {
		return val
	}
	return ActionUnknown
}

func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
