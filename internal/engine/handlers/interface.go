package handlers

import (
	"encoding/json"

	"rogue-engine/internal/domain"
	"rogue-engine/internal/engine/actions"
	"rogue-engine/internal/systems"
)

// Pending - расходник, который ждет выбора клетки
type Pending struct {
	Item   *domain.Entity
	Index  int
	Kind   domain.TargetKind
	Radius int
}

// Context передает хендлеру состояние игры.
// Хендлер читает мир, но меняет его только через возвращаемое Action.
type Context struct {
	Env     systems.Env
	Player  *domain.Entity
	Mode    domain.InputMode
	Pending *Pending
}

// Result - возвращает результат разбора команды.
// Хендлер НЕ пишет в лог игры напрямую, он возвращает данные.
type Result struct {
	Action  actions.Action   // nil - ход не тратится
	Mode    domain.InputMode // пусто - режим не меняется
	Pending *Pending         // для перехода в режим прицеливания
	Msg     string
	MsgFg   string
}

// HandlerFunc - это контракт для любой команды (MOVE, USE, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}

// invalidEntry - неверный номер предмета; ход не тратится
func invalidEntry() Result {
	return Result{Msg: "Invalid entry.", MsgFg: domain.ColorInvalid}
}
