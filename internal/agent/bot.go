package agent

import (
	"context"
	"encoding/json"
	"sort"

	"rogue-engine/internal/domain"
	"rogue-engine/internal/engine"
	"rogue-engine/internal/systems"
	"rogue-engine/pkg/api"
	"rogue-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Сколько ближайших неисследованных границ бот пробует, прежде чем сдаться и ждать
const maxFrontierTries = 12

// Bot представляет собой "Игрока-компьютера" (Headless Agent).
// Он подключается к сервису так же, как обычный игрок: получает ServerResponse
// в свой канал и отвечает командами. Видит только то, что прислал сервер.
//
// Жизненный цикл:
//  1. NewBot -> регистрация в хабе под своим токеном, получение личного канала (Inbox).
//  2. Run -> INIT, затем на каждый ответ сервера - одна команда от Decide.
//  3. Бот останавливается, когда погиб, исчерпал MaxTurns или отменен ctx.
type Bot struct {
	Token    string
	Service  *engine.GameService
	Inbox    chan api.ServerResponse
	MaxTurns int

	log *logrus.Entry
}

func NewBot(token string, service *engine.GameService, maxTurns int) *Bot {
	return &Bot{
		Token:    token,
		Service:  service,
		Inbox:    service.Hub.Register(token),
		MaxTurns: maxTurns,
		log:      logger.Log.WithFields(logrus.Fields{"component": "bot", "token": token}),
	}
}

// Run запускает цикл жизни бота. Должен быть запущен в горутине.
func (b *Bot) Run(ctx context.Context) {
	defer b.Service.Hub.Unregister(b.Token, b.Inbox)

	b.send(api.ClientCommand{Action: domain.ActionInit.String()})

	// Отвергнутые команды ход не тратят, поэтому ограничиваем и число команд
	sent := 0
	for {
		select {
		case <-ctx.Done():
			return
		case state, ok := <-b.Inbox:
			if !ok {
				return
			}
			sent++
			if b.MaxTurns > 0 && sent > b.MaxTurns*4 {
				b.log.WithField("turn", state.Turn).Warn("Bot is stuck, stopping.")
				return
			}
			if state.Type == "ERROR" {
				// Команда отвергнута - просто пропускаем ход
				b.log.WithField("error", state.Error).Debug("Command rejected.")
				b.send(api.ClientCommand{Action: domain.ActionWait.String()})
				continue
			}
			if state.Mode == string(domain.ModeDead) {
				b.log.WithFields(logrus.Fields{"floor": state.Floor, "turn": state.Turn}).Info("Bot died.")
				return
			}
			if b.MaxTurns > 0 && state.Turn >= b.MaxTurns {
				b.log.WithFields(logrus.Fields{"floor": state.Floor, "turn": state.Turn}).Info("Bot finished.")
				b.send(api.ClientCommand{Action: domain.ActionSave.String()})
				return
			}
			b.send(Decide(state))
		}
	}
}

func (b *Bot) send(cmd api.ClientCommand) {
	if err := b.Service.ProcessCommand(b.Token, cmd); err != nil {
		b.log.WithError(err).Warn("Failed to send command.")
	}
}

// Decide - мозг бота: одна команда на основе того, что видно в ответе сервера.
func Decide(state api.ServerResponse) api.ClientCommand {
	// 1. Режимы, где выбора нет
	switch domain.InputMode(state.Mode) {
	case domain.ModeLevelUp:
		return command(domain.ActionLevelUp, api.LevelUpPayload{Attribute: "constitution"})
	case domain.ModeTargeting:
		return command(domain.ActionCancel, nil)
	}

	// 2. Воссоздание локальной картины мира
	localMap := buildLocalMap(state)
	me := findSelf(state)
	if me == nil || localMap == nil {
		return command(domain.ActionWait, nil)
	}
	myPos := domain.Position{X: me.Pos.X, Y: me.Pos.Y}

	// 3. Лечимся, если здоровья меньше трети
	if p := state.Player; p != nil && p.Stats.HP*3 < p.Stats.MaxHP {
		for _, item := range p.Inventory {
			if item.Name == "Health Potion" {
				return command(domain.ActionUse, api.IndexPayload{Index: item.Index})
			}
		}
	}

	// 4. Ближайший видимый враг: рядом - бьем, иначе идем к нему
	if enemy := nearestEnemy(state, myPos); enemy != nil {
		if myPos.IsAdjacent(*enemy) {
			return move(enemy.X-myPos.X, enemy.Y-myPos.Y)
		}
		if cmd, ok := stepTowards(localMap, myPos, *enemy); ok {
			return cmd
		}
	}

	// 5. Предмет под ногами
	if standsOnItem(state, myPos) && (state.Player == nil || len(state.Player.Inventory) < state.Player.InventoryLimit) {
		return command(domain.ActionPickup, nil)
	}

	// 6. Сначала исследуем этаж, потом спускаемся
	frontier := frontierCells(localMap, myPos)
	for i, cell := range frontier {
		if i >= maxFrontierTries {
			break
		}
		if cmd, ok := stepTowards(localMap, myPos, cell); ok {
			return cmd
		}
	}

	if stairs, ok := findStairs(state); ok {
		if stairs == myPos {
			return command(domain.ActionDescend, nil)
		}
		if cmd, ok := stepTowards(localMap, myPos, stairs); ok {
			return cmd
		}
	}

	return command(domain.ActionWait, nil)
}

// buildLocalMap создает локальную копию карты из присланных тайлов.
// Все, что бот не видел, считается стеной, чтобы не строить пути в неизвестность.
func buildLocalMap(state api.ServerResponse) *domain.GameMap {
	if state.Grid == nil || state.Grid.Width <= 0 || state.Grid.Height <= 0 {
		return nil
	}
	m := domain.NewGameMap(state.Grid.Width, state.Grid.Height, state.Floor)
	for _, tv := range state.Map {
		pos := domain.Position{X: tv.X, Y: tv.Y}
		tile := m.TileAt(pos)
		if tile == nil {
			continue
		}
		tile.Walkable = tv.Walkable
		tile.Transparent = tv.Walkable
		tile.Seen = tv.IsExplored
		tile.Visible = tv.IsVisible
	}
	return m
}

func findSelf(state api.ServerResponse) *api.EntityView {
	for i := range state.Entities {
		if state.Entities[i].ID == state.MyEntityID {
			return &state.Entities[i]
		}
	}
	return nil
}

func nearestEnemy(state api.ServerResponse, from domain.Position) *domain.Position {
	var best *domain.Position
	bestDist := 0
	for _, ev := range state.Entities {
		if ev.Type != domain.KindMonster.String() || ev.Stats == nil || ev.Stats.IsDead {
			continue
		}
		pos := domain.Position{X: ev.Pos.X, Y: ev.Pos.Y}
		if d := from.ChebyshevTo(pos); best == nil || d < bestDist {
			best, bestDist = &pos, d
		}
	}
	return best
}

func standsOnItem(state api.ServerResponse, pos domain.Position) bool {
	for _, ev := range state.Entities {
		if ev.Type == domain.KindItem.String() && ev.Pos.X == pos.X && ev.Pos.Y == pos.Y {
			return true
		}
	}
	return false
}

func findStairs(state api.ServerResponse) (domain.Position, bool) {
	for _, tv := range state.Map {
		if tv.Symbol == ">" {
			return domain.Position{X: tv.X, Y: tv.Y}, true
		}
	}
	return domain.Position{}, false
}

// frontierCells - проходимые клетки рядом с неисследованными, ближние первыми
func frontierCells(m *domain.GameMap, from domain.Position) []domain.Position {
	var cells []domain.Position
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			pos := domain.Position{X: x, Y: y}
			if pos == from || !m.IsWalkable(pos) {
				continue
			}
			if touchesUnknown(m, pos) {
				cells = append(cells, pos)
			}
		}
	}
	sort.SliceStable(cells, func(i, j int) bool {
		return from.ChebyshevTo(cells[i]) < from.ChebyshevTo(cells[j])
	})
	return cells
}

func touchesUnknown(m *domain.GameMap, pos domain.Position) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			t := m.TileAt(pos.Shift(dx, dy))
			if t != nil && !t.Seen {
				return true
			}
		}
	}
	return false
}

func stepTowards(m *domain.GameMap, from, to domain.Position) (api.ClientCommand, bool) {
	path := systems.PathTo(m, from, to)
	if len(path) == 0 {
		return api.ClientCommand{}, false
	}
	next := path[0]
	return move(next.X-from.X, next.Y-from.Y), true
}

func move(dx, dy int) api.ClientCommand {
	return command(domain.ActionMove, api.DirectionPayload{Dx: dx, Dy: dy})
}

// --- Хелперы для сборки команд ---

func command(action domain.ActionType, payload interface{}) api.ClientCommand {
	cmd := api.ClientCommand{Action: action.String()}
	if payload != nil {
		// payload - плоские DTO, ошибки Marshal быть не может
		cmd.Payload, _ = json.Marshal(payload)
	}
	return cmd
}
