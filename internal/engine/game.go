package engine

import (
	"errors"
	"fmt"
	"math/rand"

	"rogue-engine/internal/config"
	"rogue-engine/internal/domain"
	"rogue-engine/internal/engine/actions"
	"rogue-engine/internal/engine/handlers"
	"rogue-engine/internal/engine/handlers/admin"
	"rogue-engine/internal/systems"
	"rogue-engine/pkg/dungeon"
	"rogue-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

const welcomeMessage = "Hello and welcome, adventurer, to yet another dungeon!"

var (
	// ErrActionNotAllowed - команда не подходит к текущему режиму ввода
	ErrActionNotAllowed = errors.New("action not allowed in current mode")
	ErrUnknownAction    = errors.New("unknown action")
)

// Options - правила, общие для всех партий сервиса
type Options struct {
	Params            dungeon.Params
	Tables            *dungeon.Tables
	FOVRadius         int
	InventoryCapacity int
	Cheats            bool
}

// OptionsFromConfig собирает Options из игровой секции конфига.
// Таблицы грузятся из файла, если путь задан, иначе берутся встроенные.
func OptionsFromConfig(cfg config.GameConfig) (Options, error) {
	tables := dungeon.DefaultTables()
	if cfg.TablesPath != "" {
		t, err := dungeon.LoadTables(cfg.TablesPath)
		if err != nil {
			return Options{}, err
		}
		tables = t
	}
	return Options{
		Params:            cfg.DungeonParams(),
		Tables:            tables,
		FOVRadius:         cfg.FOVRadius,
		InventoryCapacity: cfg.InventoryCapacity,
		Cheats:            cfg.Cheats,
	}, nil
}

func (o Options) withDefaults() Options {
	if o.Params == (dungeon.Params{}) {
		o.Params = dungeon.DefaultParams()
	}
	if o.Tables == nil {
		o.Tables = dungeon.DefaultTables()
	}
	if o.FOVRadius <= 0 {
		o.FOVRadius = domain.VisionRadius
	}
	return o
}

// Game - одна партия: текущий этаж, игрок, лента сообщений и режим ввода.
// Не потокобезопасна: все вызовы идут из одной горутины сервиса.
type Game struct {
	Map    *domain.GameMap
	Player *domain.Entity
	Log    *domain.MessageLog
	Floor  int
	Mode   domain.InputMode
	Turn   int

	pending  *handlers.Pending
	rng      *rand.Rand
	opts     Options
	handlers map[domain.ActionType]handlers.HandlerFunc
}

func newGame(opts Options, rng *rand.Rand) *Game {
	g := &Game{
		Log:      domain.NewMessageLog(),
		Mode:     domain.ModeNormal,
		rng:      rng,
		opts:     opts.withDefaults(),
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
	}
	g.registerHandlers()
	return g
}

// NewGame создает игрока и первый этаж
func NewGame(opts Options, rng *rand.Rand) (*Game, error) {
	g := newGame(opts, rng)

	g.Player = dungeon.CreatePlayer()
	if g.opts.InventoryCapacity > 0 {
		g.Player.Inventory.Capacity = g.opts.InventoryCapacity
	}

	if err := g.generateFloor(); err != nil {
		return nil, err
	}
	g.updateFOV()
	g.Log.Add(welcomeMessage, domain.ColorWelcome)
	return g, nil
}

func (g *Game) registerHandlers() {
	g.handlers[domain.ActionMove] = handlers.WithPayload(handlers.HandleMove)
	g.handlers[domain.ActionWait] = handlers.WithEmptyPayload(handlers.HandleWait)
	g.handlers[domain.ActionPickup] = handlers.WithEmptyPayload(handlers.HandlePickup)
	g.handlers[domain.ActionDrop] = handlers.WithPayload(handlers.HandleDrop)
	g.handlers[domain.ActionUse] = handlers.WithPayload(handlers.HandleUse)
	g.handlers[domain.ActionEquip] = handlers.WithPayload(handlers.HandleEquip)
	g.handlers[domain.ActionTarget] = handlers.WithPayload(handlers.HandleTarget)
	g.handlers[domain.ActionCancel] = handlers.WithEmptyPayload(handlers.HandleCancel)
	g.handlers[domain.ActionDescend] = handlers.WithEmptyPayload(handlers.HandleDescend)
	g.handlers[domain.ActionLevelUp] = handlers.WithPayload(handlers.HandleLevelUp)

	if g.opts.Cheats {
		g.handlers[domain.ActionSpawn] = handlers.WithPayload(admin.HandleSpawn)
		g.handlers[domain.ActionReveal] = handlers.WithEmptyPayload(admin.HandleReveal)
	}
}

func (g *Game) env() systems.Env {
	return systems.Env{Map: g.Map, Player: g.Player, Log: g.Log, Rng: g.rng}
}

// allowed - какие команды принимает каждый режим ввода
func (g *Game) allowed(action domain.ActionType) bool {
	switch g.Mode {
	case domain.ModeDead:
		return false
	case domain.ModeLevelUp:
		return action == domain.ActionLevelUp
	case domain.ModeTargeting:
		return action == domain.ActionTarget || action == domain.ActionCancel
	default:
		return action != domain.ActionTarget && action != domain.ActionLevelUp
	}
}

// Handle обрабатывает одну команду игрока.
// Игровые отказы (Impossible) попадают в ленту сообщений и ошибкой не считаются.
// Ошибка возвращается только для команд, которые нельзя было даже разобрать.
func (g *Game) Handle(cmd domain.InternalCommand) error {
	gameLogger := logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"action":    cmd.Action.String(),
		"mode":      g.Mode,
		"floor":     g.Floor,
	})

	handler, ok := g.handlers[cmd.Action]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, cmd.Action)
	}
	if !g.allowed(cmd.Action) {
		return fmt.Errorf("%w: %s in %s", ErrActionNotAllowed, cmd.Action, g.Mode)
	}

	// 1. Разбор команды
	ctx := handlers.Context{Env: g.env(), Player: g.Player, Mode: g.Mode, Pending: g.pending}
	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		if domain.IsImpossible(err) {
			g.Log.Add(err.Error(), domain.ColorImpossible)
			g.refreshMode()
			return nil
		}
		return err
	}

	// 2. Сообщение и смена режима
	if result.Msg != "" {
		g.Log.Add(result.Msg, result.MsgFg)
	}
	if result.Mode != "" {
		g.Mode = result.Mode
		g.pending = result.Pending
	}
	if result.Action == nil {
		g.refreshMode()
		return nil
	}

	// 3. Действие игрока
	res, err := actions.Perform(g.env(), g.Player, result.Action)
	if err != nil {
		if domain.IsImpossible(err) {
			g.Log.Add(err.Error(), domain.ColorImpossible)
			gameLogger.WithField("reason", err.Error()).Debug("Player action refused.")
			return nil
		}
		return err
	}
	// 4. Ход мира: спуск или ходы монстров, затем FOV.
	// Несостоявшийся спуск ход не тратит.
	if res.Event != domain.EventNone {
		if err := g.processEvent(res.Event); err != nil {
			gameLogger.WithError(err).Error("Event failed.")
			return err
		}
	} else {
		g.handleEnemyTurns()
	}
	g.Turn++
	g.updateFOV()
	g.refreshMode()

	gameLogger.WithFields(logrus.Fields{"turn": g.Turn, "hp": g.Player.Fighter.HP()}).Debug("Turn resolved.")
	return nil
}

// refreshMode: смерть и прокачка важнее текущего режима
func (g *Game) refreshMode() {
	switch {
	case !g.Player.IsAlive():
		g.Mode = domain.ModeDead
		g.pending = nil
	case g.Mode == domain.ModeTargeting:
		return
	case g.Player.Level != nil && g.Player.Level.RequiresLevelUp():
		g.Mode = domain.ModeLevelUp
	case g.Mode == domain.ModeLevelUp:
		g.Mode = domain.ModeNormal
	}
	if g.Mode != domain.ModeTargeting {
		g.pending = nil
	}
}

func (g *Game) updateFOV() {
	systems.UpdateFOV(g.Map, g.Player.Pos, g.opts.FOVRadius)
}

// IsOver - игрок погиб, партия закончена
func (g *Game) IsOver() bool {
	return g.Mode == domain.ModeDead
}
