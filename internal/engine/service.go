package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"rogue-engine/internal/domain"
	"rogue-engine/internal/infrastructure/storage"
	"rogue-engine/internal/network"
	"rogue-engine/pkg/api"
	"rogue-engine/pkg/logger"
	"rogue-engine/pkg/utils"

	"github.com/sirupsen/logrus"
)

// ErrGameOver - сохранять нечего, игрок погиб
var ErrGameOver = errors.New("game is over")

// GameService владеет всеми партиями. Каждая сессия (токен) - отдельная партия
// со своим подземельем; все команды исполняет одна горутина.
type GameService struct {
	mu       sync.RWMutex
	sessions map[string]*Game

	CommandChan chan domain.InternalCommand
	Hub         *network.Broadcaster

	store      storage.Store
	opts       Options
	seed       int64
	slotPrefix string
}

// NewService - seed == 0 значит сид каждой партии берется от времени
func NewService(opts Options, store storage.Store, seed int64, slotPrefix string) *GameService {
	return &GameService{
		sessions:    make(map[string]*Game),
		CommandChan: make(chan domain.InternalCommand, 100),
		Hub:         network.NewBroadcaster(),
		store:       store,
		opts:        opts,
		seed:        seed,
		slotPrefix:  slotPrefix,
	}
}

// Start запускает игровой цикл. Цикл завершается вместе с ctx.
func (s *GameService) Start(ctx context.Context) {
	go s.RunGameLoop(ctx)
}

// ProcessCommand принимает команду от внешнего мира (WebSocket).
// Токен уже проверен клиентом при LOGIN.
func (s *GameService) ProcessCommand(token string, externalCmd api.ClientCommand) error {
	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		return fmt.Errorf("%w: %s", ErrUnknownAction, externalCmd.Action)
	}

	s.CommandChan <- domain.InternalCommand{
		Action:  actionType,
		Token:   token,
		Payload: externalCmd.Payload,
	}
	return nil
}

// --- GAME LOOP ---

func (s *GameService) RunGameLoop(ctx context.Context) {
	loopLogger := logger.For("game_loop")
	loopLogger.Info("Game loop started.")

	for {
		select {
		case <-ctx.Done():
			loopLogger.Info("Game loop stopped.")
			return
		case cmd := <-s.CommandChan:
			s.executeCommand(ctx, cmd)
		}
	}
}

// executeCommand выполняет команду в партии отправителя и рассылает ему новое состояние
func (s *GameService) executeCommand(ctx context.Context, cmd domain.InternalCommand) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmdLogger := logger.Log.WithFields(logrus.Fields{
		"component": "game_loop",
		"token":     cmd.Token,
		"action":    cmd.Action.String(),
	})

	g, err := s.session(ctx, cmd.Token)
	if err != nil {
		cmdLogger.WithError(err).Error("Failed to start game.")
		s.sendError(cmd.Token, err)
		return
	}

	wasOver := g.IsOver()

	switch cmd.Action {
	case domain.ActionInit:
		// просто перешлем состояние
	case domain.ActionSave:
		err = s.saveGame(ctx, cmd.Token, g)
	default:
		err = g.Handle(cmd)
	}

	if err != nil {
		cmdLogger.WithError(err).Warn("Command rejected.")
		s.sendError(cmd.Token, err)
		return
	}

	// Смерть стирает сохранение
	if g.IsOver() && !wasOver {
		cmdLogger.WithField("floor", g.Floor).Info("Player died.")
		if err := s.store.Delete(ctx, s.slot(cmd.Token)); err != nil && !errors.Is(err, storage.ErrNotFound) {
			cmdLogger.WithError(err).Warn("Failed to delete save of dead player.")
		}
	}

	s.publishUpdate(cmd.Token, g)
}

// session находит партию по токену; если ее нет - загружает из слота или начинает новую.
// Вызывается под s.mu.
func (s *GameService) session(ctx context.Context, token string) (*Game, error) {
	if g, ok := s.sessions[token]; ok {
		return g, nil
	}

	sessLogger := logger.Log.WithFields(logrus.Fields{"component": "sessions", "token": token})
	rng := rand.New(rand.NewSource(s.seedFor(token)))

	snap, err := s.store.Load(ctx, s.slot(token))
	switch {
	case err == nil:
		g, rerr := Restore(snap, s.opts, rng)
		if rerr == nil {
			s.sessions[token] = g
			sessLogger.WithField("floor", g.Floor).Info("Session restored from save.")
			return g, nil
		}
		sessLogger.WithError(rerr).Warn("Save could not be restored, starting a new game.")
	case errors.Is(err, storage.ErrNotFound):
		// новый игрок
	default:
		sessLogger.WithError(err).Warn("Save could not be loaded, starting a new game.")
	}

	g, err := NewGame(s.opts, rng)
	if err != nil {
		return nil, err
	}
	s.sessions[token] = g
	sessLogger.Info("New game started.")
	return g, nil
}

func (s *GameService) saveGame(ctx context.Context, token string, g *Game) error {
	if g.IsOver() {
		return ErrGameOver
	}
	return s.store.Save(ctx, s.slot(token), g.Snapshot())
}

// SaveAll сохраняет все живые партии. Вызывается при остановке сервера.
func (s *GameService) SaveAll(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var errs []error
	for token, g := range s.sessions {
		if g.IsOver() {
			continue
		}
		if err := s.saveGame(ctx, token, g); err != nil {
			errs = append(errs, fmt.Errorf("save %s: %w", token, err))
		}
	}
	return errors.Join(errs...)
}

func (s *GameService) slot(token string) string {
	return s.slotPrefix + "_" + token
}

// seedFor: при заданном мастер-сиде партия токена воспроизводима
func (s *GameService) seedFor(token string) int64 {
	if s.seed == 0 {
		return time.Now().UnixNano()
	}
	return s.seed ^ utils.StringToSeed(token)
}

func (s *GameService) publishUpdate(token string, g *Game) {
	state := g.BuildState()
	state.Token = token
	s.Hub.SendTo(token, *state)
}

func (s *GameService) sendError(token string, err error) {
	s.Hub.SendTo(token, api.ServerResponse{Type: "ERROR", Token: token, Error: err.Error()})
}

// --- DEBUG ---

// SessionInfo - краткая сводка партии для /debug/sessions
type SessionInfo struct {
	Token    string `json:"token"`
	Floor    int    `json:"floor"`
	Turn     int    `json:"turn"`
	Mode     string `json:"mode"`
	HP       int    `json:"hp"`
	MaxHP    int    `json:"maxHp"`
	Monsters int    `json:"monsters"`
	Online   bool   `json:"online"`
}

func (s *GameService) Sessions() []SessionInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]SessionInfo, 0, len(s.sessions))
	for token, g := range s.sessions {
		out = append(out, SessionInfo{
			Token:    token,
			Floor:    g.Floor,
			Turn:     g.Turn,
			Mode:     string(g.Mode),
			HP:       g.Player.Fighter.HP(),
			MaxHP:    g.Player.Fighter.MaxHP,
			Monsters: len(g.LivingMonsters()),
			Online:   s.Hub.HasSubscriber(token),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Token < out[j].Token })
	return out
}

// State - то же, что получает клиент, но по запросу
func (s *GameService) State(token string) (*api.ServerResponse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	state := g.BuildState()
	state.Token = token
	return state, true
}
