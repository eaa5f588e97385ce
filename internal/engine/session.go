package engine

import (
	"fmt"
	"math/rand"
	"time"

	"crawl-server/internal/domain"
	"crawl-server/internal/engine/handlers"
	"crawl-server/internal/engine/handlers/actions"
	"crawl-server/internal/systems"
	"crawl-server/pkg/api"
	"crawl-server/pkg/dungeon"
	"crawl-server/pkg/logger"
	"crawl-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

// State - стадия партии. Определяет допустимые действия и момент конца игры.
type State int

const (
	StateExploring State = iota
	StateBlocked
	StateInCombat
	StateVictory
	StateDefeat
)

var stateNames = map[State]string{
	StateExploring: "EXPLORING",
	StateBlocked:   "BLOCKED",
	StateInCombat:  "COMBAT",
	StateVictory:   "VICTORY",
	StateDefeat:    "DEFEAT",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Over - закончена ли партия.
func (s State) Over() bool {
	return s == StateVictory || s == StateDefeat
}

// Session - одна партия одного игрока. Все случайности сессии идут
// через один rng от одного зерна: генерация, бой, идентификаторы.
//
// Сессия не потокобезопасна: команды одного клиента сериализует
// его читающая горутина.
type Session struct {
	ID   string
	Seed int64

	Game   *domain.Game
	Combat *systems.Resolver
	Rng    *rand.Rand
	Replay *domain.ReplaySession

	state    State
	handlers map[domain.ActionType]handlers.HandlerFunc
	logSeq   int

	// replaying отключает запись действий при воспроизведении повтора.
	replaying bool
}

// NewSession создает партию от зерна: генерирует подземелье,
// ставит героя на вход.
func NewSession(seed int64, genCfg dungeon.Config, playerName string) (*Session, error) {
	rng := rand.New(rand.NewSource(seed))

	d, err := dungeon.NewGenerator(rng).Generate(genCfg)
	if err != nil {
		return nil, fmt.Errorf("generate dungeon: %w", err)
	}

	s := &Session{
		ID:     utils.GenerateID(),
		Seed:   seed,
		Game:   domain.NewGame(domain.NewPlayer(playerName), d),
		Combat: systems.NewResolver(rng),
		Rng:    rng,
		Replay: &domain.ReplaySession{
			Seed:      seed,
			Timestamp: time.Now().Unix(),
		},
	}
	s.registerHandlers()

	logger.Log.WithFields(logrus.Fields{
		"component":  "session",
		"session_id": s.ID,
		"seed":       seed,
		"rooms":      d.RoomCount(),
	}).Info("Session created")

	return s, nil
}

func (s *Session) registerHandlers() {
	s.handlers = map[domain.ActionType]handlers.HandlerFunc{
		domain.ActionInit:   handlers.WithPayload(actions.Init),
		domain.ActionLook:   handlers.WithEmptyPayload(actions.Look),
		domain.ActionMove:   handlers.WithPayload(actions.Move),
		domain.ActionAttack: handlers.WithEmptyPayload(actions.Attack),
		domain.ActionFlee:   handlers.WithEmptyPayload(actions.Flee),
		domain.ActionPickup: handlers.WithEmptyPayload(actions.Pickup),
		domain.ActionUse:    handlers.WithPayload(actions.Use),
	}
}

// State - текущая стадия партии.
func (s *Session) State() State {
	return s.state
}

// ProcessCommand обрабатывает одну команду клиента и возвращает
// полный снимок видимого состояния.
func (s *Session) ProcessCommand(cmd api.ClientCommand) api.ServerResponse {
	if s.state.Over() {
		return s.respond(cmd.Action, handlers.Result{Messages: []handlers.Message{
			{Text: "Партия окончена. Начните новую игру.", Type: handlers.MsgError},
		}})
	}

	action := domain.ParseAction(cmd.Action)
	if action == domain.ActionUnknown {
		logger.Log.WithFields(logrus.Fields{
			"component":  "session",
			"session_id": s.ID,
			"action":     cmd.Action,
		}).Warn("Unknown action")

		return s.respond(cmd.Action, handlers.Result{Messages: []handlers.Message{
			{Text: "Неизвестная команда.", Type: handlers.MsgError},
		}})
	}

	handler, ok := s.handlers[action]
	if !ok {
		return s.respond(cmd.Action, handlers.Result{Messages: []handlers.Message{
			{Text: "Команда пока не поддерживается.", Type: handlers.MsgError},
		}})
	}

	ctx := &handlers.Context{Game: s.Game, Combat: s.Combat, Rng: s.Rng}
	res, err := handler(ctx, cmd.Payload)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component":  "session",
			"session_id": s.ID,
			"action":     action.String(),
			"error":      err,
		}).Warn("Action rejected")

		return s.respond(cmd.Action, handlers.Result{Messages: []handlers.Message{
			{Text: "Команда отклонена: неверные данные.", Type: handlers.MsgError},
		}})
	}

	if !s.replaying {
		s.Replay.Record(s.Game.Turn, action, cmd.Payload)
	}
	if res.TurnSpent {
		s.Game.IncrementTurn()
	}
	s.refreshState(&res)

	return s.respond(cmd.Action, res)
}

// refreshState пересчитывает стадию партии после действия.
// Порядок проверок важен: смерть сильнее победы, победа сильнее боя.
func (s *Session) refreshState(res *handlers.Result) {
	prev := s.state

	switch {
	case s.Game.Player.IsDead():
		s.state = StateDefeat
	case s.Game.AtExit():
		s.state = StateVictory
	case s.Game.InCombat:
		s.state = StateInCombat
	case s.Game.IsBlocked():
		s.state = StateBlocked
	default:
		s.state = StateExploring
	}

	if s.state == prev {
		return
	}

	switch s.state {
	case StateVictory:
		res.Add(fmt.Sprintf("Вы выбрались из подземелья! Счет: %d.", s.Game.Score), handlers.MsgInfo)
	case StateDefeat:
		res.Add("Подземелье поглотило еще одного героя.", handlers.MsgInfo)
	}

	logger.Log.WithFields(logrus.Fields{
		"component":  "session",
		"session_id": s.ID,
		"from":       prev.String(),
		"to":         s.state.String(),
		"turn":       s.Game.Turn,
	}).Info("Session state changed")
}

// respond собирает ответ клиенту из результата действия.
func (s *Session) respond(action string, res handlers.Result) api.ServerResponse {
	logs := make([]api.LogEntry, 0, len(res.Messages))
	now := time.Now().UnixMilli()
	for _, msg := range res.Messages {
		s.logSeq++
		logs = append(logs, api.LogEntry{
			ID:        fmt.Sprintf("log_%d", s.logSeq),
			Text:      msg.Text,
			Type:      msg.Type,
			Timestamp: now,
		})
	}

	respType := "UPDATE"
	if domain.ParseAction(action) == domain.ActionInit {
		respType = "INIT"
	}

	resp := BuildResponse(s.Game, s.state)
	resp.Type = respType
	resp.Logs = logs
	return resp
}

// Playback восстанавливает партию из ленты повтора: пересоздает
// сессию от того же зерна и прогоняет действия по порядку.
func Playback(replay *domain.ReplaySession, genCfg dungeon.Config) (*Session, error) {
	s, err := NewSession(replay.Seed, genCfg, "")
	if err != nil {
		return nil, fmt.Errorf("rebuild session: %w", err)
	}
	s.replaying = true
	defer func() { s.replaying = false }()

	for _, act := range replay.Actions {
		s.ProcessCommand(api.ClientCommand{
			Action:  act.Action.String(),
			Payload: act.Payload,
		})
		if s.state.Over() {
			break
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component":  "session",
		"session_id": s.ID,
		"actions":    len(replay.Actions),
		"final":      s.state.String(),
	}).Info("Replay finished")

	return s, nil
}
