package server

import (
	"encoding/json"
	"net/http"
	"time"

	"crawl-server/internal/domain"
	"crawl-server/internal/engine"
	"crawl-server/pkg/api"
	"crawl-server/pkg/logger"
	"crawl-server/pkg/utils"

	"github.com/sirupsen/logrus"

	"github.com/gorilla/websocket"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между WebSocket и сессией. Подключение владеет
// партией целиком: команды сериализует читающая горутина, делить
// сессию между соединениями не нужно.
type Client struct {
	Server  *Server
	Conn    *websocket.Conn
	Send    chan api.ServerResponse
	Session *engine.Session
}

func NewClient(srv *Server, conn *websocket.Conn) *Client {
	return &Client{
		Server: srv,
		Conn:   conn,
		Send:   make(chan api.ServerResponse, 64),
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		close(c.Send)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection")
		}
		if c.Session == nil {
			return
		}
		c.Server.Registry.Unregister(c.Session.ID)

		// Партия умирает вместе с подключением, остается только повтор.
		if len(c.Session.Replay.Actions) > 0 {
			path, err := c.Server.Replays.Save(c.Session.Replay)
			if err != nil {
				logger.Log.WithError(err).Warn("failed to save replay")
			} else {
				logger.Log.WithFields(logrus.Fields{
					"session_id": c.Session.ID,
					"path":       path,
				}).Info("Replay saved")
			}
		}
		logger.Log.WithField("session_id", c.Session.ID).Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// 1. HANDSHAKE: первой командой клиент обязан прислать INIT
	var initCmd api.ClientCommand
	if err := c.Conn.ReadJSON(&initCmd); err != nil {
		logger.Log.Warn("Handshake failed")
		return
	}
	if domain.ParseAction(initCmd.Action) != domain.ActionInit {
		logger.Log.WithField("action", initCmd.Action).Warn("First command is not INIT")
		return
	}

	var initPayload api.InitPayload
	if len(initCmd.Payload) > 0 {
		_ = json.Unmarshal(initCmd.Payload, &initPayload)
	}

	// 2. СОЗДАНИЕ ПАРТИИ
	seed := c.Server.Config.Seed
	if seed == 0 {
		if initPayload.Name != "" {
			// Зерно от имени: тот же герой получает то же подземелье.
			seed = utils.StringToSeed(initPayload.Name)
		} else {
			seed = utils.NewSeed()
		}
	}

	session, err := engine.NewSession(seed, c.Server.GenCfg, initPayload.Name)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to create session")
		return
	}
	c.Session = session
	c.Server.Registry.Register(session)

	logger.Log.WithFields(logrus.Fields{
		"session_id": session.ID,
		"player":     session.Game.Player.Name,
		"seed":       seed,
	}).Info("Client logged in")

	// Первый ответ — снимок входа в подземелье
	c.Send <- session.ProcessCommand(initCmd)

	// 3. ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		var cmd api.ClientCommand
		err := c.Conn.ReadJSON(&cmd)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Errorf("WS Error: %v", err)
			}
			break
		}
		c.Send <- session.ProcessCommand(cmd)
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
