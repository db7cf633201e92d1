package server

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"rogue-engine/internal/engine"
	"rogue-engine/pkg/api"
	"rogue-engine/pkg/logger"
	"rogue-engine/pkg/utils"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
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

// Токен идет в имя слота сохранения, поэтому набор символов ограничен
var tokenPattern = regexp.MustCompile(`^[A-Za-z0-9-]{1,48}$`)

// Client - посредник между Websocket и GameService
type Client struct {
	Game  *engine.GameService
	Conn  *websocket.Conn
	Send  chan api.ServerResponse
	Token string

	updates chan api.ServerResponse
	done    chan struct{} // закрывается, когда writePump вышел
}

func NewClient(game *engine.GameService, conn *websocket.Conn) *Client {
	return &Client{
		Game: game,
		Conn: conn,
		Send: make(chan api.ServerResponse, 256),
		done: make(chan struct{}),
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		if c.updates != nil {
			c.Game.Hub.Unregister(c.Token, c.updates)
			// Автосохранение при уходе игрока
			if err := c.Game.ProcessCommand(c.Token, api.ClientCommand{Action: "SAVE"}); err != nil {
				logger.Log.WithError(err).Warn("failed to queue autosave")
			}
			logger.Log.WithField("token", c.Token).Info("Client disconnected")
		} else {
			close(c.Send)
		}
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection")
		}
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

	// 1. HANDSHAKE (LOGIN)
	var loginCmd api.ClientCommand
	if err := c.Conn.ReadJSON(&loginCmd); err != nil {
		logger.Log.WithError(err).Warn("Handshake failed")
		return
	}
	if !strings.EqualFold(loginCmd.Action, "LOGIN") {
		logger.Log.WithField("action", loginCmd.Action).Warn("Handshake failed: expected LOGIN")
		return
	}

	// 2. ТОКЕН СЕССИИ: пустой - новая игра
	c.Token = loginCmd.Token
	if c.Token == "" {
		c.Token = utils.NewToken()
	}
	if !tokenPattern.MatchString(c.Token) {
		logger.Log.WithField("token", c.Token).Warn("Handshake failed: bad token")
		return
	}

	// 3. ПОДПИСКА НА ОБНОВЛЕНИЯ
	c.updates = c.Game.Hub.Register(c.Token)

	logger.Log.WithFields(logrus.Fields{
		"token":  c.Token,
		"remote": c.Conn.RemoteAddr().String(),
		"online": c.Game.Hub.SubscriberCount(),
	}).Info("Client logged in")

	// Запускаем пересылку обновлений из Hub в writePump
	go c.forward(c.updates)

	// Отправляем INIT: движок найдет, загрузит или создаст партию и пришлет состояние
	if err := c.Game.ProcessCommand(c.Token, api.ClientCommand{Action: "INIT"}); err != nil {
		logger.Log.WithError(err).Error("failed to queue INIT")
		return
	}

	// 4. ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		var cmd api.ClientCommand
		err := c.Conn.ReadJSON(&cmd)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Errorf("WS Error: %v", err)
			}
			break
		}
		if err := c.Game.ProcessCommand(c.Token, cmd); err != nil {
			c.Game.Hub.SendTo(c.Token, api.ServerResponse{Type: "ERROR", Token: c.Token, Error: err.Error()})
		}
	}
}

// forward перекладывает обновления из Hub в Send, пока Hub не закроет канал.
// Если писать уже некому, обновления выбрасываются.
func (c *Client) forward(updates chan api.ServerResponse) {
	defer close(c.Send)
	for msg := range updates {
		select {
		case c.Send <- msg:
		case <-c.done:
			logger.Log.WithField("token", c.Token).Debug("Writer gone, update dropped.")
		}
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		close(c.done)
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
