package api

import (
	"time"

	xlogger "TickerBoard/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const streamReadLimit = 512

// Stream upgrades to a websocket and pushes the board view on connect and
// after every change. Client messages are ignored apart from control frames.
func (h *BoardEchoHandler) Stream(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already replied to the client.
		h.logger.Debug("websocket upgrade failed", xlogger.Error(err))
		return nil
	}
	defer conn.Close()

	updates, unsubscribe := h.board.Subscribe()
	defer unsubscribe()

	closed := make(chan struct{})
	go h.readLoop(conn, closed)

	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	h.logger.Debug("stream connected", xlogger.String("remote", c.RealIP()))
	if err := h.push(conn); err != nil {
		return nil
	}
	for {
		select {
		case <-closed:
			return nil
		case _, ok := <-updates:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "board closed"),
					time.Now().Add(h.writeTimeout))
				return nil
			}
			if err := h.push(conn); err != nil {
				return nil
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(h.writeTimeout)); err != nil {
				return nil
			}
		}
	}
}

func (h *BoardEchoHandler) push(conn *websocket.Conn) error {
	_ = conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
	if err := conn.WriteJSON(h.view()); err != nil {
		h.logger.Debug("stream write failed", xlogger.Error(err))
		return err
	}
	return nil
}

// readLoop drains the connection so pongs and close frames are processed.
func (h *BoardEchoHandler) readLoop(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)

	wait := 2 * h.pingInterval
	conn.SetReadLimit(streamReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(wait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
