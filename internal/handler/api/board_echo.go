package api

import (
	"net/http"
	"time"

	"TickerBoard/internal/domain/models"
	"TickerBoard/internal/usecase"
	xhttp "TickerBoard/pkg/http"
	"TickerBoard/pkg/http/middleware"
	xlogger "TickerBoard/pkg/logger"
	"TickerBoard/pkg/ratelimit"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// BoardEchoHandler exposes the board over REST and a websocket stream.
type BoardEchoHandler struct {
	logger  *xlogger.Logger
	board   *usecase.Board
	limiter *ratelimit.Limiter

	upgrader     websocket.Upgrader
	pingInterval time.Duration
	writeTimeout time.Duration
}

// StreamOption tunes the websocket stream.
type StreamOption func(*BoardEchoHandler)

// WithStreamTimings sets the ping interval and per-write deadline.
func WithStreamTimings(ping, write time.Duration) StreamOption {
	return func(h *BoardEchoHandler) {
		if ping > 0 {
			h.pingInterval = ping
		}
		if write > 0 {
			h.writeTimeout = write
		}
	}
}

func NewBoardEchoHandler(logger *xlogger.Logger, board *usecase.Board, limiter *ratelimit.Limiter, opts ...StreamOption) *BoardEchoHandler {
	h := &BoardEchoHandler{
		logger:       logger,
		board:        board,
		limiter:      limiter,
		pingInterval: 30 * time.Second,
		writeTimeout: 5 * time.Second,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *BoardEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/board", h.Board)
	g.GET("/board/stream", h.Stream)

	var mutate []echo.MiddlewareFunc
	if h.limiter != nil {
		mutate = append(mutate, middleware.RateLimit(h.limiter))
	}
	g.POST("/tickers", h.AddTicker, mutate...)
	g.DELETE("/tickers/:symbol", h.RemoveTicker, mutate...)
	g.POST("/sort", h.SetSort, mutate...)
}

func (h *BoardEchoHandler) view() models.BoardView {
	return models.NewBoardView(h.board.View())
}

func (h *BoardEchoHandler) Board(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return xhttp.SuccessResponse(c, h.view())
}

func (h *BoardEchoHandler) AddTicker(c echo.Context) error {
	req := &models.AddTickerRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	t, added := h.board.Add(req.Symbol)
	return xhttp.SuccessResponse(c, models.AddTickerResponse{
		Added:  added,
		Ticker: t.String(),
		Board:  h.view(),
	})
}

func (h *BoardEchoHandler) RemoveTicker(c echo.Context) error {
	removed := false
	if t, ok := models.ParseTicker(c.Param("symbol")); ok {
		removed = h.board.Remove(t)
	}
	return xhttp.SuccessResponse(c, models.RemoveTickerResponse{
		Removed: removed,
		Board:   h.view(),
	})
}

func (h *BoardEchoHandler) SetSort(c echo.Context) error {
	req := &models.SortRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	spec := h.board.SetSort(models.SortField(req.Field))
	h.logger.Debug("sort changed", xlogger.String("field", string(spec.Field)), xlogger.String("direction", string(spec.Direction)))
	return xhttp.SuccessResponse(c, h.view())
}
