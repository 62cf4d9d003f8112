package handler

import (
	"log/slog"
	"net/http"

	"bastion/internal/delivery/http/middleware"
	domainerrors "bastion/internal/domain/errors"
	"bastion/internal/infra/ws"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WSHandler upgrades authenticated requests to WebSocket connections and
// registers them with the notification hub.
type WSHandler struct {
	hub    *ws.Hub
	logger *slog.Logger

	upgrader websocket.Upgrader
}

// NewWSHandler is the constructor for WSHandler, injected by Fx.
func NewWSHandler(hub *ws.Hub, logger *slog.Logger) *WSHandler {
	return &WSHandler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin enforcement is handled by the CORS layer.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Connect upgrades the request and keeps the socket open until the
// client disconnects. Runs behind Authenticate.
func (h *WSHandler) Connect(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Wrap(err, "failed to upgrade connection")
	}
	defer conn.Close()

	remove := h.hub.Add(userID, conn)
	defer remove()

	h.logger.Debug("WebSocket connected", slog.String("user_id", userID.String()))

	// Drain client frames until the connection closes. Pushes go through
	// the hub, so inbound payloads are discarded.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.logger.Debug("WebSocket disconnected", slog.String("user_id", userID.String()))

	return nil
}
