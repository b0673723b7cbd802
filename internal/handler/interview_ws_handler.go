package handler

import (
	"context"

	"ai-interview-be/internal/constant"
	"ai-interview-be/internal/pkg/logger"
	"ai-interview-be/internal/relay"
	internalWS "ai-interview-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type InterviewHandler struct {
	factory *relay.Factory
	logger  logger.ILogger
}

func NewInterviewHandler(factory *relay.Factory, log logger.ILogger) *InterviewHandler {
	return &InterviewHandler{
		factory: factory,
		logger:  log,
	}
}

func (h *InterviewHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/ws/interview/:id", h.ServeWs)
}

// ServeWs upgrades the request and runs one live interview until either side
// ends it. An unknown id is reported over the socket, matching how every
// other session failure reaches the browser.
func (h *InterviewHandler) ServeWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	rawID := c.Params("id")
	return websocket.New(func(conn *websocket.Conn) {
		client := internalWS.NewClient(conn, h.logger)

		sessionID, err := uuid.Parse(rawID)
		if err != nil {
			client.SendJSON(relay.ErrorEvent{Type: relay.EventError, Message: constant.ErrSessionNotFound})
			client.Close()
			return
		}

		h.logger.Info("InterviewHandler", "Starting interview session", map[string]interface{}{"session_id": sessionID.String()})
		h.factory.NewRelay(sessionID, client).Run(context.Background())
		h.logger.Info("InterviewHandler", "Interview session ended", map[string]interface{}{"session_id": sessionID.String()})
	})(c)
}
