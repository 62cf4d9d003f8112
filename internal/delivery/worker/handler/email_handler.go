// Package handler contains the worker's job handlers.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"

	"bastion/internal/domain/service"
	"bastion/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// EmailHandler processes verification email jobs, either pulled from the
// Redis queue or pushed by a Pub/Sub subscription.
type EmailHandler struct {
	emailUc usecase.EmailUsecase
	logger  *slog.Logger
}

// EmailHandlerParams holds dependencies for the EmailHandler
type EmailHandlerParams struct {
	fx.In

	EmailUc usecase.EmailUsecase
	Logger  *slog.Logger
}

// NewEmailHandler creates a new email job handler
func NewEmailHandler(params EmailHandlerParams) *EmailHandler {
	return &EmailHandler{
		emailUc: params.EmailUc,
		logger:  params.Logger,
	}
}

// HandleJob sends the verification mail for one dequeued job.
func (h *EmailHandler) HandleJob(ctx context.Context, job service.VerifyEmailJob) error {
	return h.emailUc.SendVerificationMail(ctx, job)
}

// HandlePush handles incoming Pub/Sub push messages.
func (h *EmailHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	var msg PubSubMessage
	if err := c.Bind(&msg); err != nil {
		h.logger.Warn("[Worker] Invalid push payload", slog.Any("error", err))

		// Acknowledge malformed messages so Pub/Sub stops redelivering them.
		return c.NoContent(http.StatusOK)
	}

	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		h.logger.Warn("[Worker] Failed to decode push data", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	var job service.VerifyEmailJob
	if err := json.Unmarshal(data, &job); err != nil {
		h.logger.Warn("[Worker] Failed to unmarshal email job", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	if err := h.emailUc.SendVerificationMail(ctx, job); err != nil {
		h.logger.Error("[Worker] Failed to process email job",
			slog.String("user_id", job.UserID.String()),
			slog.Any("error", err),
		)

		// Non-2xx triggers a Pub/Sub retry.
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}
