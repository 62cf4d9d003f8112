package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bastion/internal/domain/service"
	mockUc "bastion/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestEmailHandler(t *testing.T) (*EmailHandler, *mockUc.MockEmailUsecase) {
	t.Helper()

	emailUc := mockUc.NewMockEmailUsecase(t)
	h := NewEmailHandler(EmailHandlerParams{
		EmailUc: emailUc,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, emailUc
}

func pushRequest(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func encodePushBody(t *testing.T, job service.VerifyEmailJob) string {
	t.Helper()

	data, err := json.Marshal(job)
	require.NoError(t, err)

	payload := map[string]any{
		"message": map[string]any{
			"data":      base64.StdEncoding.EncodeToString(data),
			"messageId": "msg-1",
		},
		"subscription": "projects/test/subscriptions/email-verify",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	return string(body)
}

func TestEmailHandler_HandleJob(t *testing.T) {
	h, emailUc := createTestEmailHandler(t)
	ctx := context.Background()
	job := service.VerifyEmailJob{UserID: uuid.New()}

	emailUc.EXPECT().SendVerificationMail(ctx, job).Return(nil)

	err := h.HandleJob(ctx, job)

	require.NoError(t, err)
}

func TestEmailHandler_HandlePush_Success(t *testing.T) {
	h, emailUc := createTestEmailHandler(t)
	job := service.VerifyEmailJob{UserID: uuid.New(), RequestID: "req-1"}

	c, rec := pushRequest(t, encodePushBody(t, job))

	emailUc.EXPECT().
		SendVerificationMail(c.Request().Context(), job).
		Return(nil)

	err := h.HandlePush(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEmailHandler_HandlePush_ProcessingFailureTriggersRetry(t *testing.T) {
	h, emailUc := createTestEmailHandler(t)
	job := service.VerifyEmailJob{UserID: uuid.New()}

	c, rec := pushRequest(t, encodePushBody(t, job))

	emailUc.EXPECT().
		SendVerificationMail(c.Request().Context(), job).
		Return(assert.AnError)

	err := h.HandlePush(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestEmailHandler_HandlePush_MalformedDataIsAcked(t *testing.T) {
	h, _ := createTestEmailHandler(t)

	payload := `{"message":{"data":"not-base64!!","messageId":"msg-1"},"subscription":"s"}`
	c, rec := pushRequest(t, payload)

	err := h.HandlePush(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEmailHandler_HandlePush_InvalidJobJSONIsAcked(t *testing.T) {
	h, _ := createTestEmailHandler(t)

	data := base64.StdEncoding.EncodeToString([]byte("not json"))
	payload := `{"message":{"data":"` + data + `","messageId":"msg-1"},"subscription":"s"}`
	c, rec := pushRequest(t, payload)

	err := h.HandlePush(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
