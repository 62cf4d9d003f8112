package mail

import (
	"testing"

	"bastion/config"
	"bastion/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderVerifyMail(t *testing.T) {
	body, err := renderVerifyMail(service.VerificationMail{
		Username:  "alice",
		VerifyURL: "https://app.example.com/auth/verify-email?token=abc",
	})

	require.NoError(t, err)
	assert.Contains(t, body, "Hi alice,")
	assert.Contains(t, body, `href="https://app.example.com/auth/verify-email?token=abc"`)
}

func TestRenderVerifyMail_EscapesUsername(t *testing.T) {
	body, err := renderVerifyMail(service.VerificationMail{
		Username:  "<script>alert(1)</script>",
		VerifyURL: "https://app.example.com/verify",
	})

	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("noreply@example.com", "alice@example.com", "Verify your email address", "<p>hello</p>"))

	assert.Contains(t, msg, "From: noreply@example.com\r\n")
	assert.Contains(t, msg, "To: alice@example.com\r\n")
	assert.Contains(t, msg, "Subject: Verify your email address\r\n")
	assert.Contains(t, msg, "Content-Type: text/html; charset=\"UTF-8\"\r\n")
	assert.Contains(t, msg, "\r\n\r\n<p>hello</p>")
}

func TestNewSMTPMailer_RequiresConfig(t *testing.T) {
	_, err := NewSMTPMailer(&config.Config{})
	assert.Error(t, err)

	_, err = NewSMTPMailer(&config.Config{Mail: &config.MailConfig{Host: "smtp.example.com"}})
	assert.Error(t, err)

	mailer, err := NewSMTPMailer(&config.Config{Mail: &config.MailConfig{
		Host: "smtp.example.com",
		Port: 587,
		From: "noreply@example.com",
	}})
	require.NoError(t, err)
	assert.NotNil(t, mailer)
}
