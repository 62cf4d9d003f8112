// Package mail implements transactional email delivery over SMTP.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"

	"bastion/config"
	"bastion/internal/domain/service"

	"github.com/pkg/errors"
)

const verifyMailSubject = "Verify your email address"

// verifyMailTemplate renders the verification email body.
var verifyMailTemplate = template.Must(template.New("verify").Parse(`<html>
<body>
  <p>Hi {{.Username}},</p>
  <p>Welcome! Please confirm your email address by clicking the link below:</p>
  <p><a href="{{.VerifyURL}}">Verify email</a></p>
  <p>If you did not create this account, you can ignore this message.</p>
</body>
</html>
`))

// smtpMailer is the SMTP implementation of the Mailer interface.
type smtpMailer struct {
	addr string
	auth smtp.Auth
	from string
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config) (service.Mailer, error) {
	mailCfg := cfg.Mail
	if mailCfg == nil {
		return nil, errors.New("mail config must be provided")
	}
	if mailCfg.Host == "" || mailCfg.From == "" {
		return nil, errors.New("mail host and from address must be provided")
	}

	var auth smtp.Auth
	if mailCfg.Username != "" {
		auth = smtp.PlainAuth("", mailCfg.Username, mailCfg.Password, mailCfg.Host)
	}

	return &smtpMailer{
		addr: fmt.Sprintf("%s:%d", mailCfg.Host, mailCfg.Port),
		auth: auth,
		from: mailCfg.From,
	}, nil
}

// SendVerificationMail renders and sends one verification email.
func (m *smtpMailer) SendVerificationMail(ctx context.Context, mail service.VerificationMail) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "context cancelled before send")
	}

	body, err := renderVerifyMail(mail)
	if err != nil {
		return err
	}

	msg := buildMessage(m.from, mail.To, verifyMailSubject, body)
	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{mail.To}, msg); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	return nil
}

func renderVerifyMail(mail service.VerificationMail) (string, error) {
	var buf bytes.Buffer
	if err := verifyMailTemplate.Execute(&buf, mail); err != nil {
		return "", errors.Wrap(err, "failed to render mail template")
	}

	return buf.String(), nil
}

func buildMessage(from, to, subject, htmlBody string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(htmlBody)

	return buf.Bytes()
}
