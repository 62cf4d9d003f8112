package service

import "context"

// VerificationMail carries everything needed to render and send one
// email verification message.
type VerificationMail struct {
	To       string
	Username string
	// VerifyURL is the frontend link containing the verification token.
	VerifyURL string
}

// Mailer sends transactional email. Implemented over SMTP; the worker
// is the only caller.
type Mailer interface {
	SendVerificationMail(ctx context.Context, mail VerificationMail) error
}
