package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"
)

// Config holds SMTP transport settings. FrontendURL is the base for the
// reset link embedded in outgoing mail.
type Config struct {
	Host        string
	Port        int
	Username    string
	Password    string
	From        string
	FrontendURL string
}

// SMTPSender delivers transactional mail over SMTP.
type SMTPSender struct {
	client      *mail.Client
	from        string
	frontendURL string
}

// NewSMTPSender creates an SMTPSender. Credentials are optional; without
// them the connection is unauthenticated (local relays, mail catchers).
func NewSMTPSender(cfg Config) (*SMTPSender, error) {
	opts := []mail.Option{mail.WithPort(cfg.Port)}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating mail client: %w", err)
	}

	return &SMTPSender{
		client:      client,
		from:        cfg.From,
		frontendURL: cfg.FrontendURL,
	}, nil
}

// SendPasswordReset mails the reset link carrying the token.
func (s *SMTPSender) SendPasswordReset(ctx context.Context, to, token string) error {
	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("setting mail sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("setting mail recipient: %w", err)
	}
	msg.Subject("Your password reset token")
	msg.SetBodyString(mail.TypeTextHTML, resetBody(s.frontendURL, token))

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending reset mail: %w", err)
	}
	return nil
}

func resetBody(frontendURL, token string) string {
	link := fmt.Sprintf("%s/reset?resetToken=%s", strings.TrimRight(frontendURL, "/"), token)
	return fmt.Sprintf(`<div style="border:1px solid black;padding:20px;font-family:sans-serif;line-height:2;font-size:20px;">
  <h2>Hello there!</h2>
  <p>Your password reset token is here.</p>
  <p><a href=%q>Click here to reset your password</a></p>
  <p>The link is good for one hour.</p>
</div>`, link)
}
