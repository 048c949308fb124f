package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
)

// SMTPServiceImpl implements domain.MailSender against an external
// mail relay. The relay is the one collaborator most exposed to
// network variability, so dialing and the server greeting are bounded
// by explicit timeouts.
type SMTPServiceImpl struct {
	host            string
	port            int
	username        string
	password        string
	from            string
	dialTimeout     time.Duration
	greetingTimeout time.Duration
}

// NewSMTPService creates a new SMTP mail sender.
func NewSMTPService(host string, port int, username, password, from string, dialTimeout, greetingTimeout time.Duration) domain.MailSender {
	return &SMTPServiceImpl{
		host:            host,
		port:            port,
		username:        username,
		password:        password,
		from:            from,
		dialTimeout:     dialTimeout,
		greetingTimeout: greetingTimeout,
	}
}

// Send implements domain.MailSender
func (s *SMTPServiceImpl) Send(ctx context.Context, to, subject, body string) error {
	// Without a configured relay, log instead of sending.
	if s.host == "" {
		fmt.Printf("[MOCK EMAIL] To: %s, Subject: %s, Body: %s\n", to, subject, body)
		return nil
	}

	opts := []mail.Option{
		mail.WithPort(s.port),
		mail.WithTimeout(s.dialTimeout),
	}
	if s.username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.username),
			mail.WithPassword(s.password),
		)
	}

	client, err := mail.NewClient(s.host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("smtp from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("smtp to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	// The greeting timeout bounds the whole dial-and-greet exchange.
	sendCtx, cancel := context.WithTimeout(ctx, s.dialTimeout+s.greetingTimeout)
	defer cancel()

	if err := client.DialAndSendWithContext(sendCtx, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}
