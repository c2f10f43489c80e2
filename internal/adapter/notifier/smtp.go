package notifier

import (
	"context"
	"fmt"

	"wallet-ledger/config"

	"github.com/rs/zerolog"
	"github.com/wneessen/go-mail"
)

// SMTPNotifier implements ports.TokenNotifier over SMTP. Delivery is best
// effort; callers decide whether a failed send matters.
type SMTPNotifier struct {
	cfg config.SMTPConfig
	log zerolog.Logger
}

// NewSMTPNotifier creates a new SMTP-backed token notifier.
func NewSMTPNotifier(cfg config.SMTPConfig, log zerolog.Logger) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, log: log}
}

// DeliverToken sends the confirmation token for a payment session to the
// client's email address.
func (n *SMTPNotifier) DeliverToken(ctx context.Context, emailAddress, sessionID, token6 string) error {
	msg, err := n.buildMessage(emailAddress, sessionID, token6)
	if err != nil {
		return fmt.Errorf("build token message: %w", err)
	}

	opts := []mail.Option{
		mail.WithPort(n.cfg.Port),
		mail.WithTimeout(n.cfg.Timeout),
	}
	if n.cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(n.cfg.User),
			mail.WithPassword(n.cfg.Password),
		)
	} else {
		// Local dev relays (MailHog and friends) speak plain SMTP.
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	client, err := mail.NewClient(n.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send token email: %w", err)
	}

	n.log.Debug().
		Str("session_id", sessionID).
		Msg("Confirmation token delivered")
	return nil
}

func (n *SMTPNotifier) buildMessage(emailAddress, sessionID, token6 string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(n.cfg.From); err != nil {
		return nil, err
	}
	if err := msg.To(emailAddress); err != nil {
		return nil, err
	}
	msg.Subject("Your payment confirmation code")
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"Your confirmation code is %s.\n\nSession: %s\n\nIf you did not initiate this payment, ignore this message.\n",
		token6, sessionID,
	))
	return msg, nil
}
