package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/saboracademico/backend/internal/config"
	"github.com/saboracademico/backend/internal/domain"
)

const dialTimeout = 30 * time.Second

// Mailer sends HTML mail over SMTP with implicit TLS, the way Gmail's
// port 465 expects. One Mailer is shared by all requests; net/smtp opens a
// fresh connection per send, so no locking is needed.
type Mailer struct {
	addr string
	host string
	auth smtp.Auth
	from string

	logger *zap.Logger
}

func New(cfg config.MailConfig, logger *zap.Logger) *Mailer {
	var auth smtp.Auth
	if cfg.User != "" || cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Host)
	}

	return &Mailer{
		addr:   cfg.SMTPAddr(),
		host:   cfg.Host,
		auth:   auth,
		from:   cfg.From(),
		logger: logger,
	}
}

// Send delivers one HTML message to one recipient. The recipient address is
// not validated locally; the server rejects malformed ones during RCPT TO.
func (m *Mailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg := buildMessage(m.from, to, subject, htmlBody)

	start := time.Now()
	log := m.logger.With(
		zap.String("smtp_addr", m.addr),
		zap.String("to", to),
		zap.String("subject", subject),
	)

	dialer := net.Dialer{Timeout: dialTimeout}
	conn, err := tls.DialWithDialer(&dialer, "tcp", m.addr, &tls.Config{ServerName: m.host})
	if err != nil {
		log.Error("tls dial failed", zap.Error(err))
		return fmt.Errorf("dial %s: %w", m.addr, err)
	}

	c, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		log.Error("smtp client failed", zap.Error(err))
		return err
	}
	defer func() { _ = c.Close() }()

	if m.auth != nil {
		if ok, _ := c.Extension("AUTH"); ok {
			if err := c.Auth(m.auth); err != nil {
				log.Error("smtp auth failed", zap.Error(err))
				return err
			}
		}
	}

	if err := c.Mail(envelopeAddress(m.from)); err != nil {
		log.Error("smtp MAIL FROM failed", zap.Error(err))
		return err
	}
	if err := c.Rcpt(to); err != nil {
		log.Error("smtp RCPT TO failed", zap.Error(err))
		return err
	}

	w, err := c.Data()
	if err != nil {
		log.Error("smtp DATA failed", zap.Error(err))
		return err
	}
	if _, err := w.Write(msg); err != nil {
		log.Error("smtp write failed", zap.Error(err))
		return err
	}
	if err := w.Close(); err != nil {
		log.Error("smtp close failed", zap.Error(err))
		return err
	}

	log.Info("email sent", zap.Duration("elapsed", time.Since(start)))
	return c.Quit()
}

// buildMessage assembles the RFC 5322 message with an HTML body.
func buildMessage(from, to, subject, htmlBody string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	b.WriteString("\r\n")
	return []byte(b.String())
}

// envelopeAddress strips a name-addr sender down to the bare address the
// SMTP envelope wants.
func envelopeAddress(from string) string {
	if i := strings.Index(from, "<"); i >= 0 {
		if j := strings.Index(from[i:], ">"); j > 0 {
			return from[i+1 : i+j]
		}
	}
	return from
}

var _ domain.MailSender = (*Mailer)(nil)
