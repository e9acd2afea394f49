package service

import (
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"github.com/forgestack/atlas-backend/internal/config"
)

// Mailer sends the verification and reset links. When SMTP is not
// configured the link is logged instead, which keeps the flows usable in
// development.
type Mailer struct {
	cfg    config.MailConfig
	logger *zap.Logger
}

func NewMailer(cfg config.MailConfig, logger *zap.Logger) *Mailer {
	return &Mailer{cfg: cfg, logger: logger}
}

func (m *Mailer) SendVerification(to, token string) {
	link := fmt.Sprintf("%s/verify-email?token=%s", m.cfg.SiteURL, token)
	m.send(to, "Verify your email", "Follow this link to verify your account: "+link)
}

func (m *Mailer) SendPasswordReset(to, token string) {
	link := fmt.Sprintf("%s/reset-password?token=%s", m.cfg.SiteURL, token)
	m.send(to, "Reset your password", "Follow this link to reset your password (valid for 1 hour): "+link)
}

// send is fire-and-forget: a mail failure never fails the request that
// triggered it.
func (m *Mailer) send(to, subject, body string) {
	if m.cfg.Host == "" {
		m.logger.Info("smtp not configured, mail suppressed",
			zap.String("to", to), zap.String("subject", subject))
		return
	}

	go func() {
		msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
			m.cfg.From, to, subject, body))
		addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
		auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
		if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, msg); err != nil {
			m.logger.Error("failed to send mail", zap.String("to", to), zap.Error(err))
		}
	}()
}
