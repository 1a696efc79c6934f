package email

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/creditbridge/credit-service/internal/config"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendScoreReport sends the user their freshly generated score report
func (s *Sender) SendScoreReport(to, name string, score int, riskProfile string, recommendations []string) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Your Updated CreditBridge Score"

	body := fmt.Sprintf(
		"Dear %s,\n\n", name,
	)
	body += fmt.Sprintf(
		"Your new CreditBridge score is %d (risk profile: %s).\n"+
			"Report generated: %s\n",
		score, riskProfile, time.Now().Format("2006-01-02 15:04:05"),
	)
	if len(recommendations) > 0 {
		body += "\nRecommendations:\n- " + strings.Join(recommendations, "\n- ") + "\n"
	}
	body += "\nBest regards,\nCreditBridge"
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	err := e.Send(addr, auth)
	if err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
