package utility

import (
	"fmt"

	"atelier_commerce/config"

	"gopkg.in/gomail.v2"
)

// Mailer gửi email qua SMTP theo cấu hình server
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewMailer tạo mailer từ cấu hình server.
// Trả về lỗi nếu SMTP chưa được cấu hình.
func NewMailer(cfg *config.Configuration) (*Mailer, error) {
	if cfg.SMTPHost == "" || cfg.SMTPFrom == "" {
		return nil, fmt.Errorf("SMTP chưa được cấu hình (SMTP_HOST, SMTP_FROM)")
	}
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
	}, nil
}

// SendHTML gửi một email HTML đến người nhận
func (m *Mailer) SendHTML(recipient string, subject string, htmlContent string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlContent)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return dialer.DialAndSend(msg)
}
