package order

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"os"
	"strings"
)

// Sender delivers a formatted notification mail. Tests stub it.
type Sender interface {
	Send(subject, body string) error
}

// SMTPSender sends through an implicit-TLS SMTP endpoint (port 465 style).
type SMTPSender struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

// NewSMTPSenderFromEnv returns nil when SMTP_PASS is unset, which the
// order service reports as a misconfiguration on submit.
func NewSMTPSenderFromEnv() *SMTPSender {
	pass := os.Getenv("SMTP_PASS")
	if pass == "" {
		return nil
	}
	user := os.Getenv("SMTP_USER")
	to := os.Getenv("ORDER_EMAIL_TO")
	if to == "" {
		to = user
	}
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "465"
	}
	return &SMTPSender{Host: host, Port: port, User: user, Pass: pass, To: to}
}

func (s *SMTPSender) Send(subject, body string) error {
	addr := s.Host + ":" + s.Port
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.Host})
	if err != nil {
		return fmt.Errorf("smtp dial %s: %w", addr, err)
	}
	client, err := smtp.NewClient(conn, s.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", s.User, s.Pass, s.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := client.Mail(s.User); err != nil {
		return err
	}
	if err := client.Rcpt(s.To); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.User)
	fmt.Fprintf(&msg, "To: %s\r\n", s.To)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	if _, err := w.Write([]byte(msg.String())); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
