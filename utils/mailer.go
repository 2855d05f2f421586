package utils

import (
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/akwaflow/website/config"
	"github.com/akwaflow/website/models"
)

// SendContactNotification emails the configured admin address about a new
// inquiry. The contact row holds the already-composed subject and message;
// the raw optional fields are echoed individually in the body.
func SendContactNotification(cfg config.AppConfig, contact models.Contact, phone, company, service, urgency string) error {
	subject := contact.Subject
	if subject == "" {
		subject = "General Inquiry"
	}

	var body strings.Builder
	body.WriteString("New contact form submission from the AKWAFLOW website:\n\n")
	fmt.Fprintf(&body, "Name: %s\n", contact.Name)
	fmt.Fprintf(&body, "Email: %s\n", contact.Email)
	fmt.Fprintf(&body, "Phone: %s\n", orDefault(phone, "Not provided"))
	fmt.Fprintf(&body, "Company: %s\n", orDefault(company, "Not provided"))
	fmt.Fprintf(&body, "Service Interest: %s\n", orDefault(service, "Not specified"))
	fmt.Fprintf(&body, "Timeline: %s\n\n", orDefault(urgency, "Not specified"))
	fmt.Fprintf(&body, "Subject: %s\n\n", subject)
	fmt.Fprintf(&body, "Message:\n%s\n\n", contact.Message)
	body.WriteString("---\n")
	body.WriteString("This email was sent automatically from the AKWAFLOW contact form.\n")
	fmt.Fprintf(&body, "Please reply directly to %s to respond to this inquiry.\n", contact.Email)

	return SendMail(cfg, cfg.AdminEmail, "New Contact Form Submission: "+subject, body.String())
}

// SendMail sends a plain text email using the SMTP settings from cfg.
func SendMail(cfg config.AppConfig, to, subject, body string) error {
	if cfg.SMTPHost == "" || cfg.SMTPFrom == "" || to == "" {
		return fmt.Errorf("smtp not configured")
	}
	addr := net.JoinHostPort(cfg.SMTPHost, strconv.Itoa(cfg.SMTPPort))
	auth := smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost)

	fromName := cfg.SMTPFromName
	if fromName == "" {
		fromName = "AKWAFLOW"
	}

	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", encodeRFC2047(fromName), cfg.SMTPFrom),
		"To":           to,
		"Subject":      encodeRFC2047(subject),
		"MIME-Version": "1.0",
		"Content-Type": "text/plain; charset=UTF-8",
	}
	var msg strings.Builder
	for k, v := range headers {
		fmt.Fprintf(&msg, "%s: %s\r\n", k, v)
	}
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if cfg.SMTPTLS {
		return sendWithStartTLS(cfg, addr, auth, to, msg.String())
	}

	// Plain SMTP without TLS (not recommended)
	return smtp.SendMail(addr, auth, cfg.SMTPFrom, []string{to}, []byte(msg.String()))
}

func sendWithStartTLS(cfg config.AppConfig, addr string, auth smtp.Auth, to, msg string) error {
	d := net.Dialer{Timeout: 5 * time.Second}
	conn, err := d.Dial("tcp", addr)
	if err != nil {
		return err
	}
	_ = conn.SetDeadline(time.Now().Add(15 * time.Second))

	host, _, _ := net.SplitHostPort(addr)
	c, err := smtp.NewClient(conn, host)
	if err != nil {
		_ = conn.Close()
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: host}); err != nil {
			return err
		}
	}
	if cfg.SMTPUsername != "" {
		if err := c.Auth(auth); err != nil {
			return err
		}
	}
	if err := c.Mail(cfg.SMTPFrom); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	wc, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := wc.Write([]byte(msg)); err != nil {
		_ = wc.Close()
		return err
	}
	return wc.Close()
}

// encodeRFC2047 wraps a header value in RFC 2047 B encoding when it contains
// non-ASCII bytes.
func encodeRFC2047(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 128 {
			return fmt.Sprintf("=?UTF-8?B?%s?=", base64.StdEncoding.EncodeToString([]byte(s)))
		}
	}
	return s
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
