package mailer

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strconv"

	"gopkg.in/gomail.v2"

	"acaraku_backend/internals/configs"
)

// Message adalah email transaksional siap kirim.
type Message struct {
	To      string
	Subject string
	HTML    string

	// Attachment opsional (mis. QR code PNG)
	AttachmentName  string
	AttachmentBytes []byte
	AttachmentMIME  string
}

// Mailer dipakai service lewat interface supaya bisa di-substitute saat test.
type Mailer interface {
	Send(msg Message) error
}

// SMTPMailer kirim via SMTP (gomail).
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailerFromEnv() (*SMTPMailer, error) {
	host := configs.GetEnv("SMTP_HOST")
	portStr := configs.GetEnvDefault("SMTP_PORT", "587")
	user := configs.GetEnv("SMTP_USER")
	pass := configs.GetEnv("SMTP_PASSWORD")
	from := configs.MailFrom

	if host == "" || user == "" {
		return nil, fmt.Errorf("missing env: SMTP_HOST/SMTP_USER")
	}
	if from == "" {
		from = user
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("SMTP_PORT tidak valid: %w", err)
	}

	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}, nil
}

func (m *SMTPMailer) Send(msg Message) error {
	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", msg.HTML)

	if len(msg.AttachmentBytes) > 0 && msg.AttachmentName != "" {
		mime := msg.AttachmentMIME
		if mime == "" {
			mime = "application/octet-stream"
		}
		gm.Attach(msg.AttachmentName,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := io.Copy(w, bytes.NewReader(msg.AttachmentBytes))
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {mime}}),
		)
	}

	if err := m.dialer.DialAndSend(gm); err != nil {
		log.Printf("[ERROR] Gagal kirim email ke %s: %v", msg.To, err)
		return err
	}
	return nil
}

// NoopMailer dipakai saat SMTP belum dikonfigurasi (dev/local).
type NoopMailer struct{}

func (NoopMailer) Send(msg Message) error {
	log.Printf("[INFO] NoopMailer: skip kirim email ke %s (%s)", msg.To, msg.Subject)
	return nil
}
