package delivery

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/yuin/goldmark"
)

// SMTPConfig describes an implicit-TLS submission endpoint, e.g.
// smtp.gmail.com:465 with an app password.
type SMTPConfig struct {
	Address  string
	From     string
	Password string
	Subject  string
	// HTML renders the body from markdown into a multipart/alternative
	// message; plain text is always included.
	HTML bool
}

// SMTPSender transmits greetings over SMTP. It honors the same contract as
// the console transport: it sees only validated recipients and bodies.
type SMTPSender struct {
	cfg SMTPConfig

	// dial is swapped in tests.
	dial func(address string) (*smtp.Client, error)
}

func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if strings.TrimSpace(cfg.Address) == "" {
		return nil, fmt.Errorf("empty smtp address")
	}
	if strings.TrimSpace(cfg.From) == "" {
		return nil, fmt.Errorf("empty smtp from address")
	}
	if cfg.Subject == "" {
		cfg.Subject = "Morning greeting"
	}
	return &SMTPSender{
		cfg: cfg,
		dial: func(address string) (*smtp.Client, error) {
			return smtp.DialTLS(address, nil)
		},
	}, nil
}

func (s *SMTPSender) Send(_ context.Context, email, body string) error {
	raw, err := s.buildMessage(email, body)
	if err != nil {
		return err
	}

	client, err := s.dial(s.cfg.Address)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", s.cfg.Address, err)
	}
	defer client.Close()

	if s.cfg.Password != "" {
		auth := sasl.NewPlainClient("", s.cfg.From, s.cfg.Password)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth failed: %w", err)
		}
	}

	if err := client.Mail(s.cfg.From, nil); err != nil {
		return fmt.Errorf("MAIL FROM failed: %w", err)
	}
	if err := client.Rcpt(email, nil); err != nil {
		return fmt.Errorf("RCPT TO %q failed: %w", email, err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("DATA failed: %w", err)
	}
	if _, err := writer.Write(raw); err != nil {
		return fmt.Errorf("writing message failed: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalizing message failed: %w", err)
	}
	if err := client.Quit(); err != nil {
		return fmt.Errorf("QUIT failed: %w", err)
	}
	return nil
}

func (s *SMTPSender) buildMessage(email, body string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&buf, "To: %s\r\n", email)
	fmt.Fprintf(&buf, "Subject: %s\r\n", s.cfg.Subject)
	fmt.Fprintf(&buf, "Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z))
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")

	if !s.cfg.HTML {
		fmt.Fprintf(&buf, "Content-Type: text/plain; charset=utf-8\r\n\r\n")
		buf.WriteString(body)
		buf.WriteString("\r\n")
		return buf.Bytes(), nil
	}

	var html bytes.Buffer
	if err := goldmark.Convert([]byte(body), &html); err != nil {
		return nil, fmt.Errorf("rendering html body: %w", err)
	}

	mw := multipart.NewWriter(&buf)
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", mw.Boundary())

	part, err := mw.CreatePart(textproto.MIMEHeader{"Content-Type": {"text/plain; charset=utf-8"}})
	if err != nil {
		return nil, err
	}
	if _, err := part.Write([]byte(body)); err != nil {
		return nil, err
	}

	part, err = mw.CreatePart(textproto.MIMEHeader{"Content-Type": {"text/html; charset=utf-8"}})
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(html.Bytes()); err != nil {
		return nil, err
	}

	if err := mw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
