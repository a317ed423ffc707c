// Package delivery validates and hands greetings to a transport.
package delivery

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Giorgio68/morning-greetings/contacts"
)

// Sender is the transport boundary: it receives an already-validated
// recipient and body. The console transport is the reference behavior; SMTP
// is the real one.
type Sender interface {
	Send(ctx context.Context, email, body string) error
}

// ConsoleSender prints the message instead of transmitting it.
type ConsoleSender struct {
	Out io.Writer
}

func (s *ConsoleSender) Send(_ context.Context, email, body string) error {
	out := s.Out
	if out == nil {
		out = os.Stdout
	}
	_, err := fmt.Fprintf(out, "Sending message to %s: %s\n", email, body)
	return err
}

// Dispatcher fronts a transport with the validation contract: an empty or
// malformed recipient and an empty body never reach the transport. Every
// attempt is journaled when a journal is configured.
type Dispatcher struct {
	logger    *slog.Logger
	transport Sender
	journal   *Journal
}

func NewDispatcher(logger *slog.Logger, transport Sender, journal *Journal) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{logger: logger, transport: transport, journal: journal}
}

func (d *Dispatcher) Send(ctx context.Context, email, body string) error {
	if err := contacts.ValidateEmail(email); err != nil {
		return err
	}
	if body == "" {
		return &contacts.FieldError{Field: "body", Reason: "must not be empty"}
	}

	err := d.transport.Send(ctx, email, body)
	if d.journal != nil {
		if jerr := d.journal.Append(email, err); jerr != nil {
			d.logger.Warn("journal append failed", "email", email, "error", jerr)
		}
	}
	if err != nil {
		return fmt.Errorf("sending to %s: %w", email, err)
	}
	d.logger.Info("sent greeting", "email", email)
	return nil
}
