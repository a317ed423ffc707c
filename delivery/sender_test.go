package delivery

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/Giorgio68/morning-greetings/contacts"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type recordingSender struct {
	email string
	body  string
	calls int
	err   error
}

func (s *recordingSender) Send(_ context.Context, email, body string) error {
	s.calls++
	s.email = email
	s.body = body
	return s.err
}

func TestDispatcherSend(t *testing.T) {
	transport := &recordingSender{}
	d := NewDispatcher(testLogger(), transport, nil)

	if err := d.Send(context.Background(), "x@y.com", "hi"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if transport.email != "x@y.com" || transport.body != "hi" {
		t.Fatalf("transport received (%q, %q), want (x@y.com, hi)", transport.email, transport.body)
	}
}

func TestDispatcherValidation(t *testing.T) {
	for _, tc := range []struct {
		email, body string
	}{
		{"", "hi"},
		{"not-an-email", "hi"},
		{"x@y.com", ""},
	} {
		transport := &recordingSender{}
		d := NewDispatcher(testLogger(), transport, nil)

		err := d.Send(context.Background(), tc.email, tc.body)
		var fieldErr *contacts.FieldError
		if !errors.As(err, &fieldErr) {
			t.Fatalf("Send(%q, %q) error = %v, want *FieldError", tc.email, tc.body, err)
		}
		if transport.calls != 0 {
			t.Fatalf("transport called %d times for invalid input", transport.calls)
		}
	}
}

func TestDispatcherWrapsTransportError(t *testing.T) {
	transport := &recordingSender{err: fmt.Errorf("connection refused")}
	d := NewDispatcher(testLogger(), transport, nil)

	err := d.Send(context.Background(), "x@y.com", "hi")
	if err == nil || !strings.Contains(err.Error(), "x@y.com") {
		t.Fatalf("Send() error = %v, want wrapped transport error", err)
	}
}

func TestConsoleSenderOutput(t *testing.T) {
	var out bytes.Buffer
	s := &ConsoleSender{Out: &out}
	if err := s.Send(context.Background(), "x@y.com", "hi"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if got := out.String(); got != "Sending message to x@y.com: hi\n" {
		t.Fatalf("output = %q", got)
	}
}
