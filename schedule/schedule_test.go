package schedule

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/Giorgio68/morning-greetings/contacts"
	"github.com/Giorgio68/morning-greetings/delivery"
	"github.com/Giorgio68/morning-greetings/greeting"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func fixedGenerator() *greeting.Generator {
	return greeting.NewWithIntN(func(int) int { return 2 }, nil) // "Good day, {name}"
}

func TestPlanSortsByPreferredTime(t *testing.T) {
	store := contacts.NewStore(testLogger())
	_ = store.Add("Late", "late@x.com", "0930")
	_ = store.Add("Early", "early@x.com", "0630")
	_ = store.Add("Mid", "mid@x.com", "0800")
	_ = store.Add("Weird", "weird@x.com", "9999")

	items := Plan(testLogger(), store, fixedGenerator())
	if len(items) != 4 {
		t.Fatalf("len = %d, want 4", len(items))
	}
	wantOrder := []string{"Early", "Mid", "Late", "Weird"}
	for i, want := range wantOrder {
		if items[i].Contact.Name != want {
			t.Fatalf("order[%d] = %s, want %s", i, items[i].Contact.Name, want)
		}
	}
	if items[0].Message != "Good day, Early" {
		t.Fatalf("message = %q", items[0].Message)
	}
}

func TestPlanStableForEqualTimes(t *testing.T) {
	store := contacts.NewStore(testLogger())
	_ = store.Add("A", "a@x.com", "0800")
	_ = store.Add("B", "b@x.com", "0800")

	items := Plan(testLogger(), store, fixedGenerator())
	if items[0].Contact.Name != "A" || items[1].Contact.Name != "B" {
		t.Fatalf("equal times not in insertion order: %s, %s", items[0].Contact.Name, items[1].Contact.Name)
	}
}

type flakySender struct {
	failFor map[string]bool
	sent    []string
}

func (s *flakySender) Send(_ context.Context, email, _ string) error {
	if s.failFor[email] {
		return context.DeadlineExceeded
	}
	s.sent = append(s.sent, email)
	return nil
}

func TestRunContinuesPastFailures(t *testing.T) {
	store := contacts.NewStore(testLogger())
	_ = store.Add("A", "a@x.com", "0600")
	_ = store.Add("B", "b@x.com", "0700")
	_ = store.Add("C", "c@x.com", "0800")

	transport := &flakySender{failFor: map[string]bool{"b@x.com": true}}
	dispatcher := delivery.NewDispatcher(testLogger(), transport, nil)

	items := Plan(testLogger(), store, fixedGenerator())
	result, err := Run(context.Background(), testLogger(), items, dispatcher, RunOptions{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Sent != 2 || result.Failed != 1 {
		t.Fatalf("result = %+v, want 2 sent / 1 failed", result)
	}
	if len(transport.sent) != 2 || transport.sent[0] != "a@x.com" || transport.sent[1] != "c@x.com" {
		t.Fatalf("sent = %v", transport.sent)
	}
}

func TestRunPausesBetweenSends(t *testing.T) {
	store := contacts.NewStore(testLogger())
	_ = store.Add("A", "a@x.com", "0600")
	_ = store.Add("B", "b@x.com", "0700")
	_ = store.Add("C", "c@x.com", "0800")

	var pauses []time.Duration
	dispatcher := delivery.NewDispatcher(testLogger(), &flakySender{}, nil)
	items := Plan(testLogger(), store, fixedGenerator())

	_, err := Run(context.Background(), testLogger(), items, dispatcher, RunOptions{
		Pause: 3 * time.Second,
		Sleep: func(d time.Duration) { pauses = append(pauses, d) },
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	// Between sends only: n-1 pauses.
	if len(pauses) != 2 || pauses[0] != 3*time.Second {
		t.Fatalf("pauses = %v", pauses)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	store := contacts.NewStore(testLogger())
	_ = store.Add("A", "a@x.com", "0600")
	_ = store.Add("B", "b@x.com", "0700")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dispatcher := delivery.NewDispatcher(testLogger(), &flakySender{}, nil)
	items := Plan(testLogger(), store, fixedGenerator())

	result, err := Run(ctx, testLogger(), items, dispatcher, RunOptions{})
	if err == nil {
		t.Fatalf("Run() = nil, want context error")
	}
	if result.Sent != 0 {
		t.Fatalf("sent = %d, want 0", result.Sent)
	}
}

func TestRunDeliversToConsole(t *testing.T) {
	store := contacts.NewStore(testLogger())
	_ = store.Add("Eve", "eve@x.com", "0700")

	var out bytes.Buffer
	dispatcher := delivery.NewDispatcher(testLogger(), &delivery.ConsoleSender{Out: &out}, nil)
	items := Plan(testLogger(), store, fixedGenerator())

	result, err := Run(context.Background(), testLogger(), items, dispatcher, RunOptions{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Sent != 1 {
		t.Fatalf("sent = %d, want 1", result.Sent)
	}
	if got := out.String(); got != "Sending message to eve@x.com: Good day, Eve\n" {
		t.Fatalf("output = %q", got)
	}
}
