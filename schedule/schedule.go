// Package schedule orders greetings by preferred send time and walks the
// batch, skipping individual failures.
package schedule

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/Giorgio68/morning-greetings/contacts"
	"github.com/Giorgio68/morning-greetings/delivery"
	"github.com/Giorgio68/morning-greetings/greeting"
)

// Item pairs a contact with its generated greeting.
type Item struct {
	Contact contacts.Contact
	Message string
}

// Plan generates one greeting per stored contact and sorts the result by
// preferred time. Preferred times compare as strings; lax values like
// "9999" simply sort after every real HHMM. Generation failures are logged
// and the contact is dropped from the plan.
func Plan(logger *slog.Logger, store *contacts.Store, gen *greeting.Generator) []Item {
	if logger == nil {
		logger = slog.Default()
	}

	all := store.List()
	items := make([]Item, 0, len(all))
	for _, contact := range all {
		message, err := gen.Generate(contact.Name)
		if err != nil {
			logger.Warn("skipping greeting generation", "name", contact.Name, "error", err)
			continue
		}
		items = append(items, Item{Contact: contact, Message: message})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Contact.PreferredTime < items[j].Contact.PreferredTime
	})
	return items
}

type RunOptions struct {
	// Pause is the fixed delay between consecutive sends; zero disables it.
	Pause time.Duration
	// Sleep is swapped in tests. Nil means time.Sleep.
	Sleep func(time.Duration)
}

// RunResult counts the batch outcome.
type RunResult struct {
	Sent   int
	Failed int
}

// Run delivers the planned greetings in order. A failed send is logged and
// the batch continues; only context cancellation stops the walk early.
func Run(ctx context.Context, logger *slog.Logger, items []Item, dispatcher *delivery.Dispatcher, opts RunOptions) (RunResult, error) {
	if logger == nil {
		logger = slog.Default()
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var result RunResult
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if i > 0 && opts.Pause > 0 {
			logger.Debug("pausing before next greeting", "name", item.Contact.Name, "pause", opts.Pause)
			sleep(opts.Pause)
		}

		if err := dispatcher.Send(ctx, item.Contact.Email, item.Message); err != nil {
			logger.Error("greeting not delivered", "name", item.Contact.Name, "email", item.Contact.Email, "error", err)
			result.Failed++
			continue
		}
		result.Sent++
	}
	return result, nil
}
