// Package greeting picks a templated morning greeting for a contact.
package greeting

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/Giorgio68/morning-greetings/contacts"
)

// Placeholder marks where the contact's name is substituted in a template.
const Placeholder = "{name}"

var defaultTemplates = []string{
	"Good Morning, {name}! Have a great day.....!",
	"Hello {name}! Hope your day is fantastic!",
	"Good day, {name}",
	"Top of the morning {name}!",
	"Have a lovely day, {name} :)",
}

// DefaultTemplates returns a copy of the built-in template set.
func DefaultTemplates() []string {
	return append([]string(nil), defaultTemplates...)
}

// Generator formats greetings from a fixed template set, choosing uniformly
// per call. The random source is not seeded for reproducibility; inject one
// with NewWithIntN when tests need a fixed pick.
type Generator struct {
	templates []string
	intN      func(n int) int
}

func New() *Generator {
	return NewWithIntN(rand.IntN, nil)
}

// NewWithIntN builds a generator with an explicit uniform-int source and an
// optional template override. Nil templates means the built-in set.
func NewWithIntN(intN func(n int) int, templates []string) *Generator {
	if intN == nil {
		intN = rand.IntN
	}
	if len(templates) == 0 {
		templates = defaultTemplates
	}
	return &Generator{templates: templates, intN: intN}
}

// Generate returns one greeting with name substituted. An empty name is a
// field error; the caller decides whether that skips the contact.
func (g *Generator) Generate(name string) (string, error) {
	if name == "" {
		return "", &contacts.FieldError{Field: "name", Reason: "must not be empty"}
	}
	template := g.templates[g.intN(len(g.templates))]
	return strings.ReplaceAll(template, Placeholder, name), nil
}

// ValidateTemplates checks an override set: it must be non-empty and every
// entry must contain the name placeholder.
func ValidateTemplates(templates []string) error {
	if len(templates) == 0 {
		return fmt.Errorf("template set is empty")
	}
	for i, template := range templates {
		if !strings.Contains(template, Placeholder) {
			return fmt.Errorf("template %d is missing the %s placeholder: %q", i, Placeholder, template)
		}
	}
	return nil
}
