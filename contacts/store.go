package contacts

import (
	"fmt"
	"log/slog"
)

const defaultPreferredTime = "0800"

// Contact is one greeting recipient. PreferredTime is an HHMM string used
// only for ordering sends.
type Contact struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	PreferredTime string `json:"preferred_time"`
}

// Update carries the optional fields of a Modify call. An empty field is
// left untouched.
type Update struct {
	Name          string
	Email         string
	PreferredTime string
}

// Store holds contacts in insertion order. Names are unique within one
// store; nothing is stored without passing validation first. Store is not
// safe for concurrent use.
type Store struct {
	logger   *slog.Logger
	contacts []Contact
}

func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{logger: logger}
}

// Add validates and appends a contact. An empty preferredTime defaults to
// "0800". Re-adding an existing name is a warning and a no-op, not an
// error; removal of an unknown name is an error. That asymmetry matches the
// reference behavior.
func (s *Store) Add(name, email, preferredTime string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if _, ok := s.Get(name); ok {
		s.logger.Warn("skipping duplicate contact", "name", name)
		return nil
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if preferredTime == "" {
		preferredTime = defaultPreferredTime
	}
	if err := ValidateTime(preferredTime); err != nil {
		return err
	}

	contact := Contact{Name: name, Email: email, PreferredTime: preferredTime}
	s.contacts = append(s.contacts, contact)
	s.logger.Info("added contact", "name", name, "email", email, "preferred_time", preferredTime)
	return nil
}

// Get returns a pointer into the store, so callers can observe later
// mutations through it.
func (s *Store) Get(name string) (*Contact, bool) {
	for i := range s.contacts {
		if s.contacts[i].Name == name {
			return &s.contacts[i], true
		}
	}
	return nil, false
}

// Modify applies the non-empty fields of update to the named contact. All
// supplied fields are validated before any of them is applied, so a failed
// call leaves the contact unchanged.
func (s *Store) Modify(name string, update Update) error {
	contact, ok := s.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrContactNotFound, name)
	}

	if update.Name != "" && update.Name != name {
		if err := ValidateName(update.Name); err != nil {
			return err
		}
		if _, exists := s.Get(update.Name); exists {
			return fmt.Errorf("%w: %q", ErrDuplicateContact, update.Name)
		}
	}
	if update.Email != "" {
		if err := ValidateEmail(update.Email); err != nil {
			return err
		}
	}
	if update.PreferredTime != "" {
		if err := ValidateTime(update.PreferredTime); err != nil {
			return err
		}
	}

	if update.Name != "" {
		contact.Name = update.Name
	}
	if update.Email != "" {
		contact.Email = update.Email
	}
	if update.PreferredTime != "" {
		contact.PreferredTime = update.PreferredTime
	}
	s.logger.Info("modified contact", "name", name, "new_name", contact.Name)
	return nil
}

func (s *Store) Remove(name string) error {
	for i := range s.contacts {
		if s.contacts[i].Name == name {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			s.logger.Info("removed contact", "name", name)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrContactNotFound, name)
}

// List returns the contacts in insertion order. The slice is a copy; the
// records are values, so callers cannot mutate the store through it.
func (s *Store) List() []Contact {
	out := make([]Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

func (s *Store) Len() int { return len(s.contacts) }

func (s *Store) IsEmpty() bool { return len(s.contacts) == 0 }
