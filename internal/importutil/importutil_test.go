package importutil

import "testing"

func TestParseInlineContact(t *testing.T) {
	contact, err := ParseInlineContact("Bob, bob@x.com, 0700")
	if err != nil {
		t.Fatalf("ParseInlineContact() error = %v", err)
	}
	if contact.Name != "Bob" || contact.Email != "bob@x.com" || contact.PreferredTime != "0700" {
		t.Fatalf("got %+v", contact)
	}

	contact, err = ParseInlineContact("Bob,bob@x.com")
	if err != nil {
		t.Fatalf("ParseInlineContact() error = %v", err)
	}
	if contact.PreferredTime != "" {
		t.Fatalf("preferred time = %q, want empty (store default applies)", contact.PreferredTime)
	}

	for _, raw := range []string{"Bob", "a,b,c,d"} {
		if _, err := ParseInlineContact(raw); err == nil {
			t.Fatalf("ParseInlineContact(%q) = nil, want error", raw)
		}
	}
}
