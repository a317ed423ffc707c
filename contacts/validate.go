package contacts

import "regexp"

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)*\.[A-Za-z]{2,}$`)
	timePattern  = regexp.MustCompile(`^[0-9]{4}$`)
)

func ValidateName(name string) error {
	if name == "" {
		return &FieldError{Field: "name", Reason: "must not be empty"}
	}
	return nil
}

func ValidateEmail(email string) error {
	if email == "" {
		return &FieldError{Field: "email", Reason: "must not be empty"}
	}
	if !emailPattern.MatchString(email) {
		return &FieldError{Field: "email", Reason: "does not match local@domain.tld"}
	}
	return nil
}

// ValidateTime only checks the HHMM shape. A value like "9999" passes; the
// field is used as a sort key, not parsed as a wall-clock time.
func ValidateTime(preferredTime string) error {
	if preferredTime == "" {
		return &FieldError{Field: "preferred_time", Reason: "must not be empty"}
	}
	if !timePattern.MatchString(preferredTime) {
		return &FieldError{Field: "preferred_time", Reason: "must be exactly four digits"}
	}
	return nil
}
