package contacts

import (
	"errors"
	"fmt"
)

var (
	ErrContactNotFound  = errors.New("contact not found")
	ErrDuplicateContact = errors.New("duplicate contact")
)

// FieldError reports a contact field that failed validation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidModeError reports a numeric import-mode mask outside [0, 15].
type InvalidModeError struct {
	Mask int
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid import mode mask: %d", e.Mask)
}

// MissingSourceError reports an import mode that was selected without any
// data to read from.
type MissingSourceError struct {
	Mode string
}

func (e *MissingSourceError) Error() string {
	return fmt.Sprintf("import mode %s selected, but no source was provided", e.Mode)
}
