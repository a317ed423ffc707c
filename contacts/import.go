package contacts

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Modes selects which import adapters run when building a store. Named
// booleans replace the numeric bitmask of the reference implementation;
// ModesFromMask remains for callers holding the legacy mask form.
type Modes struct {
	List bool
	CSV  bool
	JSON bool
	TXT  bool
}

func (m Modes) None() bool {
	return !m.List && !m.CSV && !m.JSON && !m.TXT
}

const (
	maskList = 1 << iota
	maskCSV
	maskJSON
	maskTXT
)

// ModesFromMask converts the legacy numeric selector. Masks outside
// [0, 15] fail; 0 selects nothing and yields an empty store.
func ModesFromMask(mask int) (Modes, error) {
	if mask < 0 || mask > maskList|maskCSV|maskJSON|maskTXT {
		return Modes{}, &InvalidModeError{Mask: mask}
	}
	return Modes{
		List: mask&maskList != 0,
		CSV:  mask&maskCSV != 0,
		JSON: mask&maskJSON != 0,
		TXT:  mask&maskTXT != 0,
	}, nil
}

// Source is one already-opened input. Name is used for diagnostics and for
// the .jsonl detection of the JSON adapter.
type Source struct {
	Name   string
	Reader io.Reader
}

// ImportInputs carries the data for each selected mode.
type ImportInputs struct {
	List []Contact
	CSV  []Source
	JSON []Source
	TXT  []Source

	// CSVSep defaults to ",". TXTSep empty means any whitespace.
	CSVSep string
	TXTSep string
}

// BuildStore runs the selected adapters in a fixed order (list, csv, json,
// txt), accumulating into one store. A selected mode with no data or a
// malformed line aborts the build; a contact that fails field validation is
// logged and skipped, and the build continues.
func BuildStore(logger *slog.Logger, modes Modes, in ImportInputs) (*Store, error) {
	store := NewStore(logger)

	if modes.List {
		if len(in.List) == 0 {
			return nil, &MissingSourceError{Mode: "list"}
		}
		for _, contact := range in.List {
			addLogged(store, contact.Name, contact.Email, contact.PreferredTime)
		}
	}

	if modes.CSV {
		if len(in.CSV) == 0 {
			return nil, &MissingSourceError{Mode: "csv"}
		}
		sep := in.CSVSep
		if sep == "" {
			sep = ","
		}
		for _, src := range in.CSV {
			if err := importSeparated(store, src, sep); err != nil {
				return nil, err
			}
		}
	}

	if modes.JSON {
		if len(in.JSON) == 0 {
			return nil, &MissingSourceError{Mode: "json"}
		}
		for _, src := range in.JSON {
			if err := importJSON(store, src); err != nil {
				return nil, err
			}
		}
	}

	if modes.TXT {
		if len(in.TXT) == 0 {
			return nil, &MissingSourceError{Mode: "txt"}
		}
		for _, src := range in.TXT {
			if err := importText(store, src, in.TXTSep); err != nil {
				return nil, err
			}
		}
	}

	return store, nil
}

func addLogged(store *Store, name, email, preferredTime string) {
	if err := store.Add(name, email, preferredTime); err != nil {
		store.logger.Warn("skipping invalid contact", "name", name, "error", err)
	}
}

func importSeparated(store *Store, src Source, sep string) error {
	scanner := bufio.NewScanner(src.Reader)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, sep)
		if len(fields) != 3 {
			return fmt.Errorf("%s:%d: expected 3 fields separated by %q, got %d", src.Name, lineNo, sep, len(fields))
		}
		addLogged(store, strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1]), strings.TrimSpace(fields[2]))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", src.Name, err)
	}
	return nil
}

func importText(store *Store, src Source, sep string) error {
	if sep != "" {
		return importSeparated(store, src, sep)
	}
	scanner := bufio.NewScanner(src.Reader)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return fmt.Errorf("%s:%d: expected 3 whitespace-separated fields, got %d", src.Name, lineNo, len(fields))
		}
		addLogged(store, fields[0], fields[1], fields[2])
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", src.Name, err)
	}
	return nil
}

// importJSON reads either one JSON object, an array of objects, or, when
// the source name ends in .jsonl, one object per line.
func importJSON(store *Store, src Source) error {
	if strings.HasSuffix(strings.ToLower(src.Name), ".jsonl") {
		scanner := bufio.NewScanner(src.Reader)
		lineNo := 0
		for scanner.Scan() {
			lineNo++
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			var contact Contact
			if err := json.Unmarshal([]byte(line), &contact); err != nil {
				return fmt.Errorf("%s:%d: %w", src.Name, lineNo, err)
			}
			addLogged(store, contact.Name, contact.Email, contact.PreferredTime)
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading %s: %w", src.Name, err)
		}
		return nil
	}

	data, err := io.ReadAll(src.Reader)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src.Name, err)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}

	if trimmed[0] == '[' {
		var list []Contact
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return fmt.Errorf("%s: %w", src.Name, err)
		}
		for _, contact := range list {
			addLogged(store, contact.Name, contact.Email, contact.PreferredTime)
		}
		return nil
	}

	var contact Contact
	if err := json.Unmarshal(trimmed, &contact); err != nil {
		return fmt.Errorf("%s: %w", src.Name, err)
	}
	addLogged(store, contact.Name, contact.Email, contact.PreferredTime)
	return nil
}
