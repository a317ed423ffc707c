// Package importutil turns the shared --contact/--csv/--json/--txt flags
// into contact-store import inputs.
package importutil

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Giorgio68/morning-greetings/contacts"
	"github.com/Giorgio68/morning-greetings/internal/configutil"
	"github.com/Giorgio68/morning-greetings/internal/pathutil"
)

// RegisterFlags adds the import source flags shared by the send and
// contacts commands.
func RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("contact", nil, "Inline contact as name,email[,HHMM] (repeatable).")
	cmd.Flags().StringArray("csv", nil, "CSV file with name,email,HHMM per line (repeatable).")
	cmd.Flags().StringArray("json", nil, "JSON or JSONL contact file (repeatable).")
	cmd.Flags().StringArray("txt", nil, "Text file with three tokens per line (repeatable).")
	cmd.Flags().String("csv-sep", "", "CSV field separator (defaults to a comma).")
	cmd.Flags().String("txt-sep", "", "Text field separator (defaults to any whitespace).")
}

// FromCommand reads the registered flags (with viper fallback under
// import.*) and loads every named file into memory. A flag that was given
// selects its import mode; files are read here so the adapters only ever
// see already-opened sources.
func FromCommand(cmd *cobra.Command) (contacts.Modes, contacts.ImportInputs, error) {
	inline := configutil.FlagOrViperStringArray(cmd, "contact", "import.contacts")
	csvFiles := configutil.FlagOrViperStringArray(cmd, "csv", "import.csv")
	jsonFiles := configutil.FlagOrViperStringArray(cmd, "json", "import.json")
	txtFiles := configutil.FlagOrViperStringArray(cmd, "txt", "import.txt")

	modes := contacts.Modes{
		List: len(inline) > 0,
		CSV:  len(csvFiles) > 0,
		JSON: len(jsonFiles) > 0,
		TXT:  len(txtFiles) > 0,
	}

	inputs := contacts.ImportInputs{
		CSVSep: configutil.FlagOrViperString(cmd, "csv-sep", "import.csv_sep"),
		TXTSep: configutil.FlagOrViperString(cmd, "txt-sep", "import.txt_sep"),
	}

	for _, raw := range inline {
		contact, err := ParseInlineContact(raw)
		if err != nil {
			return contacts.Modes{}, contacts.ImportInputs{}, err
		}
		inputs.List = append(inputs.List, contact)
	}

	var err error
	if inputs.CSV, err = loadSources(csvFiles); err != nil {
		return contacts.Modes{}, contacts.ImportInputs{}, err
	}
	if inputs.JSON, err = loadSources(jsonFiles); err != nil {
		return contacts.Modes{}, contacts.ImportInputs{}, err
	}
	if inputs.TXT, err = loadSources(txtFiles); err != nil {
		return contacts.Modes{}, contacts.ImportInputs{}, err
	}

	return modes, inputs, nil
}

// ParseInlineContact parses a name,email[,HHMM] flag value.
func ParseInlineContact(raw string) (contacts.Contact, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return contacts.Contact{}, fmt.Errorf("invalid --contact value %q: want name,email[,HHMM]", raw)
	}
	contact := contacts.Contact{
		Name:  strings.TrimSpace(parts[0]),
		Email: strings.TrimSpace(parts[1]),
	}
	if len(parts) == 3 {
		contact.PreferredTime = strings.TrimSpace(parts[2])
	}
	return contact, nil
}

func loadSources(paths []string) ([]contacts.Source, error) {
	sources := make([]contacts.Source, 0, len(paths))
	for _, path := range paths {
		path = pathutil.ExpandHomePath(path)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, contacts.Source{Name: path, Reader: strings.NewReader(string(data))})
	}
	return sources, nil
}
