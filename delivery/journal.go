package delivery

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Giorgio68/morning-greetings/internal/fsstore"
)

type RecordStatus string

const (
	StatusSent   RecordStatus = "sent"
	StatusFailed RecordStatus = "failed"
)

// Record is one delivery attempt, appended as a JSON line.
type Record struct {
	ID     string       `json:"id"`
	Email  string       `json:"email"`
	Status RecordStatus `json:"status"`
	Error  string       `json:"error,omitempty"`
	At     time.Time    `json:"at"`
}

// Journal appends delivery attempts to a JSONL file under the state dir.
type Journal struct {
	Path string
	Now  func() time.Time
}

func NewJournal(path string) *Journal {
	return &Journal{Path: path, Now: time.Now}
}

func (j *Journal) Append(email string, sendErr error) error {
	record := Record{
		ID:     uuid.NewString(),
		Email:  email,
		Status: StatusSent,
		At:     j.nowUTC(),
	}
	if sendErr != nil {
		record.Status = StatusFailed
		record.Error = sendErr.Error()
	}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return fsstore.AppendLine(j.Path, string(data), fsstore.FileOptions{DirPerm: 0o700, FilePerm: 0o600})
}

// Records reads the whole journal, oldest first. A missing file is an empty
// journal.
func (j *Journal) Records() ([]Record, error) {
	text, exists, err := fsstore.ReadText(j.Path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	var records []Record
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var record Record
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", j.Path, i+1, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func (j *Journal) nowUTC() time.Time {
	if j.Now == nil {
		return time.Now().UTC()
	}
	return j.Now().UTC()
}
