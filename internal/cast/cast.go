// Package cast reads, crops, and writes terminal session recordings stored
// as newline-delimited JSON: a header object on the first line followed by
// one [timestamp, kind, payload] array per event.
package cast

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrMissingHeader is returned when the input has no header line.
var ErrMissingHeader = errors.New("recording header not found")

// Event is a single timed entry in a recording. On the wire it is a
// three-element JSON array: [timestamp in seconds, kind tag, payload text].
type Event struct {
	Time float64
	Kind string
	Data string
}

// MarshalJSON encodes the event back into its array form.
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]any{e.Time, e.Kind, e.Data})
}

// UnmarshalJSON decodes a three-element array into the event fields.
func (e *Event) UnmarshalJSON(raw []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}
	if len(fields) != 3 {
		return fmt.Errorf("event has %d elements, want 3", len(fields))
	}
	if err := json.Unmarshal(fields[0], &e.Time); err != nil {
		return fmt.Errorf("unmarshal event timestamp: %w", err)
	}
	if err := json.Unmarshal(fields[1], &e.Kind); err != nil {
		return fmt.Errorf("unmarshal event kind: %w", err)
	}
	if err := json.Unmarshal(fields[2], &e.Data); err != nil {
		return fmt.Errorf("unmarshal event payload: %w", err)
	}
	return nil
}

// Recording holds a parsed session recording. Header keeps the raw first
// line so it can be written back byte-identically.
type Recording struct {
	Header []byte
	Events []Event
}

// Read parses a newline-delimited recording from r.
func Read(r io.Reader) (*Recording, error) {
	scanner := newScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("scan recording: %w", err)
		}
		return nil, ErrMissingHeader
	}

	header := append([]byte(nil), scanner.Bytes()...)
	if !json.Valid(header) {
		return nil, fmt.Errorf("line 1: header is not valid JSON")
	}

	rec := &Recording{Header: header}
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var event Event
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		rec.Events = append(rec.Events, event)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan recording: %w", err)
	}

	return rec, nil
}

// ReadFile parses the recording stored at path.
func ReadFile(path string) (*Recording, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open recording: %w", err)
	}
	defer file.Close()

	return Read(file)
}

// Write serializes the recording to w: the header line verbatim, then one
// event array per line. HTML escaping is disabled so payload text survives
// a round trip unchanged.
func (rec *Recording) Write(w io.Writer) error {
	if _, err := w.Write(rec.Header); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, event := range rec.Events {
		if err := enc.Encode(event); err != nil {
			return fmt.Errorf("encode event: %w", err)
		}
	}
	return nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	// Allow large payloads such as full-screen redraws.
	const maxCapacity = 8 * 1024 * 1024
	buf := make([]byte, 1024)
	scanner.Buffer(buf, maxCapacity)
	return scanner
}
