package diag

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// Report is the serialized form of a run
type Report struct {
	Count   int      `json:"count"`
	Signals []Signal `json:"signals"`
}

// NewReport builds a report over the given signals
func NewReport(signals []Signal) Report {
	if signals == nil {
		signals = []Signal{}
	}
	return Report{
		Count:   len(signals),
		Signals: signals,
	}
}

// WriteJSON encodes the report as indented JSON
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
