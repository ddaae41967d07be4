package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Category is the pylint message category derived from the first letter of the
// message id (C0114 -> convention).
type Category string

const (
	CategoryFatal      Category = "fatal"
	CategoryError      Category = "error"
	CategoryWarning    Category = "warning"
	CategoryRefactor   Category = "refactor"
	CategoryConvention Category = "convention"
	CategoryInfo       Category = "info"
)

// CategoryFromID maps a message id such as "E0602" to its category. Unknown
// prefixes return an empty category.
func CategoryFromID(id string) Category {
	if id == "" {
		return ""
	}

	switch id[0] {
	case 'F':
		return CategoryFatal
	case 'E':
		return CategoryError
	case 'W':
		return CategoryWarning
	case 'R':
		return CategoryRefactor
	case 'C':
		return CategoryConvention
	case 'I':
		return CategoryInfo
	default:
		return ""
	}
}

// Message is a single diagnostic emitted by pylint.
type Message struct {
	Path     string   `json:"path"`
	Line     int      `json:"line"`
	Column   int      `json:"column"`
	ID       string   `json:"messageId"`
	Symbol   string   `json:"symbol"`
	Category Category `json:"category"`
	Text     string   `json:"message"`
}

// IsError reports whether the message makes the analysed code unusable.
func (m Message) IsError() bool {
	return m.Category == CategoryError || m.Category == CategoryFatal
}

// Summary renders the message the way pylint prints it, without the path.
func (m Message) Summary() string {
	s := fmt.Sprintf("%d:%d: %s: %s", m.Line, m.Column, m.ID, m.Text)
	if m.Symbol != "" {
		s += " (" + m.Symbol + ")"
	}

	return s
}

// Report is the outcome of one pylint run.
type Report struct {
	// Output is pylint's plain text output, as sent to TCP clients.
	Output string `json:"output"`
	// Messages are the diagnostics parsed from Output.
	Messages []Message `json:"messages"`
	// Score is the "rated at" value, nil when pylint did not print one.
	Score *float64 `json:"score,omitempty"`
	// PreviousScore is present when pylint compared against a previous run.
	PreviousScore *float64 `json:"previousScore,omitempty"`
	// ExitCode is pylint's exit status bit mask.
	ExitCode int `json:"exitCode"`
}

// Clone returns a deep copy of r. A nil report clones to nil.
func (r *Report) Clone() *Report {
	if r == nil {
		return nil
	}

	out := *r
	out.Messages = slices.Clone(r.Messages)
	out.Score = cloneFloat(r.Score)
	out.PreviousScore = cloneFloat(r.PreviousScore)

	return &out
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f

	return &v
}

// ErrorCount returns the number of fatal and error messages.
func (r *Report) ErrorCount() int {
	var count int
	for _, m := range r.Messages {
		if m.IsError() {
			count++
		}
	}

	return count
}

// WarningCount returns the number of messages that are not errors.
func (r *Report) WarningCount() int {
	return len(r.Messages) - r.ErrorCount()
}

// Summary returns a short multi-line description of the report.
func (r *Report) Summary() string {
	lines := make([]string, 0, len(r.Messages)+1)
	lines = append(lines, fmt.Sprintf("%d linting issues (%d errors)", len(r.Messages), r.ErrorCount()))
	for _, m := range r.Messages {
		lines = append(lines, " - "+m.Summary())
	}
	if r.Score != nil {
		lines = append(lines, fmt.Sprintf("score: %.2f/10", *r.Score))
	}

	return strings.Join(lines, "\n")
}
