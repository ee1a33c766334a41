package harness

import "strings"

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true if every step met its expectation.
	Pass bool `json:"pass"`

	// Transcript holds the lines written by the steps, in order.
	// Golden files compare this.
	Transcript []string `json:"transcript"`

	// Errors contains expectation failures. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:       true,
		Transcript: []string{},
		Errors:     []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddLine appends a transcript line.
func (r *Result) AddLine(line string) {
	r.Transcript = append(r.Transcript, line)
}

// TranscriptText returns the transcript as newline-terminated lines.
func (r *Result) TranscriptText() string {
	if len(r.Transcript) == 0 {
		return ""
	}
	return strings.Join(r.Transcript, "\n") + "\n"
}
