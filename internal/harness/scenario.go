package harness

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	"gopkg.in/yaml.v3"

	"github.com/MahaboobV/live-football-scoreboard/internal/engine"
)

//go:embed schema.cue
var schemaCUE []byte

// Scenario is a scripted sequence of scoreboard operations.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name" json:"name"`

	// Description explains what this scenario exercises.
	Description string `yaml:"description" json:"description"`

	// AllowFinishedUpdates builds the scoreboard with
	// engine.WithFinishedScoreUpdates(true).
	AllowFinishedUpdates bool `yaml:"allow_finished_updates,omitempty" json:"allow_finished_updates,omitempty"`

	// Steps run in order. A failing step does not stop the run.
	Steps []Step `yaml:"steps" json:"steps"`
}

// Step is one scoreboard operation.
type Step struct {
	// Action is one of the Action* constants.
	Action string `yaml:"action" json:"action"`

	// Home and Away are team names. Used by start, and by score, finish
	// and get when the target is a team pairing.
	Home string `yaml:"home,omitempty" json:"home,omitempty"`
	Away string `yaml:"away,omitempty" json:"away,omitempty"`

	// Ref names the match created by a start step.
	Ref string `yaml:"ref,omitempty" json:"ref,omitempty"`

	// Match targets a match by ref or literal ID.
	Match string `yaml:"match,omitempty" json:"match,omitempty"`

	// HomeScore and AwayScore are required for score steps.
	HomeScore *int `yaml:"home_score,omitempty" json:"home_score,omitempty"`
	AwayScore *int `yaml:"away_score,omitempty" json:"away_score,omitempty"`

	// Expect checks the outcome. If nil, the step must succeed.
	Expect *Expect `yaml:"expect,omitempty" json:"expect,omitempty"`
}

// Expect describes the expected outcome of a step.
type Expect struct {
	// Error is the expected engine error kind, e.g. "CONFLICT".
	Error string `yaml:"error,omitempty" json:"error,omitempty"`

	// Message is the expected error message, verbatim.
	Message string `yaml:"message,omitempty" json:"message,omitempty"`

	// Summary is the expected summary (summary steps only).
	// An empty list expects no live matches.
	Summary []string `yaml:"summary,omitempty" json:"summary,omitempty"`

	// HomeScore, AwayScore and Live check the match returned by a get step.
	HomeScore *int  `yaml:"home_score,omitempty" json:"home_score,omitempty"`
	AwayScore *int  `yaml:"away_score,omitempty" json:"away_score,omitempty"`
	Live      *bool `yaml:"live,omitempty" json:"live,omitempty"`
}

// Step actions.
const (
	ActionStart   = "start"
	ActionScore   = "score"
	ActionFinish  = "finish"
	ActionGet     = "get"
	ActionSummary = "summary"
)

var errorKinds = map[string]bool{
	string(engine.KindInvalidArgument):  true,
	string(engine.KindNotFound):         true,
	string(engine.KindConflict):         true,
	string(engine.KindIllegalState):     true,
	string(engine.KindUpdateFailed):     true,
	string(engine.KindStoreUnavailable): true,
}

// ParseError is a scenario decoding error with source position.
type ParseError struct {
	Message string
	Pos     token.Pos
}

func (e *ParseError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	return e.Message
}

// LoadScenario reads a scenario file. The format is chosen by extension:
// .yaml/.yml or .cue. Returns an error if the file doesn't exist, is
// malformed, contains unknown fields, or fails validation.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ParseScenarioYAML(data)
	case ".cue":
		return ParseScenarioCUE(data, path)
	default:
		return nil, fmt.Errorf("unsupported scenario format %q (want .yaml, .yml or .cue)", ext)
	}
}

// ParseScenarioYAML decodes and validates a YAML scenario.
func ParseScenarioYAML(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields (typos like "home_goals")
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// ParseScenarioCUE compiles a CUE scenario, unifies it with #Scenario and
// decodes the result. filename is used in error positions only.
func ParseScenarioCUE(data []byte, filename string) (*Scenario, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile scenario schema: %w", err)
	}

	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Scenario")).Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	var scenario Scenario
	if err := unified.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to decode CUE: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// formatCUEError keeps the first CUE error and its position.
func formatCUEError(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	first := errs[0]
	pe := &ParseError{Message: first.Error()}
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		pe.Pos = positions[0]
	}
	return pe
}

// validateScenario checks the rules neither decoder can express.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	refs := make(map[string]bool)
	for i, step := range s.Steps {
		if err := validateStep(step); err != nil {
			return fmt.Errorf("steps[%d]: %w", i, err)
		}
		if step.Ref != "" {
			if refs[step.Ref] {
				return fmt.Errorf("steps[%d]: duplicate ref %q", i, step.Ref)
			}
			refs[step.Ref] = true
		}
	}
	return nil
}

func validateStep(step Step) error {
	switch step.Action {
	case ActionStart:
		if step.Match != "" {
			return fmt.Errorf("match is not allowed for start")
		}
	case ActionScore:
		if step.HomeScore == nil || step.AwayScore == nil {
			return fmt.Errorf("home_score and away_score are required for score")
		}
		if err := validateTarget(step); err != nil {
			return err
		}
	case ActionFinish, ActionGet:
		if err := validateTarget(step); err != nil {
			return err
		}
	case ActionSummary:
		if step.Match != "" || step.Home != "" || step.Away != "" {
			return fmt.Errorf("summary takes no match or teams")
		}
	case "":
		return fmt.Errorf("action is required")
	default:
		return fmt.Errorf("unknown action %q", step.Action)
	}

	if step.Ref != "" && step.Action != ActionStart {
		return fmt.Errorf("ref is only allowed for start")
	}
	if step.Action != ActionScore && (step.HomeScore != nil || step.AwayScore != nil) {
		return fmt.Errorf("home_score and away_score are only allowed for score")
	}

	return validateExpect(step)
}

func validateTarget(step Step) error {
	byTeams := step.Home != "" || step.Away != ""
	if step.Match == "" && !byTeams {
		return fmt.Errorf("%s needs match or home/away", step.Action)
	}
	if step.Match != "" && byTeams {
		return fmt.Errorf("%s takes match or home/away, not both", step.Action)
	}
	return nil
}

func validateExpect(step Step) error {
	e := step.Expect
	if e == nil {
		return nil
	}
	if e.Error != "" && !errorKinds[e.Error] {
		return fmt.Errorf("expect: unknown error kind %q", e.Error)
	}
	if e.Message != "" && e.Error == "" {
		return fmt.Errorf("expect: message requires error")
	}
	if e.Summary != nil && step.Action != ActionSummary {
		return fmt.Errorf("expect: summary is only allowed for summary steps")
	}
	if (e.HomeScore != nil || e.AwayScore != nil || e.Live != nil) && step.Action != ActionGet {
		return fmt.Errorf("expect: home_score, away_score and live are only allowed for get steps")
	}
	return nil
}
