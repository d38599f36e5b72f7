// Package types holds the planning artifacts shared by the derivers, the
// risk engine, persistence and the HTTP layer. The structs mirror the JSON
// shapes the models are instructed to return, so most fields tolerate
// partially filled payloads.
package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Domain sentinels returned to the caller as structured payloads, never as
// Go errors.
const (
	ErrCodeScopeTooShort      = "SCOPE_TOO_SHORT"
	ErrCodeNotSoftwareProject = "NOT_SOFTWARE_PROJECT"
	ErrCodeParse              = "PARSE_ERROR"
)

// Task is a leaf of the WBS tree. The three-point estimates a/m/b come from
// the model and may be missing; EffortDays is always recomputed locally and
// never trusted from the payload.
type Task struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
	Resource     string   `json:"resource,omitempty"`
	A            *float64 `json:"a"`
	M            *float64 `json:"m"`
	B            *float64 `json:"b"`
	EffortDays   float64  `json:"effort_days"`
}

type Phase struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Tasks       []Task `json:"tasks"`
}

// WBS is the work breakdown structure for one project scope. Error/Message
// carry the domain sentinels (scope too short, not a software project,
// parse failure) so the same document shape flows back to the caller in
// every outcome.
type WBS struct {
	Error        string  `json:"error,omitempty"`
	Message      string  `json:"message,omitempty"`
	RawResponse  string  `json:"raw_response,omitempty"`
	ProjectID    string  `json:"project_id,omitempty"`
	ProjectScope string  `json:"project_scope,omitempty"`
	ProjectName  string  `json:"project_name,omitempty"`
	Methodology  string  `json:"methodology,omitempty"`
	Phases       []Phase `json:"phases,omitempty"`
}

// Tasks flattens all tasks across phases in traversal order.
func (w *WBS) Tasks() []Task {
	if w == nil {
		return nil
	}
	var out []Task
	for _, ph := range w.Phases {
		out = append(out, ph.Tasks...)
	}
	return out
}

type GanttTask struct {
	ID           string   `json:"id"`
	WBSID        string   `json:"wbs_id,omitempty"`
	Name         string   `json:"name"`
	Start        string   `json:"start"`
	End          string   `json:"end"`
	DurationDays int      `json:"duration_days"`
	Resource     string   `json:"resource,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
}

// GanttPlan is the model-produced schedule. Date arithmetic consistency
// (start + duration vs end) is not recomputed here; the model is trusted.
type GanttPlan struct {
	Error       string      `json:"error,omitempty"`
	Message     string      `json:"message,omitempty"`
	RawResponse string      `json:"raw_response,omitempty"`
	ProjectName string      `json:"project_name,omitempty"`
	Methodology string      `json:"methodology,omitempty"`
	StartDate   string      `json:"start_date,omitempty"`
	GanttTasks  []GanttTask `json:"gantt_tasks,omitempty"`
}

// Probability is a percentage rendered as a string ("60%"). Models return it
// either as a bare number (40) or a string; a bare number is normalized to
// its percent-suffixed form on decode, a string passes through untouched.
type Probability string

func (p *Probability) UnmarshalJSON(data []byte) error {
	data = []byte(strings.TrimSpace(string(data)))
	if len(data) == 0 || string(data) == "null" {
		*p = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = Probability(s)
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("types: probability is neither string nor number: %s", data)
	}
	*p = Probability(fmt.Sprintf("%d%%", int(f)))
	return nil
}

// Risk is one entry of a risk register. IDs are provisional until the merge
// stage renumbers the combined list. Exposure is set only by the rule-based
// deriver.
type Risk struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    string      `json:"category,omitempty"`
	Probability Probability `json:"probability"`
	Impact      string      `json:"impact"`
	Owner       string      `json:"owner,omitempty"`
	Mitigation  string      `json:"mitigation,omitempty"`
	Trigger     string      `json:"trigger,omitempty"`
	Exposure    int         `json:"exposure,omitempty"`
}

// RiskRegister is the persisted risk document for one project.
type RiskRegister struct {
	ProjectID    string `json:"project_id"`
	ProjectScope string `json:"project_scope,omitempty"`
	TotalRisks   int    `json:"total_risks"`
	Risks        []Risk `json:"risks"`
}

// FullPlan is the one-shot WBS + Gantt + risks document.
type FullPlan struct {
	Error       string     `json:"error,omitempty"`
	Message     string     `json:"message,omitempty"`
	RawResponse string     `json:"raw_response,omitempty"`
	ProjectName string     `json:"project_name,omitempty"`
	Methodology string     `json:"methodology,omitempty"`
	WBS         *WBS       `json:"wbs,omitempty"`
	Gantt       *GanttPlan `json:"gantt,omitempty"`
	Risks       []Risk     `json:"risks,omitempty"`
}
