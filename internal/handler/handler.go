// Package handler exposes the planning pipeline over plain JSON endpoints.
// Every endpoint is a POST taking a small JSON body; sentinel documents
// (SCOPE_TOO_SHORT, NOT_SOFTWARE_PROJECT, PARSE_ERROR) are returned with
// status 200 so clients can branch on the error field, while transport and
// storage failures map to 500.
package handler

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/jsonutil"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/planner"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/risk"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/store"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/types"
)

type Service struct {
	planner *planner.Planner
	engine  *risk.Engine
	ai      *risk.AI
	store   store.Store
	log     *log.Logger
}

func New(p *planner.Planner, engine *risk.Engine, ai *risk.AI, st store.Store, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{planner: p, engine: engine, ai: ai, store: st, log: logger}
}

type wbsRequest struct {
	ProjectScope string          `json:"project_scope"`
	ProjectID    json.RawMessage `json:"project_id"`
}

// HandleWBS derives a WBS from the scope and saves the snapshot under the
// given project id (default "1"). Sentinel documents are still saved and
// returned with 200.
func (s *Service) HandleWBS(w http.ResponseWriter, r *http.Request) {
	var req wbsRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	if strings.TrimSpace(req.ProjectScope) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"project_scope": "This field is required."})
		return
	}

	wbs, err := s.planner.GenerateWBS(r.Context(), req.ProjectScope)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": fmt.Sprintf("Error generating WBS: %v", err)})
		return
	}

	projectID := rawID(req.ProjectID, "1")
	wbs.ProjectID = projectID
	wbs.ProjectScope = req.ProjectScope
	if err := s.store.SaveWBS(r.Context(), projectID, wbs); err != nil {
		s.log.Printf("handler: save wbs %s: %v", projectID, err)
	}

	writeJSON(w, http.StatusOK, wbs)
}

type askRequest struct {
	Question string `json:"question"`
	Mode     string `json:"mode"`
}

// HandleAsk answers a free-form question in the project manager persona.
func (s *Service) HandleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := decodeBody(r, &req); err != nil || strings.TrimSpace(req.Question) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Please provide a question"})
		return
	}
	mode := req.Mode
	if mode == "" {
		mode = planner.ModeNormal
	}

	answer, err := s.planner.Answer(r.Context(), req.Question, mode)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": fmt.Sprintf("LLM error: %v", err)})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
}

type riskRequest struct {
	ProjectID json.RawMessage `json:"project_id"`
	WBSID     json.RawMessage `json:"wbs_id"`
}

type riskResponse struct {
	ProjectID    string       `json:"project_id"`
	ProjectScope string       `json:"project_scope"`
	TotalRisks   int          `json:"total_risks"`
	Risks        []types.Risk `json:"risks"`
}

// HandleRisks builds the combined register for a saved WBS: one scope-wide
// model derivation plus the keyword rule engine, merged rule-first and
// renumbered. Arabic scopes get the rule-based entries translated.
func (s *Service) HandleRisks(w http.ResponseWriter, r *http.Request) {
	var req riskRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	projectID := rawID(req.ProjectID, "")
	wbsID := rawID(req.WBSID, "")
	if projectID == "" || wbsID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "يجب إرسال كل من project_id و wbs_id"})
		return
	}

	wbs, err := s.store.LoadWBS(r.Context(), wbsID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": fmt.Sprintf("Error loading WBS: %v", err)})
		return
	}
	scope := wbs.ProjectScope

	aiResult, err := s.ai.DeriveFromScope(r.Context(), scope, wbs)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": fmt.Sprintf("Error generating AI risks: %v", err)})
		return
	}

	lang := planner.DetectLanguage(scope)
	ruleBased, err := s.engine.DeriveFromWBS(r.Context(), wbs, lang)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": fmt.Sprintf("Error generating risks: %v", err)})
		return
	}
	if lang == "ar" {
		risk.TranslateRuleBased(ruleBased)
	}

	combined := risk.Merge(ruleBased, aiResult.Risks)

	reg := &types.RiskRegister{
		ProjectID:    projectID,
		ProjectScope: scope,
		TotalRisks:   len(combined),
		Risks:        combined,
	}
	if err := s.store.SaveRisks(r.Context(), projectID, reg); err != nil {
		s.log.Printf("handler: save risks %s: %v", projectID, err)
	}

	writeJSON(w, http.StatusOK, riskResponse{
		ProjectID:    projectID,
		ProjectScope: scope,
		TotalRisks:   len(combined),
		Risks:        combined,
	})
}

type ganttRequest struct {
	ProjectScope  string `json:"project_scope"`
	Methodology   string `json:"methodology"`
	ResourcesText string `json:"resources_text"`
	Resources     string `json:"resources"`
}

// HandleGantt derives a Gantt schedule from scope, methodology and the
// available resources. "resources" is accepted as a fallback spelling of
// "resources_text".
func (s *Service) HandleGantt(w http.ResponseWriter, r *http.Request) {
	var req ganttRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	if strings.TrimSpace(req.ProjectScope) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "project_scope is required"})
		return
	}
	resources := req.ResourcesText
	if resources == "" {
		resources = req.Resources
	}

	gantt, err := s.planner.GenerateGantt(r.Context(), req.ProjectScope, req.Methodology, resources)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": fmt.Sprintf("Error generating Gantt chart: %v", err)})
		return
	}
	writeJSON(w, http.StatusOK, gantt)
}

type fullPlanRequest struct {
	ProjectDescription string `json:"project_description"`
	ProjectScope       string `json:"project_scope"`
}

// HandleFullPlan generates WBS, Gantt and a starter risk list from one
// description in a single model call.
func (s *Service) HandleFullPlan(w http.ResponseWriter, r *http.Request) {
	var req fullPlanRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	description := req.ProjectDescription
	if strings.TrimSpace(description) == "" {
		description = req.ProjectScope
	}
	if strings.TrimSpace(description) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "project_description (or project_scope) is required"})
		return
	}

	plan, err := s.planner.GenerateFullPlan(r.Context(), description)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": fmt.Sprintf("Error generating full plan: %v", err)})
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// rawID accepts string or numeric ids, returning fallback when absent.
func rawID(raw json.RawMessage, fallback string) string {
	if len(raw) == 0 {
		return fallback
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if strings.TrimSpace(s) == "" {
			return fallback
		}
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return fallback
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := jsonutil.MarshalNoEscape(v)
	if err != nil {
		http.Error(w, `{"error":"encoding failure"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}
