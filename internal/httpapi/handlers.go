package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/alexanderramin/founderpulse/internal/app"
	"github.com/alexanderramin/founderpulse/internal/contract"
	"github.com/alexanderramin/founderpulse/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handlers struct {
	svc    Services
	logger *zap.Logger
}

func NewHandlers(svc Services, logger *zap.Logger) *Handlers {
	return &Handlers{svc: svc, logger: logger}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps err onto a status code. Internal failures are logged and
// reported without detail.
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := app.ErrorKindOf(err)
	resp := contract.ErrorResponse{Error: err.Error(), Code: kind}
	status := http.StatusInternalServerError
	switch kind {
	case app.ErrKindValidation:
		status = http.StatusBadRequest
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			resp.Field = vErr.Field
		}
	case app.ErrKindNotFound:
		status = http.StatusNotFound
	default:
		h.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		resp.Error = "internal error"
	}
	writeJSON(w, status, resp)
}

// decodeBody reads a JSON body into v. An empty body leaves v unchanged when
// optional is true.
func decodeBody(r *http.Request, v any, optional bool) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) && optional {
		return nil
	}
	if err != nil {
		return domain.NewValidationError("body", "invalid JSON: %v", err)
	}
	return nil
}

// queryInt reads an optional non-negative integer query parameter.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, domain.NewValidationError(name, "%q is not a non-negative integer", raw)
	}
	return v, nil
}

// Health handles GET /health
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SubmitAssessment handles POST /assessments
func (h *Handlers) SubmitAssessment(w http.ResponseWriter, r *http.Request) {
	var req contract.SubmitAssessmentRequest
	if err := decodeBody(r, &req, false); err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.Assessments.Submit(r.Context(), chi.URLParam(r, "userID"), req.AnswerLevels())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, contract.NewAssessmentResponse(res))
}

// LatestAssessment handles GET /assessments/latest
func (h *Handlers) LatestAssessment(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Assessments.Latest(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.NewAssessmentResponse(res))
}

// PutCheckIn handles PUT /checkins/{date}
func (h *Handlers) PutCheckIn(w http.ResponseWriter, r *http.Request) {
	var body contract.CheckInBody
	if err := decodeBody(r, &body, false); err != nil {
		h.writeError(w, r, err)
		return
	}
	req, err := body.Request(chi.URLParam(r, "userID"), chi.URLParam(r, "date"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	entry, err := h.svc.CheckIns.Submit(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.NewCheckInView(entry))
}

// ListCheckIns handles GET /checkins?limit=N
func (h *Handlers) ListCheckIns(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	entries, err := h.svc.CheckIns.History(r.Context(), chi.URLParam(r, "userID"), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.NewCheckInList(entries))
}

// Trends handles GET /trends
func (h *Handlers) Trends(w http.ResponseWriter, r *http.Request) {
	trends, err := h.svc.CheckIns.Trends(r.Context(), chi.URLParam(r, "userID"), nil)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.NewTrendsView(*trends))
}

// CalculateBurnout handles POST /burnout
func (h *Handlers) CalculateBurnout(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Burnout.Calculate(r.Context(), app.BurnoutRequest{UserID: chi.URLParam(r, "userID")})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, contract.NewBurnoutReportResponse(report))
}

// BurnoutHistory handles GET /burnout?limit=N
func (h *Handlers) BurnoutHistory(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	scores, err := h.svc.Burnout.History(r.Context(), chi.URLParam(r, "userID"), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]contract.BurnoutView, 0, len(scores))
	for _, s := range scores {
		out = append(out, contract.NewBurnoutView(s))
	}
	writeJSON(w, http.StatusOK, out)
}

// GenerateActions handles POST /actions/generate. 201 when a batch was
// created, 200 when today's existing batch is returned.
func (h *Handlers) GenerateActions(w http.ResponseWriter, r *http.Request) {
	var body contract.GenerateActionsBody
	if err := decodeBody(r, &body, true); err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.Actions.GenerateDaily(r.Context(), app.GenerateActionsRequest{
		UserID: chi.URLParam(r, "userID"),
		Force:  body.Force,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	status := http.StatusOK
	if res.Generated {
		status = http.StatusCreated
	}
	writeJSON(w, status, contract.NewGenerateActionsResponse(res))
}

// ActionsForDate handles GET /actions/{date}
func (h *Handlers) ActionsForDate(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Actions.ForDate(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "date"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.NewActionList(items))
}

// CompleteAction handles POST /actions/{actionID}/complete
func (h *Handlers) CompleteAction(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.Actions.Complete(r.Context(), chi.URLParam(r, "actionID"), chi.URLParam(r, "userID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.NewActionView(item))
}

// Stats handles GET /stats?days=N
func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	stats, err := h.svc.Progress.Stats(r.Context(), app.StatsRequest{UserID: chi.URLParam(r, "userID"), WindowDays: days})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.NewStatsView(stats))
}
