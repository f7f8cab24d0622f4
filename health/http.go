package health

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jonwraymond/healthops/observe"
)

// Status strings used in responses.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusFailed    = "failed"
)

// OutcomeStatus maps an outcome to its response status string.
func OutcomeStatus(o Outcome) string {
	switch {
	case o.Failed():
		return StatusFailed
	case o.Healthy():
		return StatusHealthy
	default:
		return StatusUnhealthy
	}
}

// HTTPStatus maps an outcome to an HTTP status code: Success(true) is 200,
// Success(false) is 503 and Failure is 500.
func HTTPStatus(o Outcome) int {
	switch {
	case o.Failed():
		return http.StatusInternalServerError
	case o.Healthy():
		return http.StatusOK
	default:
		return http.StatusServiceUnavailable
	}
}

func outcomeBody(o Outcome) string {
	switch {
	case o.Failed():
		return "Health Check Failed"
	case o.Healthy():
		return "OK"
	default:
		return "Not Healthy"
	}
}

// VerdictHandler returns a plain-text probe handler for v. Failures are
// logged with their cause; the response body never includes it.
func VerdictHandler(agg *Aggregator, v Verdict, logger observe.Logger) http.HandlerFunc {
	if logger == nil {
		logger = observe.NopLogger()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		outcome := agg.Evaluate(r.Context(), v)

		if outcome.Failed() {
			logger.Error(r.Context(), "health check evaluation failed",
				observe.Field{Key: "check.verdict", Value: v.String()},
				observe.Field{Key: "error", Value: outcome.Err()},
			)
		}

		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(HTTPStatus(outcome))
		_, _ = w.Write([]byte(outcomeBody(outcome)))
	}
}

// ReportResponse is the JSON response for the detailed endpoint.
type ReportResponse struct {
	Verdict   string          `json:"verdict"`
	Status    string          `json:"status"`
	Error     string          `json:"error,omitempty"`
	Duration  string          `json:"duration"`
	Timestamp string          `json:"timestamp"`
	Checks    []CheckResponse `json:"checks"`
}

// CheckResponse is the JSON response for a single member check.
type CheckResponse struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Duration string `json:"duration"`
	Error    string `json:"error,omitempty"`
}

// NewReportResponse converts a report into its JSON form.
func NewReportResponse(rep Report) ReportResponse {
	resp := ReportResponse{
		Verdict:   rep.Verdict.String(),
		Status:    OutcomeStatus(rep.Outcome),
		Duration:  rep.Duration.String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    make([]CheckResponse, 0, len(rep.Checks)),
	}
	if err := rep.Outcome.Err(); err != nil {
		resp.Error = err.Error()
	}

	for _, c := range rep.Checks {
		check := CheckResponse{
			ID:       c.ID,
			Status:   OutcomeStatus(c.Outcome),
			Duration: c.Duration.String(),
		}
		if err := c.Outcome.Err(); err != nil {
			check.Error = err.Error()
		}
		resp.Checks = append(resp.Checks, check)
	}
	return resp
}

// DetailedHandler returns a handler that reports every member check of v as
// JSON, using the same status codes as VerdictHandler.
func DetailedHandler(agg *Aggregator, v Verdict) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep := agg.Report(r.Context(), v)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(HTTPStatus(rep.Outcome))
		_ = json.NewEncoder(w).Encode(NewReportResponse(rep))
	}
}

// RegisterHandlers mounts both verdicts on mux at the configured path
// segments, e.g. /ready and /alive.
func RegisterHandlers(mux *http.ServeMux, agg *Aggregator, logger observe.Logger) {
	s := agg.Settings()
	mux.HandleFunc("GET /"+s.ReadinessPath(), VerdictHandler(agg, Ready, logger))
	mux.HandleFunc("GET /"+s.LivenessPath(), VerdictHandler(agg, Alive, logger))
}
