package health

import (
	"context"
	"net/http"
	"slices"
	"time"

	"postalform/internal/adapters/http/response"
	"postalform/internal/platform/health"
	"postalform/internal/platform/logger"
)

const (
	readinessTimeout = 5 * time.Second
	description      = "Postal code form validation"
)

type ReadinessHandler struct {
	version       string
	healthManager health.ManagerInterface
}

func NewReadinessHandler(version string, healthManager health.ManagerInterface) *ReadinessHandler {
	return &ReadinessHandler{
		version:       version,
		healthManager: healthManager,
	}
}

// Check answers 503 when any component fails. Unknown component states
// degrade the overall status to warn but keep the instance in rotation.
func (h *ReadinessHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	results := h.healthManager.CheckAll(ctx)
	now := time.Now()

	resp := ReadinessResponse{
		Status:      StatusPass,
		Version:     h.version,
		Description: description,
		Checks:      make(map[string][]CheckDetail, len(results)),
	}

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		detail := toCheckDetail(name, results[name], now)
		resp.Checks[name] = []CheckDetail{detail}
		resp.Status = worst(resp.Status, detail.Status)

		if detail.Status == StatusFail {
			resp.Notes = append(resp.Notes, "Component "+name+" is unavailable")
		}
	}

	status := http.StatusOK
	if resp.Status == StatusFail {
		status = http.StatusServiceUnavailable
		logger.FromContext(ctx).Warn("Readiness check failed", logger.Strings("notes", resp.Notes))
	}

	response.RespondJSON(w, status, resp)
}

func toCheckDetail(name string, result health.CheckResult, at time.Time) CheckDetail {
	detail := CheckDetail{
		ComponentId:   name,
		ComponentType: "component",
		ObservedValue: float64(result.Latency.Microseconds()) / 1000,
		ObservedUnit:  "ms",
		Status:        statusOf(result.Status),
		Time:          at,
		Output:        result.Message,
	}
	if result.Error != "" {
		detail.Output = result.Error
	}
	return detail
}

func statusOf(s health.Status) Status {
	switch s {
	case health.StatusHealthy:
		return StatusPass
	case health.StatusUnhealthy:
		return StatusFail
	default:
		return StatusWarn
	}
}

var severity = map[Status]int{StatusPass: 0, StatusWarn: 1, StatusFail: 2}

func worst(a, b Status) Status {
	if severity[b] > severity[a] {
		return b
	}
	return a
}
