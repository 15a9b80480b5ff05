package health

import (
	"context"
	"sync"
)

// Registry fans readiness probes out over the registered checkers.
type Registry struct {
	checkers []Checker
}

func NewRegistry(checkers ...Checker) *Registry {
	return &Registry{checkers: checkers}
}

// CheckResult is one named probe outcome.
type CheckResult struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// ReadinessResponse aggregates every probe into one verdict.
type ReadinessResponse struct {
	Status Status        `json:"status"`
	Checks []CheckResult `json:"checks,omitempty"`
}

// CheckAll probes every dependency concurrently. One slow dependency must not
// serialize the rest; the ready verdict is down if any probe is down.
func (r *Registry) CheckAll(ctx context.Context) ReadinessResponse {
	if len(r.checkers) == 0 {
		return ReadinessResponse{Status: StatusUp}
	}

	results := make([]CheckResult, len(r.checkers))
	var wg sync.WaitGroup
	wg.Add(len(r.checkers))
	for i, c := range r.checkers {
		go func() {
			defer wg.Done()
			probe := c.Check(ctx)
			results[i] = CheckResult{Name: c.Name(), Status: probe.Status, Message: probe.Message}
		}()
	}
	wg.Wait()

	overall := StatusUp
	for _, res := range results {
		if res.Status == StatusDown {
			overall = StatusDown
			break
		}
	}
	return ReadinessResponse{Status: overall, Checks: results}
}
