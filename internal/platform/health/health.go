package health

import (
	"context"
	"maps"
	"sync"
	"time"
)

type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

type CheckResult struct {
	Status  Status        `json:"status"`
	Message string        `json:"message,omitempty"`
	Latency time.Duration `json:"latency"`
	Error   string        `json:"error,omitempty"`
}

type Checker interface {
	Name() string
	Check(ctx context.Context) CheckResult
}

type ManagerInterface interface {
	Register(checker Checker)
	CheckAll(ctx context.Context) map[string]CheckResult
	IsHealthy(ctx context.Context) bool
}

type Option func(*Manager)

// WithCheckTimeout bounds every single check. A checker that overruns is
// reported unhealthy even if it ignores its context.
func WithCheckTimeout(d time.Duration) Option {
	return func(m *Manager) { m.timeout = d }
}

// WithCacheTTL reuses the last complete round of results for d, so probes
// hitting several replicas do not re-run every check.
func WithCacheTTL(d time.Duration) Option {
	return func(m *Manager) { m.ttl = d }
}

type Manager struct {
	mu       sync.RWMutex
	checkers []Checker

	timeout time.Duration
	ttl     time.Duration
	now     func() time.Time

	cacheMu  sync.Mutex
	cached   map[string]CheckResult
	cachedAt time.Time
}

var _ ManagerInterface = (*Manager)(nil)

func NewManager(opts ...Option) *Manager {
	m := &Manager{now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Register adds checker, replacing any registered checker with the same name.
func (m *Manager) Register(checker Checker) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.invalidate()
	for i, c := range m.checkers {
		if c.Name() == checker.Name() {
			m.checkers[i] = checker
			return
		}
	}
	m.checkers = append(m.checkers, checker)
}

// CheckAll runs every registered checker concurrently and waits for all of
// them. Results of a round cut short by ctx are never cached.
func (m *Manager) CheckAll(ctx context.Context) map[string]CheckResult {
	if results, ok := m.fromCache(); ok {
		return results
	}

	m.mu.RLock()
	checkers := make([]Checker, len(m.checkers))
	copy(checkers, m.checkers)
	m.mu.RUnlock()

	results := make(map[string]CheckResult, len(checkers))
	var (
		wg      sync.WaitGroup
		resultM sync.Mutex
	)
	for _, checker := range checkers {
		wg.Add(1)
		go func(c Checker) {
			defer wg.Done()

			result := m.run(ctx, c)

			resultM.Lock()
			results[c.Name()] = result
			resultM.Unlock()
		}(checker)
	}
	wg.Wait()

	if ctx.Err() == nil {
		m.store(results)
	}
	return results
}

func (m *Manager) IsHealthy(ctx context.Context) bool {
	for _, result := range m.CheckAll(ctx) {
		if result.Status != StatusHealthy {
			return false
		}
	}
	return true
}

func (m *Manager) run(ctx context.Context, c Checker) CheckResult {
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	start := time.Now()
	done := make(chan CheckResult, 1)
	go func() { done <- c.Check(ctx) }()

	var result CheckResult
	select {
	case result = <-done:
	case <-ctx.Done():
		result = CheckResult{Status: StatusUnhealthy, Error: ctx.Err().Error()}
	}
	result.Latency = time.Since(start)
	return result
}

func (m *Manager) fromCache() (map[string]CheckResult, bool) {
	if m.ttl <= 0 {
		return nil, false
	}

	m.cacheMu.Lock()
	defer m.cacheMu.Unlock()
	if m.cached == nil || m.now().Sub(m.cachedAt) >= m.ttl {
		return nil, false
	}
	return maps.Clone(m.cached), true
}

func (m *Manager) store(results map[string]CheckResult) {
	if m.ttl <= 0 {
		return
	}

	m.cacheMu.Lock()
	defer m.cacheMu.Unlock()
	m.cached = maps.Clone(results)
	m.cachedAt = m.now()
}

func (m *Manager) invalidate() {
	m.cacheMu.Lock()
	defer m.cacheMu.Unlock()
	m.cached = nil
}
