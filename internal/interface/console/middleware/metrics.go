package middleware

import (
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alem-hub/assistant-bot/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// METRICS MIDDLEWARE
// Counts commands, outcomes and latencies for one console session.
// ══════════════════════════════════════════════════════════════════════════════

// Outcome labels.
const (
	OutcomeOK         = "ok"
	OutcomeValidation = "validation"
	OutcomeNotFound   = "not_found"
	OutcomeParse      = "parse"
	OutcomeUsage      = "usage"
	OutcomeInternal   = "internal"
	OutcomePanic      = "panic"
)

// ErrPanic marks a request that ended in a recovered panic.
var ErrPanic = errors.New("handler panicked")

// Outcome classifies a handler result.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrPanic):
		return OutcomePanic
	case shared.IsUsage(err):
		return OutcomeUsage
	case shared.IsValidation(err):
		return OutcomeValidation
	case shared.IsNotFound(err):
		return OutcomeNotFound
	case shared.IsParse(err):
		return OutcomeParse
	default:
		return OutcomeInternal
	}
}

// MetricsMiddleware collects per-session command metrics.
type MetricsMiddleware struct {
	startedAt time.Time

	totalRequests atomic.Int64
	totalErrors   atomic.Int64

	// map[string]*CommandMetrics
	commandMetrics sync.Map

	mu       sync.Mutex
	outcomes map[string]int64
}

// CommandMetrics holds metrics for a specific command.
type CommandMetrics struct {
	TotalCount    atomic.Int64
	ErrorCount    atomic.Int64
	TotalDuration atomic.Int64
	MaxDuration   atomic.Int64
}

// NewMetricsMiddleware creates a new metrics middleware.
func NewMetricsMiddleware() *MetricsMiddleware {
	return &MetricsMiddleware{
		startedAt: time.Now(),
		outcomes:  make(map[string]int64),
	}
}

// RequestContext tracks one command from Start to End.
type RequestContext struct {
	Command   string
	StartTime time.Time

	middleware *MetricsMiddleware
}

// Start begins tracking a command.
func (m *MetricsMiddleware) Start(command string) *RequestContext {
	m.totalRequests.Add(1)
	return &RequestContext{
		Command:    command,
		StartTime:  time.Now(),
		middleware: m,
	}
}

// End records the result and returns the elapsed time.
func (rc *RequestContext) End(err error) time.Duration {
	duration := time.Since(rc.StartTime)
	m := rc.middleware

	metrics := m.getCommandMetrics(rc.Command)
	metrics.TotalCount.Add(1)
	if err != nil {
		metrics.ErrorCount.Add(1)
		m.totalErrors.Add(1)
	}
	nanos := duration.Nanoseconds()
	metrics.TotalDuration.Add(nanos)
	for {
		current := metrics.MaxDuration.Load()
		if nanos <= current || metrics.MaxDuration.CompareAndSwap(current, nanos) {
			break
		}
	}

	m.mu.Lock()
	m.outcomes[Outcome(err)]++
	m.mu.Unlock()

	return duration
}

func (m *MetricsMiddleware) getCommandMetrics(command string) *CommandMetrics {
	if v, ok := m.commandMetrics.Load(command); ok {
		return v.(*CommandMetrics)
	}
	v, _ := m.commandMetrics.LoadOrStore(command, &CommandMetrics{})
	return v.(*CommandMetrics)
}

// MetricsSnapshot is a point-in-time view of the session metrics.
type MetricsSnapshot struct {
	Uptime        time.Duration
	TotalRequests int64
	TotalErrors   int64
	Outcomes      map[string]int64
	Commands      []CommandSnapshot // sorted by name
}

// CommandSnapshot represents metrics for a single command.
type CommandSnapshot struct {
	Name        string
	TotalCount  int64
	ErrorCount  int64
	AvgDuration time.Duration
	MaxDuration time.Duration
}

// Snapshot returns the current metrics.
func (m *MetricsMiddleware) Snapshot() *MetricsSnapshot {
	snap := &MetricsSnapshot{
		Uptime:        time.Since(m.startedAt),
		TotalRequests: m.totalRequests.Load(),
		TotalErrors:   m.totalErrors.Load(),
		Outcomes:      make(map[string]int64),
	}

	m.mu.Lock()
	for k, v := range m.outcomes {
		snap.Outcomes[k] = v
	}
	m.mu.Unlock()

	m.commandMetrics.Range(func(key, value any) bool {
		cm := value.(*CommandMetrics)
		cs := CommandSnapshot{
			Name:        key.(string),
			TotalCount:  cm.TotalCount.Load(),
			ErrorCount:  cm.ErrorCount.Load(),
			MaxDuration: time.Duration(cm.MaxDuration.Load()),
		}
		if cs.TotalCount > 0 {
			cs.AvgDuration = time.Duration(cm.TotalDuration.Load() / cs.TotalCount)
		}
		snap.Commands = append(snap.Commands, cs)
		return true
	})
	sort.Slice(snap.Commands, func(i, j int) bool {
		return snap.Commands[i].Name < snap.Commands[j].Name
	})

	return snap
}
